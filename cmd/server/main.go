package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/cache"
	"github.com/iliyamo/skill-swap/internal/config"
	"github.com/iliyamo/skill-swap/internal/database"
	"github.com/iliyamo/skill-swap/internal/handler"
	"github.com/iliyamo/skill-swap/internal/middleware"
	"github.com/iliyamo/skill-swap/internal/repository"
	"github.com/iliyamo/skill-swap/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: without it the list caches become no-ops and rate
	// limiting is disabled, but every read path still works off the store.
	rdb := config.NewRedisClient()
	var list cache.ListCache = cache.Noop{}
	if rdb != nil {
		list = cache.NewRedisList(rdb)
	} else {
		log.Println("redis unavailable, caching and rate limiting disabled")
	}

	accounts := repository.NewAccountRepo(db)
	users := repository.NewUserRepo(db)
	connections := repository.NewConnectionRepo(db)
	chats := repository.NewChatRepo(db)
	skills := repository.NewSkillRepo(db)
	sessions := repository.NewSessionRepo(db)

	feedCache := cache.NewFeedCache(list)
	chatCache := cache.NewChatCache(list)

	authH := handler.NewAuthHandler(cfg, accounts)
	userH := handler.NewUserHandler(users)
	connH := handler.NewConnectionHandler(users, connections)
	chatH := handler.NewChatHandler(users, connections, chats, chatCache)
	skillH := handler.NewSkillHandler(users, skills, feedCache)
	sessH := handler.NewSessionHandler(users, connections, sessions)

	rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e, skillH)
	router.RegisterAuth(e, authH, rl)
	router.RegisterAPI(e, cfg.JWTSecret, rl, userH, connH, chatH, skillH, sessH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
