package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/cache"
	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// defaultFeedLimit is the page size when the client sends none.
const defaultFeedLimit = 20

// allDepartments is the client-side sentinel meaning "no department
// filter".
const allDepartments = "All Departments"

// SkillHandler implements the skill feed: authenticated create with a feed
// cache read-modify-write, and a public cursor-paginated list with a
// cache-first unfiltered path.
type SkillHandler struct {
	Users  *repository.UserRepo
	Skills *repository.SkillRepo
	Feed   *cache.FeedCache
}

func NewSkillHandler(u *repository.UserRepo, s *repository.SkillRepo, feed *cache.FeedCache) *SkillHandler {
	if u == nil || s == nil || feed == nil {
		panic("nil dependency passed to NewSkillHandler")
	}
	return &SkillHandler{Users: u, Skills: s, Feed: feed}
}

type createSkillReq struct {
	SkillName   string  `json:"skill_name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type feedResp struct {
	Skills  []model.FeedSkill `json:"skills"`
	HasMore bool              `json:"hasMore"`
	// NextCursor is a created_at timestamp from the store path; the cache
	// path caps its read at the page size and so always leaves it null.
	// Clients treat the value as opaque.
	NextCursor any `json:"nextCursor"`
}

// Create handles POST /v1/skills.
func (h *SkillHandler) Create(c echo.Context) error {
	var req createSkillReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.SkillName = strings.TrimSpace(req.SkillName)
	req.Description = strings.TrimSpace(req.Description)
	if req.SkillName == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Skill name and description are required"})
	}
	user, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}

	ctx := c.Request().Context()
	skill := model.Skill{
		UserID:      user.ID,
		SkillName:   req.SkillName,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.Skills.Create(ctx, &skill); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create skill post"})
	}
	enriched, err := h.Skills.GetFeedByID(ctx, skill.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create skill post"})
	}

	// Read-modify-write of the shared feed cache; failures are non-fatal.
	h.Feed.Prepend(ctx, enriched)

	return c.JSON(http.StatusCreated, enriched)
}

// List handles GET /v1/skills?cursor&limit&search&department. Public, no
// authentication. Uncursored requests try the cache first and filter the
// cached entries client-side; cursored requests and cache misses hit the
// store. Only an unfiltered, uncursored store read refreshes the shared
// cache, so filtered views never pollute it.
func (h *SkillHandler) List(c echo.Context) error {
	limit := defaultFeedLimit
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	search := strings.TrimSpace(c.QueryParam("search"))
	department := strings.TrimSpace(c.QueryParam("department"))
	filterDept := department
	if filterDept == allDepartments {
		filterDept = ""
	}

	var cursor *time.Time
	if s := c.QueryParam("cursor"); s != "" {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cursor"})
		}
		cursor = &t
	}

	ctx := c.Request().Context()

	if cursor == nil {
		// The cache read is capped at limit, so a warm read never reports a
		// further page; deeper pages always go to the store.
		if cached, hit := h.Feed.Recent(ctx, limit); hit {
			filtered := filterFeed(cached, search, filterDept)
			if len(filtered) > 0 {
				resp := feedResp{HasMore: len(filtered) > limit, NextCursor: nil}
				if resp.HasMore {
					resp.NextCursor = filtered[limit].ID
					resp.Skills = filtered[:limit]
				} else {
					resp.Skills = filtered
				}
				return c.JSON(http.StatusOK, resp)
			}
		}
	}

	rows, err := h.Skills.Feed(ctx, repository.FeedQuery{
		Cursor:     cursor,
		Search:     search,
		Department: filterDept,
		Limit:      limit + 1, // one extra row to detect a further page
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch skills"})
	}

	hasMore := len(rows) > limit
	skills := rows
	var nextCursor any
	if hasMore {
		skills = rows[:limit]
		nextCursor = skills[limit-1].CreatedAt.Format(time.RFC3339Nano)
	}

	// Wholesale cache refresh, only from the unfiltered, uncursored read.
	if cursor == nil && search == "" && department == "" {
		h.Feed.Store(ctx, rows)
	}

	return c.JSON(http.StatusOK, feedResp{
		Skills:     skills,
		HasMore:    hasMore,
		NextCursor: nextCursor,
	})
}

// filterFeed applies the search and department filters to cached entries.
func filterFeed(skills []model.FeedSkill, search, department string) []model.FeedSkill {
	if search == "" && department == "" {
		return skills
	}
	needle := strings.ToLower(search)
	out := make([]model.FeedSkill, 0, len(skills))
	for _, s := range skills {
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.SkillName), needle) &&
			!strings.Contains(strings.ToLower(s.Description), needle) {
			continue
		}
		if department != "" && s.Department != department {
			continue
		}
		out = append(out, s)
	}
	return out
}
