package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/utils"
)

// ErrEmailExists signals a registration attempt with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrAccountNotFound indicates no account matches the given email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepo manages credential records. Accounts only exist to mint
// bearer tokens; student profiles live in UserRepo.
type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts an account with a bcrypt-hashed password and returns its
// ID. The email existence check and the insert are separate statements;
// a concurrent registration race resolves at the unique index.
func (r *AccountRepo) Create(ctx context.Context, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var existing uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM accounts WHERE email=? LIMIT 1", email).Scan(&existing)
	if err == nil {
		return 0, ErrEmailExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (email, password_hash, created_at) VALUES (?,?,?)",
		email, hash, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an account by normalized email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM accounts WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	return a, err
}
