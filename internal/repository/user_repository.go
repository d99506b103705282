package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// ErrUserNotFound indicates that no profile matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrRollNumberExists signals onboarding with an already-registered roll
// number.
var ErrRollNumberExists = errors.New("roll number already exists")

// UserRepo manages student profiles in the `users` table. The skills tag
// list is stored JSON-encoded in a TEXT column.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id, auth_id, name, roll_number, department, year, bio, skills, profile_pic, created_at, updated_at"

// Create inserts a profile and populates u.ID and timestamps. Zero
// timestamps are set to now; tests preset them for deterministic ordering.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	exists, err := r.RollNumberExists(ctx, u.RollNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrRollNumberExists
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	u.UpdatedAt = u.CreatedAt
	if u.Skills == nil {
		u.Skills = []string{}
	}
	skillsJSON, err := json.Marshal(u.Skills)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (auth_id, name, roll_number, department, year, bio, skills, profile_pic, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		u.AuthID, u.Name, u.RollNumber, u.Department, u.Year, u.Bio,
		string(skillsJSON), u.ProfilePic, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// RollNumberExists reports whether a profile already claims the roll number.
func (r *UserRepo) RollNumberExists(ctx context.Context, roll string) (bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE roll_number=? LIMIT 1", roll).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByAuthID resolves the external identity reference to a profile.
func (r *UserRepo) GetByAuthID(ctx context.Context, authID string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE auth_id=? LIMIT 1", authID)
	return scanUser(row)
}

// GetByID fetches a profile by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (model.User, error) {
	var (
		u          model.User
		skillsJSON string
		pic        sql.NullString
	)
	err := row.Scan(&u.ID, &u.AuthID, &u.Name, &u.RollNumber, &u.Department,
		&u.Year, &u.Bio, &skillsJSON, &pic, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if pic.Valid {
		u.ProfilePic = &pic.String
	}
	u.Skills = []string{}
	if skillsJSON != "" {
		if err := json.Unmarshal([]byte(skillsJSON), &u.Skills); err != nil {
			return model.User{}, err
		}
	}
	return u, nil
}
