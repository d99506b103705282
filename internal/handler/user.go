package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
	"github.com/iliyamo/skill-swap/internal/utils"
)

// UserHandler implements profile onboarding and lookup.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler {
	if u == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: u}
}

type createUserReq struct {
	Name       string   `json:"name"`
	RollNumber string   `json:"roll_number"`
	Department string   `json:"department"`
	Year       int      `json:"year"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	ProfilePic *string  `json:"profile_pic"`
}

// Create handles POST /v1/users, onboarding a profile for the authenticated
// subject. Department and year fall back to values derived from the roll
// number when omitted, so clients may send just name and roll_number for
// institute-format rolls.
func (h *UserHandler) Create(c echo.Context) error {
	sub, ok := getAuthID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.RollNumber = strings.ToUpper(strings.TrimSpace(req.RollNumber))
	if req.Department == "" {
		req.Department = utils.DepartmentFromRoll(req.RollNumber)
	}
	if req.Year == 0 {
		req.Year = utils.YearFromRoll(req.RollNumber)
	}
	if req.Name == "" || req.RollNumber == "" || req.Department == "" || req.Year == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	u := model.User{
		AuthID:     sub,
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Department: req.Department,
		Year:       req.Year,
		Bio:        req.Bio,
		Skills:     req.Skills,
		ProfilePic: req.ProfilePic,
	}
	if err := h.Users.Create(c.Request().Context(), &u); err != nil {
		if err == repository.ErrRollNumberExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Roll number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create user profile"})
	}
	return c.JSON(http.StatusCreated, u)
}

// Get handles GET /v1/users?id=N.
func (h *UserHandler) Get(c echo.Context) error {
	idStr := c.QueryParam("id")
	if idStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID is required"})
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err == repository.ErrUserNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, u)
}

// Me handles GET /v1/users/me, returning the caller's own profile.
func (h *UserHandler) Me(c echo.Context) error {
	u, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, u)
}
