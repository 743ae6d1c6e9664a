package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
)

// UserHandler exposes the admin account surface: listing with derived
// views, CRUD and the ban switch.
type UserHandler struct {
    Users *registry.UserRegistry
}

func NewUserHandler(u *registry.UserRegistry) *UserHandler {
    return &UserHandler{Users: u}
}

// List returns accounts, optionally narrowed by ?role= or ?status=.
// The filters are derived views over one collection, so an account
// moves between them the moment its fields change.
func (h *UserHandler) List(c echo.Context) error {
    if role := c.QueryParam("role"); role != "" {
        if !model.ValidRole(role) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
        }
        return c.JSON(http.StatusOK, h.Users.ByRole(role))
    }
    switch c.QueryParam("status") {
    case "":
        return c.JSON(http.StatusOK, h.Users.List())
    case model.UserActive:
        return c.JSON(http.StatusOK, h.Users.Active())
    case model.UserBanned:
        return c.JSON(http.StatusOK, h.Users.Banned())
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }
}

// Get returns one account by id.
func (h *UserHandler) Get(c echo.Context) error {
    u, err := h.Users.ByID(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
    }
    return c.JSON(http.StatusOK, u)
}

type userReq struct {
    Email          string   `json:"email"`
    Name           string   `json:"name"`
    Role           string   `json:"role"`
    Avatar         string   `json:"avatar"`
    Phone          string   `json:"phone"`
    FavoriteSports []string `json:"favoriteSports"`
}

// Create adds an account. Role defaults to player and cannot change
// afterwards.
func (h *UserHandler) Create(c echo.Context) error {
    var req userReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Role == "" {
        req.Role = model.RolePlayer
    }
    u := model.User{
        ID:             "user_" + uuid.NewString(),
        Email:          req.Email,
        Name:           req.Name,
        Role:           req.Role,
        Avatar:         req.Avatar,
        Phone:          req.Phone,
        FavoriteSports: req.FavoriteSports,
        CreatedAt:      time.Now().UTC(),
        Status:         model.UserActive,
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Users.Create(ctx, u); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, u)
}

// Update patches an account. The role field is ignored even if sent.
func (h *UserHandler) Update(c echo.Context) error {
    var patch registry.UserPatch
    if err := c.Bind(&patch); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Users.Update(ctx, c.Param("id"), patch); err != nil {
        if errors.Is(err, registry.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    u, _ := h.Users.ByID(c.Param("id"))
    return c.JSON(http.StatusOK, u)
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Users.Delete(ctx, c.Param("id")); err != nil {
        if errors.Is(err, registry.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// Ban flips an account to banned. Banning is reversible and repeat
// bans are no-ops.
func (h *UserHandler) Ban(c echo.Context) error {
    return h.setStatus(c, h.Users.Ban)
}

// Unban returns an account to active.
func (h *UserHandler) Unban(c echo.Context) error {
    return h.setStatus(c, h.Users.Unban)
}

func (h *UserHandler) setStatus(c echo.Context, op func(context.Context, string) error) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := op(ctx, c.Param("id")); err != nil {
        if errors.Is(err, registry.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "status change failed"})
    }
    u, _ := h.Users.ByID(c.Param("id"))
    return c.JSON(http.StatusOK, u)
}
