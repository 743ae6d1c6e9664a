package handler

import (
    "context"  // provides context with cancellation for store calls
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // timeouts for store calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/config"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/session"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints. Sign-in is a
// stub: any email succeeds, the user record is synthesized and the
// account registry gains a matching record if it has none.
type AuthHandler struct {
    Cfg     config.Config
    Session *session.Session
    Users   *registry.UserRegistry
}

func NewAuthHandler(cfg config.Config, s *session.Session, u *registry.UserRegistry) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Session: s, Users: u}
}

// ----- DTOs -----

type loginReq struct {
    Email string `json:"email"`
    Role  string `json:"role"` // player | owner | admin, defaults to player
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}
type authResp struct {
    User   model.User `json:"user"`
    Access tokenPart  `json:"access"`
}

// Login establishes the demo session and returns an access token. The
// password field of the original form is accepted and ignored.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(req.Email) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Session.Login(ctx, req.Email, strings.ToLower(strings.TrimSpace(req.Role)))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    // Mirror the synthesized user into the account registry so the
    // admin views include them. Duplicate emails are left alone.
    known := false
    for _, existing := range h.Users.List() {
        if existing.Email == u.Email {
            known = true
            break
        }
    }
    if !known {
        _ = h.Users.Create(ctx, u)
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }

    return c.JSON(http.StatusOK, authResp{
        User:   u,
        Access: tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Logout clears the demo session. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    h.Session.Logout(ctx)
    return c.NoContent(http.StatusNoContent)
}

// Me returns the currently signed-in user.
func (h *AuthHandler) Me(c echo.Context) error {
    u := h.Session.Current()
    if u == nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
    }
    return c.JSON(http.StatusOK, u)
}
