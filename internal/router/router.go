package router // package router defines how HTTP routes are registered for the API

import (
    "time"

    "github.com/labstack/echo/v4" // Echo web framework for routing
    "github.com/redis/go-redis/v9"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/handler"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/middleware"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the sign-in stub and session endpoints.  Login
// is rate limited per IP when Redis is available; /v1/me requires a
// valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, rdb *redis.Client) {
    g := e.Group("/v1/auth")
    g.POST("/login", a.Login, middleware.RateLimit(rdb, 20, time.Minute, "login"))
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}

// RegisterCatalog registers the public browse surface: approved
// facilities, courts, the slot grid, the date window, reviews, live
// quotes and the assistant.  None of these require authentication.
func RegisterCatalog(e *echo.Echo, cat *handler.CatalogHandler, rev *handler.ReviewHandler,
    quote *handler.QuoteHandler, chat *handler.ChatHandler, rdb *redis.Client) {
    e.GET("/v1/facilities", cat.Catalog)
    e.GET("/v1/facilities/:id", cat.Facility)
    e.GET("/v1/facilities/:id/courts", cat.FacilityCourts)
    e.GET("/v1/slots", cat.Slots)
    e.GET("/v1/dates", cat.Dates)

    e.GET("/v1/facilities/:id/reviews", rev.ListByFacility)
    e.POST("/v1/facilities/:id/reviews", rev.Add)

    e.POST("/v1/quote", quote.Quote)
    // The assistant calls a paid upstream API, so it carries the
    // tightest per-IP limit of the service.
    e.POST("/v1/chat", chat.Ask, middleware.RateLimit(rdb, 10, time.Minute, "chat"))
}

// RegisterOwner registers the facility management endpoints available
// to owners (and admins).  Ownership of individual records is enforced
// inside the handlers.
func RegisterOwner(e *echo.Echo, f *handler.FacilityHandler, jwtSecret string) {
    g := e.Group("/v1/owner")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole(model.RoleOwner, model.RoleAdmin))
    g.GET("/facilities", f.Mine)
    g.POST("/facilities", f.Create)
    g.PUT("/facilities/:id", f.Update)
    g.DELETE("/facilities/:id", f.Delete)
}

// RegisterAdmin registers the moderation surface: the full facility
// list with approve/reject, the seed refresh, account management and
// the global booking list.
func RegisterAdmin(e *echo.Echo, f *handler.FacilityHandler, u *handler.UserHandler,
    b *handler.BookingHandler, jwtSecret string) {
    g := e.Group("/v1/admin")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole(model.RoleAdmin))

    g.GET("/facilities", f.ListAll)
    g.POST("/facilities/refresh", f.Refresh)
    g.GET("/facilities/refresh", f.RefreshStatus)
    g.POST("/facilities/:id/approve", f.Approve)
    g.POST("/facilities/:id/reject", f.Reject)

    g.GET("/users", u.List)
    g.POST("/users", u.Create)
    g.GET("/users/:id", u.Get)
    g.PUT("/users/:id", u.Update)
    g.DELETE("/users/:id", u.Delete)
    g.POST("/users/:id/ban", u.Ban)
    g.POST("/users/:id/unban", u.Unban)

    g.GET("/bookings", b.ListAll)
}

// RegisterBooking registers the booking workflow and history endpoints.
// All of them require a signed-in user of any role.
func RegisterBooking(e *echo.Echo, w *handler.WorkflowHandler, b *handler.BookingHandler, jwtSecret string) {
    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole(model.RolePlayer, model.RoleOwner, model.RoleAdmin))

    g.GET("/bookings", b.Mine)

    g.POST("/workflows", w.Start)
    g.GET("/workflows/:id", w.Status)
    g.PUT("/workflows/:id/selection", w.Select)
    g.POST("/workflows/:id/review", w.Review)
    g.POST("/workflows/:id/details", w.Details)
    g.POST("/workflows/:id/method", w.Method)
    g.POST("/workflows/:id/scan", w.Scan)
    g.DELETE("/workflows/:id", w.Cancel)
}

// RegisterCrud mounts the relational passthrough at the legacy
// top-level paths (/facilities, /bookings, /users and so on).  The
// resource name is resolved against the table whitelist inside the
// handler, so unknown paths get 404 rather than SQL.
func RegisterCrud(e *echo.Echo, h *handler.CrudHandler) {
    e.GET("/:resource", h.List)
    e.POST("/:resource", h.Create)
    e.PUT("/:resource/:id", h.Update)
    e.DELETE("/:resource/:id", h.Delete)
}
