package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/seed"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/workflow"
)

// catalogCacheTTL bounds how stale the cached approved list may get.
// The synchronizer already reconciles every two seconds, so a short
// TTL here costs nothing in freshness.
const catalogCacheTTL = 10 * time.Second

const catalogCacheKey = "cache:catalog"

// CatalogHandler serves the player-facing browse surface: approved
// facilities, their courts, the fixed slot grid and the bookable date
// window. Everything here is public.
type CatalogHandler struct {
    Facilities *registry.FacilityRegistry
    Courts     []model.Court
    Rdb        *redis.Client // optional, enables the catalog cache
}

func NewCatalogHandler(f *registry.FacilityRegistry, courts []model.Court, rdb *redis.Client) *CatalogHandler {
    return &CatalogHandler{Facilities: f, Courts: courts, Rdb: rdb}
}

// Catalog lists approved facilities. With Redis available the response
// body is cached briefly; cache errors fall through to a live read.
func (h *CatalogHandler) Catalog(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if h.Rdb != nil {
        if cached, err := h.Rdb.Get(ctx, catalogCacheKey).Bytes(); err == nil {
            return c.JSONBlob(http.StatusOK, cached)
        }
    }

    items := h.Facilities.Approved()
    if h.Rdb != nil {
        if data, err := json.Marshal(items); err == nil {
            _ = h.Rdb.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err()
        }
    }
    return c.JSON(http.StatusOK, items)
}

// Facility returns one approved facility by id. Pending and rejected
// facilities are invisible here regardless of who asks.
func (h *CatalogHandler) Facility(c echo.Context) error {
    f, err := h.Facilities.ByID(c.Param("id"))
    if err != nil || f.Status != model.StatusApproved {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    return c.JSON(http.StatusOK, f)
}

// FacilityCourts lists the courts of one facility.
func (h *CatalogHandler) FacilityCourts(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.Facilities.ByID(id); err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    out := make([]model.Court, 0)
    for _, court := range h.Courts {
        if court.FacilityID == id {
            out = append(out, court)
        }
    }
    return c.JSON(http.StatusOK, out)
}

// Slots returns the fixed hourly slot grid.
func (h *CatalogHandler) Slots(c echo.Context) error {
    return c.JSON(http.StatusOK, seed.TimeSlots)
}

// Dates returns the bookable date window, tomorrow through fourteen
// days out.
func (h *CatalogHandler) Dates(c echo.Context) error {
    return c.JSON(http.StatusOK, workflow.AvailableDates(time.Now()))
}
