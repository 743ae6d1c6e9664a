package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/config"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
)

// FacilityHandler covers the owner and admin facility operations:
// creation, editing, the approval workflow and the seed refresh.
type FacilityHandler struct {
    Cfg        config.Config
    Facilities *registry.FacilityRegistry
}

func NewFacilityHandler(cfg config.Config, f *registry.FacilityRegistry) *FacilityHandler {
    return &FacilityHandler{Cfg: cfg, Facilities: f}
}

type facilityReq struct {
    Name         string   `json:"name"`
    Location     string   `json:"location"`
    Description  string   `json:"description"`
    Sports       []string `json:"sports"`
    Amenities    []string `json:"amenities"`
    Images       []string `json:"images"`
    PricePerHour float64  `json:"pricePerHour"`
}

// Create registers a new facility for the calling owner. It enters the
// catalog as pending; in test mode it is approved immediately so a
// single-person demo needs no second admin account.
func (h *FacilityHandler) Create(c echo.Context) error {
    var req facilityReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ownerID, _ := c.Get("user_id").(string)

    status := model.StatusPending
    if h.Cfg.TestMode {
        status = model.StatusApproved
    }
    f := model.Facility{
        ID:           "facility_" + uuid.NewString(),
        Name:         req.Name,
        Location:     req.Location,
        Description:  req.Description,
        Sports:       req.Sports,
        Amenities:    req.Amenities,
        Images:       req.Images,
        PricePerHour: req.PricePerHour,
        OwnerID:      ownerID,
        Status:       status,
        CreatedAt:    time.Now().UTC(),
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Facilities.Create(ctx, f); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, f)
}

// errNotOwner distinguishes an ownership failure from a missing record.
var errNotOwner = errors.New("not the owner")

// Update patches a facility. Owners may only touch their own records;
// admins may touch any.
func (h *FacilityHandler) Update(c echo.Context) error {
    id := c.Param("id")
    if err := h.authorize(c, id); err != nil {
        return h.authError(c, err)
    }

    var patch registry.FacilityPatch
    if err := c.Bind(&patch); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    // Status changes go through the approve/reject endpoints.
    if role, _ := c.Get("role").(string); role != model.RoleAdmin {
        patch.Status = nil
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Facilities.Update(ctx, id, patch); err != nil {
        if errors.Is(err, registry.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    f, _ := h.Facilities.ByID(id)
    return c.JSON(http.StatusOK, f)
}

// Delete removes a facility, same ownership rules as Update.
func (h *FacilityHandler) Delete(c echo.Context) error {
    id := c.Param("id")
    if err := h.authorize(c, id); err != nil {
        return h.authError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Facilities.Delete(ctx, id); err != nil {
        if errors.Is(err, registry.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ListAll returns every facility regardless of status. Admin only.
func (h *FacilityHandler) ListAll(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Facilities.List())
}

// Mine returns the calling owner's facilities, every status included.
func (h *FacilityHandler) Mine(c echo.Context) error {
    ownerID, _ := c.Get("user_id").(string)
    out := make([]model.Facility, 0)
    for _, f := range h.Facilities.List() {
        if f.OwnerID == ownerID {
            out = append(out, f)
        }
    }
    return c.JSON(http.StatusOK, out)
}

// Approve moves a facility into the player catalog. Admin only.
func (h *FacilityHandler) Approve(c echo.Context) error {
    return h.setStatus(c, h.Facilities.Approve)
}

// Reject marks a facility rejected. Admin only.
func (h *FacilityHandler) Reject(c echo.Context) error {
    return h.setStatus(c, h.Facilities.Reject)
}

func (h *FacilityHandler) setStatus(c echo.Context, op func(context.Context, string) error) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := op(ctx, c.Param("id")); err != nil {
        if errors.Is(err, registry.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "status change failed"})
    }
    f, _ := h.Facilities.ByID(c.Param("id"))
    return c.JSON(http.StatusOK, f)
}

// Refresh reconciles the catalog against the seed data and reports the
// refreshing flag so a UI can show feedback.
func (h *FacilityHandler) Refresh(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    h.Facilities.Refresh(ctx)
    return c.JSON(http.StatusAccepted, echo.Map{"refreshing": h.Facilities.IsRefreshing()})
}

// RefreshStatus reports whether a refresh feedback window is open.
func (h *FacilityHandler) RefreshStatus(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"refreshing": h.Facilities.IsRefreshing()})
}

// authorize enforces record ownership for owners. Admins pass. The
// check runs before binding so a 403/404 never leaks record contents.
func (h *FacilityHandler) authorize(c echo.Context, id string) error {
    role, _ := c.Get("role").(string)
    if role == model.RoleAdmin {
        return nil
    }
    f, err := h.Facilities.ByID(id)
    if err != nil {
        return registry.ErrNotFound
    }
    userID, _ := c.Get("user_id").(string)
    if f.OwnerID != userID {
        return errNotOwner
    }
    return nil
}

func (h *FacilityHandler) authError(c echo.Context, err error) error {
    if errors.Is(err, registry.ErrNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    return c.JSON(http.StatusForbidden, echo.Map{"error": "not your facility"})
}
