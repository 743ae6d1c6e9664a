package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
)

// ReviewHandler serves per-facility review lists and submissions.
// Reviews are public both ways; the submitter name is free text.
type ReviewHandler struct {
    Reviews    *registry.ReviewBoard
    Facilities *registry.FacilityRegistry
}

func NewReviewHandler(b *registry.ReviewBoard, f *registry.FacilityRegistry) *ReviewHandler {
    return &ReviewHandler{Reviews: b, Facilities: f}
}

// ListByFacility returns seed reviews followed by user submissions.
func (h *ReviewHandler) ListByFacility(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.Facilities.ByID(id); err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items := h.Reviews.ListByFacility(ctx, id)
    if items == nil {
        items = []model.Review{}
    }
    return c.JSON(http.StatusOK, items)
}

type reviewReq struct {
    UserName string `json:"userName"`
    Rating   int    `json:"rating"`
    Comment  string `json:"comment"`
}

// Add appends a review to the facility's list.
func (h *ReviewHandler) Add(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.Facilities.ByID(id); err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    var req reviewReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    review := model.Review{
        ID:         "review_" + uuid.NewString(),
        FacilityID: id,
        UserName:   req.UserName,
        Rating:     req.Rating,
        Comment:    req.Comment,
        CreatedAt:  time.Now().UTC(),
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Reviews.Add(ctx, review); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, review)
}
