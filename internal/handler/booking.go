package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
)

// BookingHandler serves booking history. Records are immutable once
// created; there is no update or delete surface.
type BookingHandler struct {
    Bookings *registry.BookingStore
}

func NewBookingHandler(b *registry.BookingStore) *BookingHandler {
    return &BookingHandler{Bookings: b}
}

// Mine lists the caller's bookings, most recent first.
func (h *BookingHandler) Mine(c echo.Context) error {
    userID, _ := c.Get("user_id").(string)
    items := h.Bookings.ListByUser(userID)
    if items == nil {
        items = []model.Booking{}
    }
    return c.JSON(http.StatusOK, items)
}

// ListAll returns every booking. Admin only.
func (h *BookingHandler) ListAll(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Bookings.List())
}
