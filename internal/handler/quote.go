package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/pricing"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
)

// QuoteHandler computes live price breakdowns so the booking panel can
// re-quote on every input change without starting a workflow.
type QuoteHandler struct {
    Facilities *registry.FacilityRegistry
}

func NewQuoteHandler(f *registry.FacilityRegistry) *QuoteHandler {
    return &QuoteHandler{Facilities: f}
}

type quoteReq struct {
    FacilityID  string              `json:"facilityId"`
    TimeSlot    string              `json:"timeSlot"`
    Date        string              `json:"date"` // YYYY-MM-DD
    Duration    float64             `json:"duration"`
    PersonCount int                 `json:"personCount"`
    Services    model.AddonServices `json:"additionalServices"`
}

// Quote returns the itemized breakdown for the given inputs. The rate
// comes from the facility record so clients cannot quote arbitrary
// prices.
func (h *QuoteHandler) Quote(c echo.Context) error {
    var req quoteReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    f, err := h.Facilities.ByID(req.FacilityID)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    date, err := time.Parse("2006-01-02", req.Date)
    if err != nil && req.Date != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be in YYYY-MM-DD form"})
    }
    q := pricing.Breakdown(pricing.Request{
        PricePerHour: f.PricePerHour,
        TimeSlot:     req.TimeSlot,
        Date:         date,
        Duration:     req.Duration,
        PersonCount:  req.PersonCount,
        Services:     req.Services,
    })
    return c.JSON(http.StatusOK, q)
}
