// Package pricing computes booking totals. The calculation is a pure
// function of its inputs so callers can recompute a live breakdown on
// every input change. Operation order matters: the peak and weekend
// surcharges compound multiplicatively on the hourly rate before the
// party discount and duration are applied, and the add-on charges are
// flat per booking.
package pricing

import (
    "math"
    "time"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
)

// Flat per-booking add-on charges, in the same currency unit as the
// hourly rate.
const (
    EquipmentCharge    = 50
    CoachingCharge     = 200
    RefreshmentsCharge = 100
    ParkingCharge      = 30
)

// peakSlots carry a 20% premium on the hourly rate.
var peakSlots = map[string]bool{
    "16:00-17:00": true,
    "17:00-18:00": true,
    "18:00-19:00": true,
    "19:00-20:00": true,
}

// IsPeakSlot reports whether the slot carries the peak surcharge.
func IsPeakSlot(slot string) bool {
    return peakSlots[slot]
}

// Request is one pricing input tuple.
type Request struct {
    PricePerHour float64
    TimeSlot     string
    Date         time.Time
    Duration     float64 // hours, 0.5 increments
    PersonCount  int
    Services     model.AddonServices
}

// Quote is the itemized result shown next to the total.
type Quote struct {
    BasePrice        float64 `json:"basePrice"`
    Duration         float64 `json:"duration"`
    PeakSurcharge    float64 `json:"peakTimeSurcharge"`
    WeekendSurcharge float64 `json:"weekendSurcharge"`
    PersonDiscount   float64 `json:"personDiscount"`
    ServicesPrice    float64 `json:"servicesPrice"`
    Total            int     `json:"total"`
}

// Total computes the rounded booking total.
//
// base = pricePerHour, ×1.20 on a peak slot, ×1.15 on a weekend
// (compounding), then base × duration × party multiplier plus the flat
// add-on charges, rounded to the nearest whole unit.
func Total(req Request) int {
    base := req.PricePerHour
    if IsPeakSlot(req.TimeSlot) {
        base *= 1.20
    }
    if isWeekend(req.Date) {
        base *= 1.15
    }
    total := base*req.Duration*personMultiplier(req.PersonCount) + servicesPrice(req.Services)
    return int(math.Round(total))
}

// Breakdown itemizes the quote the same way the booking panel displays
// it. Total here equals Total(req) exactly.
func Breakdown(req Request) Quote {
    base := req.PricePerHour
    mult := personMultiplier(req.PersonCount)
    q := Quote{
        BasePrice:     base,
        Duration:      req.Duration,
        ServicesPrice: servicesPrice(req.Services),
        Total:         Total(req),
    }
    if IsPeakSlot(req.TimeSlot) {
        q.PeakSurcharge = base * req.Duration * 0.2
    }
    if isWeekend(req.Date) {
        q.WeekendSurcharge = base * req.Duration * 0.15
    }
    q.PersonDiscount = base * req.Duration * (1 - mult)
    return q
}

// personMultiplier applies the party-size discount, highest threshold
// first; the tiers are mutually exclusive.
func personMultiplier(count int) float64 {
    switch {
    case count >= 6:
        return 0.85
    case count >= 4:
        return 0.90
    case count >= 2:
        return 0.95
    default:
        return 1.0
    }
}

func servicesPrice(s model.AddonServices) float64 {
    var sum float64
    if s.Equipment {
        sum += EquipmentCharge
    }
    if s.Coaching {
        sum += CoachingCharge
    }
    if s.Refreshments {
        sum += RefreshmentsCharge
    }
    if s.Parking {
        sum += ParkingCharge
    }
    return sum
}

func isWeekend(t time.Time) bool {
    wd := t.Weekday()
    return wd == time.Saturday || wd == time.Sunday
}
