package model

import "time"

// Booking status values. No cancellation path is wired to the public
// surface in this build; status exists so a later build can flip it.
const (
    BookingConfirmed = "confirmed"
    BookingCancelled = "cancelled"
    BookingCompleted = "completed"
)

// AddonServices are the flat per-booking extras a player can toggle
// during selection. Each carries a fixed charge applied once per
// booking, independent of duration.
type AddonServices struct {
    Equipment    bool `json:"equipment"`
    Coaching     bool `json:"coaching"`
    Refreshments bool `json:"refreshments"`
    Parking      bool `json:"parking"`
}

// ContactDetails is the booking-time snapshot of how to reach the
// player. Captured once at submission and never linked back to the
// account record.
type ContactDetails struct {
    Email   string `json:"email"`
    Phone   string `json:"phone"`
    Address string `json:"address"`
}

// Booking is created once the simulated payment succeeds and is
// immutable afterwards except for Status in principle.
//
// Date is a calendar date in YYYY-MM-DD form and TimeSlot a start-end
// string drawn from the fixed slot list ("18:00-19:00").
type Booking struct {
    ID          string         `json:"id"`
    UserID      string         `json:"userId"`
    FacilityID  string         `json:"facilityId"`
    CourtID     string         `json:"courtId"`
    Date        string         `json:"date"`
    TimeSlot    string         `json:"timeSlot"`
    Duration    float64        `json:"duration"`
    TotalPrice  int            `json:"totalPrice"`
    Status      string         `json:"status"`
    CreatedAt   time.Time      `json:"createdAt"`
    PersonCount int            `json:"personCount"`
    Services    AddonServices  `json:"additionalServices"`
    Contact     ContactDetails `json:"userDetails"`
}
