// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a court booking reaches payment
// success. It contains enough information for downstream consumers to log,
// notify, or trigger analytics without reading the primary store.
type BookingConfirmedEvent struct {
    BookingID     string `json:"booking_id"`
    UserID        string `json:"user_id"`
    FacilityID    string `json:"facility_id"`
    FacilityName  string `json:"facility_name"`
    CourtName     string `json:"court_name"`
    Sport         string `json:"sport"`
    Date          string `json:"date"`
    TimeSlot      string `json:"time_slot"`
    DurationHours float64 `json:"duration_hours"`
    PersonCount   int    `json:"person_count"`
    PaymentMethod string `json:"payment_method"`
    TotalPrice    int    `json:"total_price"`
    ConfirmedAt   string `json:"confirmed_at"`
}
