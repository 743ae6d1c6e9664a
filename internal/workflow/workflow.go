// Package workflow drives a booking from court selection through the
// simulated payment sequence. The state machine is explicit and the
// payment timings and outcome are injectable so a real gateway can
// later replace only the transition triggers without touching the
// state shape.
package workflow

import (
    "context"
    "errors"
    "fmt"
    "math"
    "regexp"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/pricing"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/seed"
)

// State names of the booking workflow.
type State string

const (
    StateSelecting         State = "selecting"
    StateReviewingDetails  State = "reviewing_details"
    StatePaymentMethod     State = "payment_method"
    StatePaymentQR         State = "payment_qr"
    StatePaymentProcessing State = "payment_processing"
    StatePaymentSuccess    State = "payment_success"
    StateDone              State = "done"
)

// Selection bounds.
const (
    MinDuration = 0.5
    MaxDuration = 8.0
    MinPersons  = 1
    MaxPersons  = 20

    // DateWindowDays is how far ahead a booking may be placed. Today
    // itself is excluded.
    DateWindowDays = 14
)

// Accepted payment methods for the simulated flow.
var paymentMethods = map[string]bool{"upi": true, "card": true, "netbanking": true}

var (
    // ErrInvalidState is returned when an operation does not apply to
    // the workflow's current state.
    ErrInvalidState = errors.New("workflow: operation not allowed in current state")
    // ErrNotCancellable is returned once payment processing has begun.
    ErrNotCancellable = errors.New("workflow: payment already processing, cannot cancel")

    emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
    phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// ValidationError reports a user-visible, field-level validation
// failure. The workflow state never advances on a validation error.
type ValidationError struct {
    Field   string
    Message string
}

func (e *ValidationError) Error() string {
    return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Selection is everything the player picks before reviewing details.
type Selection struct {
    CourtID     string              `json:"courtId"`
    Date        string              `json:"date"` // YYYY-MM-DD, within the forward window
    TimeSlot    string              `json:"timeSlot"`
    Duration    float64             `json:"duration"`
    PersonCount int                 `json:"personCount"`
    Services    model.AddonServices `json:"additionalServices"`
}

// Details is the contact information collected on the review step.
type Details struct {
    Email       string `json:"email"`
    Phone       string `json:"phone"`
    Address     string `json:"address"`
    PersonCount int    `json:"personCount"` // optional re-entry, overrides the selection
}

// Timings are the scripted payment delays.
type Timings struct {
    Processing time.Duration // payment_processing -> payment_success
    Success    time.Duration // payment_success -> done
}

// DefaultTimings mirror the original simulation: three seconds of
// processing, two seconds showing the success screen.
func DefaultTimings() Timings {
    return Timings{Processing: 3 * time.Second, Success: 2 * time.Second}
}

// Config wires a workflow's collaborators. Zero fields get defaults.
type Config struct {
    Bookings *registry.BookingStore
    Courts   []model.Court // courts of the facility being booked
    Timings  Timings
    Now      func() time.Time
    // Outcome decides the payment result once processing starts. The
    // default always succeeds; there is no simulated failure path.
    Outcome func() error
    // OnConfirmed runs after the booking is confirmed, outside the
    // workflow lock. Used to publish the booking event; best-effort.
    OnConfirmed func(model.Booking)
}

// Workflow is a single in-flight booking.
type Workflow struct {
    mu       sync.Mutex
    id       string
    userID   string
    facility model.Facility

    state   State
    sel     Selection
    details Details
    method  string
    booking *model.Booking

    cfg    Config
    timers []*time.Timer
    done   chan struct{}
}

// New starts a workflow in the selecting state.
func New(userID string, facility model.Facility, cfg Config) *Workflow {
    if cfg.Now == nil {
        cfg.Now = time.Now
    }
    if cfg.Outcome == nil {
        cfg.Outcome = func() error { return nil }
    }
    return &Workflow{
        id:       uuid.NewString(),
        userID:   userID,
        facility: facility,
        state:    StateSelecting,
        sel:      Selection{Duration: 1, PersonCount: 1},
        cfg:      cfg,
        done:     make(chan struct{}),
    }
}

// ID returns the workflow identifier.
func (w *Workflow) ID() string { return w.id }

// State returns the current state.
func (w *Workflow) State() State {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.state
}

// Booking returns the confirmed booking, if one has been created.
func (w *Workflow) Booking() *model.Booking {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.booking == nil {
        return nil
    }
    b := *w.booking
    return &b
}

// Done is closed when the workflow reaches its terminal state, whether
// by completion or cancellation.
func (w *Workflow) Done() <-chan struct{} { return w.done }

// Select stores the player's picks. Allowed only while selecting.
// Date and time slot may still be empty here; they are enforced by
// BeginReview.
func (w *Workflow) Select(sel Selection) error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.state != StateSelecting {
        return ErrInvalidState
    }
    if err := w.validateSelection(sel); err != nil {
        return err
    }
    w.sel = sel
    return nil
}

// BeginReview advances to the details step. Both date and time slot
// must be set; otherwise the attempt is rejected and the state stays
// put.
func (w *Workflow) BeginReview() error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.state != StateSelecting {
        return ErrInvalidState
    }
    if w.sel.Date == "" {
        return &ValidationError{Field: "date", Message: "please select a date before booking"}
    }
    if w.sel.TimeSlot == "" {
        return &ValidationError{Field: "timeSlot", Message: "please select a time slot before booking"}
    }
    w.state = StateReviewingDetails
    return nil
}

// SubmitDetails validates the contact details, creates the booking
// record with its computed total and advances to payment method
// selection. Any validation failure keeps the state unchanged.
func (w *Workflow) SubmitDetails(ctx context.Context, d Details) error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.state != StateReviewingDetails {
        return ErrInvalidState
    }
    if !emailPattern.MatchString(d.Email) {
        return &ValidationError{Field: "email", Message: "enter a valid email address"}
    }
    if !phonePattern.MatchString(d.Phone) {
        return &ValidationError{Field: "phone", Message: "enter a valid 10-digit phone number"}
    }
    if d.Address == "" {
        return &ValidationError{Field: "address", Message: "address is required"}
    }
    if d.PersonCount != 0 {
        if d.PersonCount < MinPersons || d.PersonCount > MaxPersons {
            return &ValidationError{Field: "personCount", Message: fmt.Sprintf("party size must be between %d and %d", MinPersons, MaxPersons)}
        }
        w.sel.PersonCount = d.PersonCount
    }
    w.details = d

    date, _ := time.Parse("2006-01-02", w.sel.Date)
    total := pricing.Total(pricing.Request{
        PricePerHour: w.facility.PricePerHour,
        TimeSlot:     w.sel.TimeSlot,
        Date:         date,
        Duration:     w.sel.Duration,
        PersonCount:  w.sel.PersonCount,
        Services:     w.sel.Services,
    })
    booking := model.Booking{
        ID:          "booking_" + uuid.NewString(),
        UserID:      w.userID,
        FacilityID:  w.facility.ID,
        CourtID:     w.sel.CourtID,
        Date:        w.sel.Date,
        TimeSlot:    w.sel.TimeSlot,
        Duration:    w.sel.Duration,
        TotalPrice:  total,
        Status:      model.BookingConfirmed,
        CreatedAt:   w.cfg.Now().UTC(),
        PersonCount: w.sel.PersonCount,
        Services:    w.sel.Services,
        Contact:     model.ContactDetails{Email: d.Email, Phone: d.Phone, Address: d.Address},
    }
    if w.cfg.Bookings != nil {
        w.cfg.Bookings.Add(ctx, booking)
    }
    w.booking = &booking
    w.state = StatePaymentMethod
    return nil
}

// ChooseMethod records the payment method and shows the QR step.
func (w *Workflow) ChooseMethod(method string) error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.state != StatePaymentMethod {
        return ErrInvalidState
    }
    if method == "" {
        method = "upi"
    }
    if !paymentMethods[method] {
        return &ValidationError{Field: "method", Message: "unknown payment method"}
    }
    w.method = method
    w.state = StatePaymentQR
    return nil
}

// Pay starts the scripted processing sequence. From here on the
// workflow is no longer cancellable; the remaining transitions fire
// automatically on the configured delays and always end in success.
func (w *Workflow) Pay() error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.state != StatePaymentQR {
        return ErrInvalidState
    }
    w.state = StatePaymentProcessing
    w.schedule(w.cfg.Timings.Processing, w.advanceToSuccess)
    return nil
}

// Cancel aborts the workflow. Allowed while selecting, reviewing
// details, or before payment processing has started.
func (w *Workflow) Cancel() error {
    w.mu.Lock()
    switch w.state {
    case StateSelecting, StateReviewingDetails, StatePaymentMethod, StatePaymentQR:
        w.finishLocked()
        w.mu.Unlock()
        return nil
    case StateDone:
        w.mu.Unlock()
        return ErrInvalidState
    default:
        w.mu.Unlock()
        return ErrNotCancellable
    }
}

// Close tears down pending timers without touching state. Called when
// the owning manager shuts down so stale callbacks cannot mutate a
// workflow nobody observes anymore.
func (w *Workflow) Close() {
    w.mu.Lock()
    defer w.mu.Unlock()
    w.stopTimersLocked()
}

func (w *Workflow) advanceToSuccess() {
    w.mu.Lock()
    if w.state != StatePaymentProcessing {
        w.mu.Unlock()
        return
    }
    // Outcome is injectable but the default simulation always succeeds.
    _ = w.cfg.Outcome()
    w.state = StatePaymentSuccess
    var confirmed *model.Booking
    if w.booking != nil {
        b := *w.booking
        confirmed = &b
    }
    w.mu.Unlock()

    // Publish before arming the final transition so observers of Done
    // always see the confirmation hook completed.
    if confirmed != nil && w.cfg.OnConfirmed != nil {
        w.cfg.OnConfirmed(*confirmed)
    }

    w.mu.Lock()
    if w.state == StatePaymentSuccess {
        w.schedule(w.cfg.Timings.Success, w.advanceToDone)
    }
    w.mu.Unlock()
}

func (w *Workflow) advanceToDone() {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.state != StatePaymentSuccess {
        return
    }
    w.finishLocked()
}

// finishLocked clears transient selection state and closes done.
func (w *Workflow) finishLocked() {
    w.stopTimersLocked()
    w.sel = Selection{}
    w.details = Details{}
    w.method = ""
    w.state = StateDone
    select {
    case <-w.done:
    default:
        close(w.done)
    }
}

func (w *Workflow) schedule(d time.Duration, fn func()) {
    w.timers = append(w.timers, time.AfterFunc(d, fn))
}

func (w *Workflow) stopTimersLocked() {
    for _, t := range w.timers {
        t.Stop()
    }
    w.timers = nil
}

func (w *Workflow) validateSelection(sel Selection) error {
    if sel.Duration < MinDuration || sel.Duration > MaxDuration {
        return &ValidationError{Field: "duration", Message: fmt.Sprintf("duration must be between %.1f and %.1f hours", MinDuration, MaxDuration)}
    }
    if halves := sel.Duration * 2; halves != math.Trunc(halves) {
        return &ValidationError{Field: "duration", Message: "duration must be in half-hour steps"}
    }
    if sel.PersonCount < MinPersons || sel.PersonCount > MaxPersons {
        return &ValidationError{Field: "personCount", Message: fmt.Sprintf("party size must be between %d and %d", MinPersons, MaxPersons)}
    }
    if sel.TimeSlot != "" && !seed.ValidSlot(sel.TimeSlot) {
        return &ValidationError{Field: "timeSlot", Message: "unknown time slot"}
    }
    if sel.Date != "" {
        if err := w.validateDate(sel.Date); err != nil {
            return err
        }
    }
    if sel.CourtID != "" && len(w.cfg.Courts) > 0 {
        found := false
        for _, c := range w.cfg.Courts {
            if c.ID == sel.CourtID && c.FacilityID == w.facility.ID {
                found = true
                break
            }
        }
        if !found {
            return &ValidationError{Field: "courtId", Message: "court does not belong to this facility"}
        }
    }
    return nil
}

// validateDate enforces the 14-day forward-looking window, today
// excluded.
func (w *Workflow) validateDate(value string) error {
    d, err := time.Parse("2006-01-02", value)
    if err != nil {
        return &ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD form"}
    }
    now := w.cfg.Now()
    today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
    day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
    if !day.After(today) {
        return &ValidationError{Field: "date", Message: "bookings start from tomorrow"}
    }
    if day.After(today.AddDate(0, 0, DateWindowDays)) {
        return &ValidationError{Field: "date", Message: fmt.Sprintf("bookings open only %d days ahead", DateWindowDays)}
    }
    return nil
}

// AvailableDates lists the bookable dates of the forward window.
func AvailableDates(now time.Time) []string {
    out := make([]string, 0, DateWindowDays)
    for i := 1; i <= DateWindowDays; i++ {
        out = append(out, now.AddDate(0, 0, i).Format("2006-01-02"))
    }
    return out
}
