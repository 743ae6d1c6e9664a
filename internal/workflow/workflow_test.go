package workflow

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// fixedNow pins the clock so the date window is deterministic.
var fixedNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) // a Monday

func testFacility() model.Facility {
    return model.Facility{
        ID: "f1", Name: "Test Arena", Location: "here",
        Sports: []string{"Badminton"}, PricePerHour: 100,
        OwnerID: "owner_1", Status: model.StatusApproved,
    }
}

func testConfig(t *testing.T) (Config, *registry.BookingStore) {
    t.Helper()
    bs := registry.NewBookingStore(context.Background(), store.NewMemoryStore(), nil)
    return Config{
        Bookings: bs,
        Courts: []model.Court{
            {ID: "c1", FacilityID: "f1", Name: "Court 1", Sport: "Badminton", IsActive: true},
        },
        Timings: Timings{}, // instant transitions
        Now:     func() time.Time { return fixedNow },
    }, bs
}

func validSelection() Selection {
    return Selection{
        CourtID:     "c1",
        Date:        "2025-06-05",
        TimeSlot:    "18:00-19:00",
        Duration:    1,
        PersonCount: 2,
    }
}

func validDetails() Details {
    return Details{Email: "player@example.com", Phone: "9876543210", Address: "12 Main St"}
}

func TestBookingRejectedWithoutDateOrSlot(t *testing.T) {
    cfg, bs := testConfig(t)
    w := New("u1", testFacility(), cfg)

    sel := validSelection()
    sel.Date = ""
    require.NoError(t, w.Select(sel))

    err := w.BeginReview()
    var ve *ValidationError
    require.ErrorAs(t, err, &ve)
    assert.Equal(t, "date", ve.Field)
    assert.Equal(t, StateSelecting, w.State())

    sel = validSelection()
    sel.TimeSlot = ""
    require.NoError(t, w.Select(sel))
    err = w.BeginReview()
    require.ErrorAs(t, err, &ve)
    assert.Equal(t, "timeSlot", ve.Field)

    // Nothing may have been persisted by the failed attempts.
    assert.Empty(t, bs.List())
}

func TestSelectionValidation(t *testing.T) {
    cfg, _ := testConfig(t)
    w := New("u1", testFacility(), cfg)

    cases := []struct {
        name  string
        mut   func(*Selection)
        field string
    }{
        {"duration too small", func(s *Selection) { s.Duration = 0.25 }, "duration"},
        {"duration too large", func(s *Selection) { s.Duration = 8.5 }, "duration"},
        {"duration off the half-hour grid", func(s *Selection) { s.Duration = 1.3 }, "duration"},
        {"party too large", func(s *Selection) { s.PersonCount = 21 }, "personCount"},
        {"party too small", func(s *Selection) { s.PersonCount = 0 }, "personCount"},
        {"unknown slot", func(s *Selection) { s.TimeSlot = "23:00-24:00" }, "timeSlot"},
        {"date today", func(s *Selection) { s.Date = "2025-06-02" }, "date"},
        {"date beyond window", func(s *Selection) { s.Date = "2025-06-17" }, "date"},
        {"malformed date", func(s *Selection) { s.Date = "05/06/2025" }, "date"},
        {"foreign court", func(s *Selection) { s.CourtID = "other" }, "courtId"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            sel := validSelection()
            tc.mut(&sel)
            err := w.Select(sel)
            var ve *ValidationError
            require.ErrorAs(t, err, &ve)
            assert.Equal(t, tc.field, ve.Field)
        })
    }

    // Edge of the window is still valid: 14 days out.
    sel := validSelection()
    sel.Date = "2025-06-16"
    assert.NoError(t, w.Select(sel))
}

func TestHappyPathThroughPayment(t *testing.T) {
    cfg, bs := testConfig(t)
    var confirmed []model.Booking
    cfg.OnConfirmed = func(b model.Booking) { confirmed = append(confirmed, b) }
    w := New("u1", testFacility(), cfg)

    sel := validSelection()
    sel.PersonCount = 4
    sel.Services = model.AddonServices{Equipment: true}
    require.NoError(t, w.Select(sel))
    require.NoError(t, w.BeginReview())
    assert.Equal(t, StateReviewingDetails, w.State())

    require.NoError(t, w.SubmitDetails(context.Background(), validDetails()))
    assert.Equal(t, StatePaymentMethod, w.State())

    // The booking record exists as soon as details are submitted.
    items := bs.List()
    require.Len(t, items, 1)
    b := items[0]
    assert.Equal(t, "u1", b.UserID)
    assert.Equal(t, "f1", b.FacilityID)
    // 100 * 1.20 peak, weekday, 1h, 4 persons: 120 * 0.90 = 108, + 50 equipment.
    assert.Equal(t, 158, b.TotalPrice)
    assert.Equal(t, model.BookingConfirmed, b.Status)

    require.NoError(t, w.ChooseMethod("")) // defaults to upi
    assert.Equal(t, StatePaymentQR, w.State())

    require.NoError(t, w.Pay())

    select {
    case <-w.Done():
    case <-time.After(2 * time.Second):
        t.Fatal("workflow did not finish")
    }
    assert.Equal(t, StateDone, w.State())
    require.Len(t, confirmed, 1)
    assert.Equal(t, b.ID, confirmed[0].ID)
}

func TestCancelAllowedUntilProcessing(t *testing.T) {
    cfg, _ := testConfig(t)
    // Slow timings so the workflow stays in processing long enough to observe.
    cfg.Timings = Timings{Processing: time.Minute, Success: time.Minute}

    w := New("u1", testFacility(), cfg)
    require.NoError(t, w.Select(validSelection()))
    require.NoError(t, w.BeginReview())
    require.NoError(t, w.SubmitDetails(context.Background(), validDetails()))
    require.NoError(t, w.ChooseMethod("card"))
    assert.Equal(t, StatePaymentQR, w.State())

    // Still cancellable at the QR step.
    require.NoError(t, w.Cancel())
    assert.Equal(t, StateDone, w.State())

    // A fresh workflow that has started processing is not.
    w2 := New("u1", testFacility(), cfg)
    require.NoError(t, w2.Select(validSelection()))
    require.NoError(t, w2.BeginReview())
    require.NoError(t, w2.SubmitDetails(context.Background(), validDetails()))
    require.NoError(t, w2.ChooseMethod("upi"))
    require.NoError(t, w2.Pay())
    assert.ErrorIs(t, w2.Cancel(), ErrNotCancellable)
    w2.Close()
}

func TestDetailsValidation(t *testing.T) {
    cfg, bs := testConfig(t)
    w := New("u1", testFacility(), cfg)
    require.NoError(t, w.Select(validSelection()))
    require.NoError(t, w.BeginReview())

    cases := []struct {
        name  string
        mut   func(*Details)
        field string
    }{
        {"bad email", func(d *Details) { d.Email = "not-an-email" }, "email"},
        {"spaces in email", func(d *Details) { d.Email = "a b@example.com" }, "email"},
        {"short phone", func(d *Details) { d.Phone = "98765" }, "phone"},
        {"phone with bad prefix", func(d *Details) { d.Phone = "1234567890" }, "phone"},
        {"missing address", func(d *Details) { d.Address = "" }, "address"},
        {"party override out of range", func(d *Details) { d.PersonCount = 25 }, "personCount"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            d := validDetails()
            tc.mut(&d)
            err := w.SubmitDetails(context.Background(), d)
            var ve *ValidationError
            require.ErrorAs(t, err, &ve)
            assert.Equal(t, tc.field, ve.Field)
            assert.Equal(t, StateReviewingDetails, w.State())
        })
    }
    assert.Empty(t, bs.List())
}

func TestStepsRejectWrongState(t *testing.T) {
    cfg, _ := testConfig(t)
    w := New("u1", testFacility(), cfg)

    assert.ErrorIs(t, w.SubmitDetails(context.Background(), validDetails()), ErrInvalidState)
    assert.ErrorIs(t, w.ChooseMethod("upi"), ErrInvalidState)
    assert.ErrorIs(t, w.Pay(), ErrInvalidState)

    require.NoError(t, w.Cancel())
    assert.ErrorIs(t, w.Select(validSelection()), ErrInvalidState)
    assert.ErrorIs(t, w.Cancel(), ErrInvalidState)
}

func TestManagerTracksLiveWorkflows(t *testing.T) {
    cfg, _ := testConfig(t)
    m := NewManager(cfg)

    w := m.Start("u1", testFacility())
    got, ok := m.Get(w.ID())
    require.True(t, ok)
    assert.Same(t, w, got)

    require.NoError(t, w.Cancel())
    assert.Eventually(t, func() bool {
        _, ok := m.Get(w.ID())
        return !ok
    }, time.Second, 5*time.Millisecond)
}

func TestAvailableDates(t *testing.T) {
    dates := AvailableDates(fixedNow)
    require.Len(t, dates, DateWindowDays)
    assert.Equal(t, "2025-06-03", dates[0])
    assert.Equal(t, "2025-06-16", dates[len(dates)-1])
}
