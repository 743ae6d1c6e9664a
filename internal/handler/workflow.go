package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/workflow"
)

// WorkflowHandler drives bookings through the state machine over HTTP.
// Each step maps to one endpoint; the client polls status while the
// scripted payment transitions fire server-side.
type WorkflowHandler struct {
    Manager    *workflow.Manager
    Facilities *registry.FacilityRegistry
}

func NewWorkflowHandler(m *workflow.Manager, f *registry.FacilityRegistry) *WorkflowHandler {
    return &WorkflowHandler{Manager: m, Facilities: f}
}

type startReq struct {
    FacilityID string `json:"facilityId"`
}

type workflowResp struct {
    ID      string         `json:"id"`
    State   workflow.State `json:"state"`
    Booking *model.Booking `json:"booking,omitempty"`
}

func respOf(w *workflow.Workflow) workflowResp {
    return workflowResp{ID: w.ID(), State: w.State(), Booking: w.Booking()}
}

// Start opens a booking workflow against an approved facility.
func (h *WorkflowHandler) Start(c echo.Context) error {
    var req startReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    f, err := h.Facilities.ByID(req.FacilityID)
    if err != nil || f.Status != model.StatusApproved {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "facility not found"})
    }
    userID, _ := c.Get("user_id").(string)
    w := h.Manager.Start(userID, f)
    return c.JSON(http.StatusCreated, respOf(w))
}

// Status reports the current state and, after payment, the booking.
func (h *WorkflowHandler) Status(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    return c.JSON(http.StatusOK, respOf(w))
}

// Select stores the court, date, slot, duration, party size and add-on
// picks. May be called repeatedly while selecting.
func (h *WorkflowHandler) Select(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    var sel workflow.Selection
    if err := c.Bind(&sel); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := w.Select(sel); err != nil {
        return h.stepError(c, err)
    }
    return c.JSON(http.StatusOK, respOf(w))
}

// Review advances from selecting to the details step.
func (h *WorkflowHandler) Review(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    if err := w.BeginReview(); err != nil {
        return h.stepError(c, err)
    }
    return c.JSON(http.StatusOK, respOf(w))
}

// Details submits the contact details, creating the booking record.
func (h *WorkflowHandler) Details(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    var d workflow.Details
    if err := c.Bind(&d); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := w.SubmitDetails(ctx, d); err != nil {
        return h.stepError(c, err)
    }
    return c.JSON(http.StatusOK, respOf(w))
}

type methodReq struct {
    Method string `json:"method"`
}

// Method records the payment method and shows the QR step.
func (h *WorkflowHandler) Method(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    var req methodReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := w.ChooseMethod(req.Method); err != nil {
        return h.stepError(c, err)
    }
    return c.JSON(http.StatusOK, respOf(w))
}

// Scan simulates scanning the QR code; payment processing begins and
// the remaining transitions fire on their own.
func (h *WorkflowHandler) Scan(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    if err := w.Pay(); err != nil {
        return h.stepError(c, err)
    }
    return c.JSON(http.StatusOK, respOf(w))
}

// Cancel aborts the workflow if payment has not started processing.
func (h *WorkflowHandler) Cancel(c echo.Context) error {
    w, ok := h.Manager.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "workflow not found"})
    }
    if err := w.Cancel(); err != nil {
        return h.stepError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// stepError maps workflow errors onto HTTP codes. Validation failures
// carry their field name; state errors are conflicts.
func (h *WorkflowHandler) stepError(c echo.Context, err error) error {
    var ve *workflow.ValidationError
    if errors.As(err, &ve) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
    }
    if errors.Is(err, workflow.ErrNotCancellable) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "payment already processing"})
    }
    if errors.Is(err, workflow.ErrInvalidState) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "operation not allowed in current state"})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "workflow step failed"})
}
