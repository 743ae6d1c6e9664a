package handler

import (
    "fmt"
    "log"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/chat"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
)

// fallbackReply keeps the assistant friendly when the upstream model
// is unreachable. API errors never surface to the visitor.
const fallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// ChatHandler proxies visitor questions to the chat completion API,
// grounding the model with the current approved catalog.
type ChatHandler struct {
    Client     *chat.Client // nil when no API key is configured
    Facilities *registry.FacilityRegistry
}

func NewChatHandler(client *chat.Client, f *registry.FacilityRegistry) *ChatHandler {
    return &ChatHandler{Client: client, Facilities: f}
}

type chatReq struct {
    Message string `json:"message"`
}

type chatResp struct {
    Reply string `json:"reply"`
}

// Ask answers one visitor question. The system prompt carries a
// summary of every approved facility so the model answers about real
// venues instead of inventing them.
func (h *ChatHandler) Ask(c echo.Context) error {
    var req chatReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(req.Message) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "message required"})
    }
    if h.Client == nil {
        return c.JSON(http.StatusOK, chatResp{Reply: fallbackReply})
    }

    reply, err := h.Client.Complete(c.Request().Context(), []chat.Message{
        {Role: "system", Content: h.systemPrompt()},
        {Role: "user", Content: req.Message},
    })
    if err != nil {
        log.Printf("chat: completion failed: %v", err)
        return c.JSON(http.StatusOK, chatResp{Reply: fallbackReply})
    }
    return c.JSON(http.StatusOK, chatResp{Reply: reply})
}

func (h *ChatHandler) systemPrompt() string {
    var b strings.Builder
    b.WriteString("You are the QuickCourt assistant. Help visitors find and book sports facilities. ")
    b.WriteString("Answer briefly and only about the facilities listed below.\n\n")
    for _, f := range h.Facilities.Approved() {
        fmt.Fprintf(&b, "- %s (%s): %s. Sports: %s. Price per hour: %.0f INR. Rating: %.1f.\n",
            f.Name, f.Location, f.Description, strings.Join(f.Sports, ", "), f.PricePerHour, f.Rating)
    }
    return b.String()
}
