// Package chat implements the facility assistant: a thin client for the
// OpenRouter chat completion API. The handler layer supplies the system
// prompt; this package only does transport.
package chat

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"
    "time"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when no model is configured.
const DefaultModel = "nvidia/nemotron-nano-9b-v2:free"

// ErrNoChoices is returned when the API responds without a completion.
var ErrNoChoices = errors.New("chat: response contained no choices")

// Message is one turn of a conversation.
type Message struct {
    Role    string `json:"role"`
    Content string `json:"content"`
}

// Client talks to the OpenRouter chat completion endpoint.
type Client struct {
    apiKey     string
    model      string
    baseURL    string
    httpClient *http.Client
}

// NewClient creates a chat client. The API key is required.
func NewClient(apiKey, model string) (*Client, error) {
    if apiKey == "" {
        return nil, errors.New("chat: api key is required")
    }
    if model == "" {
        model = DefaultModel
    }
    return &Client{
        apiKey:  apiKey,
        model:   model,
        baseURL: defaultBaseURL,
        httpClient: &http.Client{
            Timeout: 20 * time.Second,
        },
    }, nil
}

type completionRequest struct {
    Model    string    `json:"model"`
    Messages []Message `json:"messages"`
}

type completionResponse struct {
    Choices []struct {
        Message Message `json:"message"`
    } `json:"choices"`
}

// Complete sends the conversation and returns the assistant's reply text.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
    body, err := json.Marshal(completionRequest{Model: c.model, Messages: messages})
    if err != nil {
        return "", err
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
    if err != nil {
        return "", err
    }
    req.Header.Set("Authorization", "Bearer "+c.apiKey)
    req.Header.Set("Content-Type", "application/json")

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return "", err
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return "", fmt.Errorf("chat: request failed with status %d", resp.StatusCode)
    }

    var out completionResponse
    if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
        return "", err
    }
    if len(out.Choices) == 0 {
        return "", ErrNoChoices
    }
    return out.Choices[0].Message.Content, nil
}
