package counsellor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"counsellor/pkg/metrics"
)

// ChatTurn is one prior exchange in a conversation.
type ChatTurn struct {
	Role    string // "user" or "assistant"
	Content string
}

// LLMClient produces a completion for a system prompt plus conversation.
type LLMClient interface {
	Complete(ctx context.Context, system string, history []ChatTurn, userMessage string) (string, error)
}

// GroqClient talks to an OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewGroqClient(baseURL, model, apiKey string) *GroqClient {
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	return &GroqClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *GroqClient) Complete(ctx context.Context, system string, history []ChatTurn, userMessage string) (string, error) {
	messages := []chatMessage{{Role: "system", Content: system}}
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userMessage})

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordLLMCallLatency(c.model, "error", time.Since(start))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordLLMCallLatency(c.model, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
		return "", fmt.Errorf("llm api status: %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("llm api returned no choices")
	}

	metrics.RecordLLMCallLatency(c.model, "ok", time.Since(start))
	return completion.Choices[0].Message.Content, nil
}
