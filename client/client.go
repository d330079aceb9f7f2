// Package client is a typed client for the country facts agent's A2A
// endpoint: message/send, tasks/get and agent card discovery over JSON-RPC
// 2.0.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// Client talks to a country facts agent.
type Client struct {
	config Config
}

// NewClient creates a client for the agent at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("a base URL is required")
	}

	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{config: cfg}, nil
}

// SendText sends a single user text message in a fresh context and returns
// the resulting task. With the default configuration the call blocks until
// the task is terminal.
func (c *Client) SendText(ctx context.Context, text string) (*a2a.Task, error) {
	return c.SendMessage(ctx, &a2a.MessageSendParams{
		Message: a2a.Message{
			Kind:      a2a.KindMessage,
			Role:      a2a.RoleUser,
			Parts:     []a2a.Part{a2a.TextPart(text)},
			MessageID: uuid.NewString(),
		},
	})
}

// SendMessage invokes message/send with the given params and returns the
// task snapshot from the response envelope.
func (c *Client) SendMessage(ctx context.Context, params *a2a.MessageSendParams) (*a2a.Task, error) {
	return c.callForTask(ctx, a2a.MethodMessageSend, params)
}

// GetTask invokes tasks/get for the given task id.
func (c *Client) GetTask(ctx context.Context, taskID string) (*a2a.Task, error) {
	return c.callForTask(ctx, a2a.MethodTasksGet, &a2a.TaskQueryParams{ID: taskID})
}

// FetchAgentCard retrieves the agent card from the well-known discovery
// path.
func (c *Client) FetchAgentCard(ctx context.Context) (*a2a.AgentCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/.well-known/agent.json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent card request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent card request returned status %d", resp.StatusCode)
	}

	var card a2a.AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode agent card: %w", err)
	}
	return &card, nil
}

// callForTask performs one JSON-RPC call and decodes the result as a task.
// Envelope errors come back as *a2a.Error so callers can inspect the code.
func (c *Client) callForTask(ctx context.Context, method string, params any) (*a2a.Task, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}

	request := a2a.JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  paramsJSON,
		ID:      uuid.NewString(),
	}
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+c.config.RPCPath, bytes.NewReader(requestJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// The agent keeps the transport status at 200; errors live in the
	// envelope.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var envelope struct {
		JSONRPC string            `json:"jsonrpc"`
		Result  json.RawMessage   `json:"result"`
		Error   *a2a.JSONRPCError `json:"error"`
		ID      any               `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Error != nil {
		return nil, a2a.NewError(envelope.Error.Code, envelope.Error.Message)
	}

	var task a2a.Task
	if err := json.Unmarshal(envelope.Result, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}
	return &task, nil
}

func (c *Client) setHeaders(req *http.Request) {
	for name, value := range c.config.AuthHeaders {
		req.Header.Set(name, value)
	}
}
