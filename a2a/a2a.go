// Package a2a defines the wire-level types of the Agent-to-Agent (A2A)
// protocol as used by the country facts agent: JSON-RPC 2.0 envelopes,
// messages, tasks and push notification configuration.
package a2a

import (
	"encoding/json"
	"time"
)

// --- Enums / Constants ---

// TaskState represents the state of a task.
type TaskState string

const (
	TaskStateSubmitted TaskState = "submitted"
	TaskStateRunning   TaskState = "running"
	TaskStateCompleted TaskState = "completed"
	TaskStateFailed    TaskState = "failed"
)

// Terminal reports whether the state admits no further transitions.
func (s TaskState) Terminal() bool {
	return s == TaskStateCompleted || s == TaskStateFailed
}

// CanTransitionTo reports whether next is a legal successor of s.
// The lifecycle is strictly submitted -> running -> {completed, failed}.
func (s TaskState) CanTransitionTo(next TaskState) bool {
	switch s {
	case TaskStateSubmitted:
		return next == TaskStateRunning
	case TaskStateRunning:
		return next == TaskStateCompleted || next == TaskStateFailed
	default:
		return false
	}
}

// Role represents the role of a message sender.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Object kind discriminators carried on the wire.
const (
	KindMessage  = "message"
	KindTask     = "task"
	PartKindText = "text"
)

// --- Core A2A Objects ---

// Part is a piece of message content. This agent only exchanges text parts.
type Part struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Kind: PartKindText, Text: text}
}

// Message represents a message exchanged between a user and the agent.
// The validate tags describe the shape required of inbound messages.
type Message struct {
	Kind      string         `json:"kind"`
	Role      Role           `json:"role" validate:"required"`
	Parts     []Part         `json:"parts" validate:"required,min=1"`
	MessageID string         `json:"messageId" validate:"required"`
	TaskID    string         `json:"taskId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Text returns the concatenation of the message's text parts.
func (m Message) Text() string {
	var out string
	for _, p := range m.Parts {
		if p.Kind == PartKindText {
			if out != "" {
				out += "\n"
			}
			out += p.Text
		}
	}
	return out
}

// TaskStatus represents the status details of a task.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Timestamp time.Time `json:"timestamp"`
	Message   *Message  `json:"message,omitempty"`
}

// Artifact represents an output artifact of a task. The country facts agent
// produces none, but the field is part of the task envelope.
type Artifact struct {
	ArtifactID string `json:"artifactId"`
	Name       string `json:"name,omitempty"`
	Parts      []Part `json:"parts"`
}

// Task represents an A2A task envelope.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts"`
	History   []Message  `json:"history"`
	Kind      string     `json:"kind"`
}

// --- Push Notifications ---

// PushNotificationConfig holds the caller-supplied webhook destination for
// non-blocking tasks. The token is sent back as a bearer credential.
type PushNotificationConfig struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}

// --- Method Params ---

// Configuration carries per-request options of the message/send method.
type Configuration struct {
	AcceptedOutputModes    []string                `json:"acceptedOutputModes,omitempty"`
	HistoryLength          int                     `json:"historyLength,omitempty"`
	Blocking               *bool                   `json:"blocking,omitempty"`
	PushNotificationConfig *PushNotificationConfig `json:"pushNotificationConfig,omitempty"`
}

// IsBlocking reports whether the request expects a synchronous terminal
// response. Blocking is the default when the flag is absent.
func (c *Configuration) IsBlocking() bool {
	if c == nil || c.Blocking == nil {
		return true
	}
	return *c.Blocking
}

// PushConfig returns the push notification config, if any.
func (c *Configuration) PushConfig() *PushNotificationConfig {
	if c == nil {
		return nil
	}
	return c.PushNotificationConfig
}

// MessageSendParams represents the parameters of the message/send method.
type MessageSendParams struct {
	Message       Message        `json:"message"`
	ContextID     string         `json:"contextId,omitempty"`
	Configuration *Configuration `json:"configuration,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// TaskQueryParams represents the parameters of the tasks/get method.
type TaskQueryParams struct {
	ID string `json:"id"`
}

// --- JSON-RPC Structures ---

// JSONRPCRequest represents a JSON-RPC 2.0 request object.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

// JSONRPCResponse represents a JSON-RPC 2.0 response object. Exactly one of
// Result and Error is set.
type JSONRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	Result  any           `json:"result,omitempty"`
	Error   *JSONRPCError `json:"error,omitempty"`
	ID      any           `json:"id"`
}

// Supported JSON-RPC method names.
const (
	MethodMessageSend = "message/send"
	MethodTasksGet    = "tasks/get"
)

// --- Agent Card ---

// AgentCard describes this agent for discovery.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []AgentSkill      `json:"skills"`
}

// AgentCapabilities describes the capabilities of the agent.
type AgentCapabilities struct {
	Streaming         bool `json:"streaming"`
	PushNotifications bool `json:"pushNotifications"`
}

// AgentSkill describes a skill the agent possesses.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
