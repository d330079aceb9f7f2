package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
	"github.com/Fritz-nvm/Telex-AI-agent/country"
)

// stubResolver resolves every input to a fixed answer, or to an explanatory
// text plus classification error.
type stubResolver struct {
	text string
	err  error
}

func (r *stubResolver) Resolve(ctx context.Context, userText string) (string, error) {
	return r.text, r.err
}

func userParams(text string, cfg *a2a.Configuration) *a2a.MessageSendParams {
	return &a2a.MessageSendParams{
		Message: a2a.Message{
			Kind:      a2a.KindMessage,
			Role:      a2a.RoleUser,
			Parts:     []a2a.Part{a2a.TextPart(text)},
			MessageID: "msg-1",
		},
		ContextID:     "ctx-1",
		Configuration: cfg,
	}
}

func newTestDispatcher(resolver TextResolver, commands CommandHandler) (*Dispatcher, TaskStore) {
	store := NewInMemoryTaskStore()
	d := NewDispatcher(store, resolver, NewPushNotifier(time.Second), testLogger(), DispatcherConfig{
		ResolveTimeout: 2 * time.Second,
		Commands:       commands,
	})
	return d, store
}

func TestHandleMessageSendBlocking(t *testing.T) {
	d, _ := newTestDispatcher(&stubResolver{text: "Japan [JP]\n..."}, nil)

	task, rpcErr := d.HandleMessageSend(context.Background(), userParams("tell me about Japan", nil))
	require.Nil(t, rpcErr)

	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
	assert.Equal(t, "ctx-1", task.ContextID)
	require.NotNil(t, task.Status.Message)
	assert.Equal(t, a2a.RoleAgent, task.Status.Message.Role)
	assert.Contains(t, task.Status.Message.Text(), "Japan [JP]")

	// History carries user then agent message, both tagged with the task id.
	require.Len(t, task.History, 2)
	assert.Equal(t, a2a.RoleUser, task.History[0].Role)
	assert.Equal(t, a2a.RoleAgent, task.History[1].Role)
	assert.Equal(t, task.ID, task.History[0].TaskID)
	assert.Equal(t, task.ID, task.History[1].TaskID)
}

func TestHandleMessageSendResolutionFailureIsAFailedTask(t *testing.T) {
	d, _ := newTestDispatcher(&stubResolver{
		text: `Sorry, I couldn't find a country called "Wakanda".`,
		err:  fmt.Errorf("%w: Wakanda", country.ErrCountryNotFound),
	}, nil)

	task, rpcErr := d.HandleMessageSend(context.Background(), userParams("tell me about Wakanda", nil))

	// Domain failures never surface as protocol errors.
	require.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateFailed, task.Status.State)
	require.NotNil(t, task.Status.Message)
	assert.Contains(t, task.Status.Message.Text(), "Wakanda")
	require.Len(t, task.History, 2)
}

func TestHandleMessageSendGeneratesContextID(t *testing.T) {
	d, _ := newTestDispatcher(&stubResolver{text: "ok"}, nil)

	params := userParams("tell me about Japan", nil)
	params.ContextID = ""

	task, rpcErr := d.HandleMessageSend(context.Background(), params)
	require.Nil(t, rpcErr)
	assert.NotEmpty(t, task.ContextID)
}

func TestHandleMessageSendNonBlocking(t *testing.T) {
	delivered := make(chan a2a.JSONRPCResponse, 1)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hook-token", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		var envelope a2a.JSONRPCResponse
		require.NoError(t, json.Unmarshal(body, &envelope))
		delivered <- envelope
	}))
	defer hook.Close()

	d, store := newTestDispatcher(&stubResolver{text: "Japan [JP]\n..."}, nil)

	nonBlocking := false
	ack, rpcErr := d.HandleMessageSend(context.Background(), userParams("tell me about Japan", &a2a.Configuration{
		Blocking: &nonBlocking,
		PushNotificationConfig: &a2a.PushNotificationConfig{
			URL:   hook.URL,
			Token: "hook-token",
		},
	}))
	require.Nil(t, rpcErr)

	// The acknowledgment is an immediate running snapshot with empty history.
	assert.Equal(t, a2a.TaskStateRunning, ack.Status.State)
	assert.NotNil(t, ack.History)
	assert.Empty(t, ack.History)

	// The terminal envelope arrives on the webhook once resolution finishes.
	select {
	case envelope := <-delivered:
		assert.Equal(t, "2.0", envelope.JSONRPC)
		assert.Equal(t, ack.ID, envelope.ID)

		data, err := json.Marshal(envelope.Result)
		require.NoError(t, err)
		var task a2a.Task
		require.NoError(t, json.Unmarshal(data, &task))
		assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
		assert.Len(t, task.History, 2)
	case <-time.After(3 * time.Second):
		t.Fatal("webhook delivery never happened")
	}

	// The store holds the terminal task for tasks/get.
	snap, err := store.Get(ack.ID)
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateCompleted, snap.Status.State)
}

func TestHandleMessageSendNonBlockingWebhookFailureKeepsTaskTerminal(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer hook.Close()

	d, store := newTestDispatcher(&stubResolver{text: "ok"}, nil)

	nonBlocking := false
	ack, rpcErr := d.HandleMessageSend(context.Background(), userParams("tell me about Japan", &a2a.Configuration{
		Blocking:               &nonBlocking,
		PushNotificationConfig: &a2a.PushNotificationConfig{URL: hook.URL},
	}))
	require.Nil(t, rpcErr)

	require.Eventually(t, func() bool {
		snap, err := store.Get(ack.ID)
		return err == nil && snap.Status.State.Terminal()
	}, 3*time.Second, 20*time.Millisecond)

	snap, err := store.Get(ack.ID)
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateCompleted, snap.Status.State, "failed delivery must not change the task state")
}

func TestHandleMessageSendNonBlockingWithoutPushConfig(t *testing.T) {
	d, store := newTestDispatcher(&stubResolver{text: "ok"}, nil)

	nonBlocking := false
	ack, rpcErr := d.HandleMessageSend(context.Background(), userParams("tell me about Japan", &a2a.Configuration{
		Blocking: &nonBlocking,
	}))
	require.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateRunning, ack.Status.State)

	// The task still resolves; the result is reachable via tasks/get.
	require.Eventually(t, func() bool {
		snap, err := store.Get(ack.ID)
		return err == nil && snap.Status.State == a2a.TaskStateCompleted
	}, 3*time.Second, 20*time.Millisecond)
}

// recordingCommands handles /ping and rejects everything else.
type recordingCommands struct {
	gotText string
	gotPush *a2a.PushNotificationConfig
}

func (c *recordingCommands) HandleCommand(ctx context.Context, contextID, text string, push *a2a.PushNotificationConfig) (string, bool) {
	c.gotText = text
	c.gotPush = push
	if text == "/ping" {
		return "pong", true
	}
	return "", false
}

func TestHandleMessageSendRoutesCommands(t *testing.T) {
	commands := &recordingCommands{}
	d, _ := newTestDispatcher(&stubResolver{text: "resolved"}, commands)

	task, rpcErr := d.HandleMessageSend(context.Background(), userParams("/ping", nil))
	require.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
	assert.Equal(t, "pong", task.Status.Message.Text())

	// Unhandled commands fall through to the resolver.
	task, rpcErr = d.HandleMessageSend(context.Background(), userParams("/unknown", nil))
	require.Nil(t, rpcErr)
	assert.Equal(t, "resolved", task.Status.Message.Text())

	// Plain text never reaches the command handler.
	commands.gotText = ""
	_, rpcErr = d.HandleMessageSend(context.Background(), userParams("tell me about Japan", nil))
	require.Nil(t, rpcErr)
	assert.Empty(t, commands.gotText)
}
