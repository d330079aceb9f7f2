package client

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
	"github.com/Fritz-nvm/Telex-AI-agent/server"
)

type fixedResolver struct {
	text string
}

func (r *fixedResolver) Resolve(ctx context.Context, userText string) (string, error) {
	return r.text, nil
}

func startAgent(t *testing.T) *httptest.Server {
	t.Helper()

	srv, err := server.NewServer(
		server.WithResolver(&fixedResolver{text: "Japan [JP]\n- Capital: Tokyo"}),
		server.WithLogger(common.NewLogger(io.Discard, "error")),
	)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestClientSendText(t *testing.T) {
	ts := startAgent(t)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	task, err := c.SendText(context.Background(), "tell me about Japan")
	require.NoError(t, err)

	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
	require.NotNil(t, task.Status.Message)
	assert.Contains(t, task.Status.Message.Text(), "Japan [JP]")
}

func TestClientGetTask(t *testing.T) {
	ts := startAgent(t)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	created, err := c.SendText(context.Background(), "tell me about Japan")
	require.NoError(t, err)

	fetched, err := c.GetTask(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, a2a.TaskStateCompleted, fetched.Status.State)
}

func TestClientGetTaskNotFound(t *testing.T) {
	ts := startAgent(t)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	_, err = c.GetTask(context.Background(), "no-such-task")
	require.Error(t, err)

	a2aErr, ok := err.(*a2a.Error)
	require.True(t, ok)
	assert.Equal(t, a2a.CodeTaskNotFound, a2aErr.Code)
}

func TestClientFetchAgentCard(t *testing.T) {
	ts := startAgent(t)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	card, err := c.FetchAgentCard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Country Facts Agent", card.Name)
	assert.True(t, card.Capabilities.PushNotifications)
}

func TestClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}
