package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

func agentMsg(taskID, text string) a2a.Message {
	return a2a.Message{
		Kind:      a2a.KindMessage,
		Role:      a2a.RoleAgent,
		Parts:     []a2a.Part{a2a.TextPart(text)},
		MessageID: uuid.NewString(),
		TaskID:    taskID,
	}
}

func TestTaskStoreCreate(t *testing.T) {
	store := NewInMemoryTaskStore()

	task := store.Create("ctx-1")
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "ctx-1", task.ContextID)
	assert.Equal(t, a2a.TaskStateSubmitted, task.Status.State)
	assert.False(t, task.Status.Timestamp.IsZero())
	assert.Equal(t, a2a.KindTask, task.Kind)
	assert.Empty(t, task.History)
	assert.Empty(t, task.Artifacts)

	other := store.Create("ctx-2")
	assert.NotEqual(t, task.ID, other.ID)
}

func TestTaskStoreGetNotFound(t *testing.T) {
	store := NewInMemoryTaskStore()

	_, err := store.Get("missing")
	require.Error(t, err)

	a2aErr, ok := err.(*a2a.Error)
	require.True(t, ok)
	assert.Equal(t, a2a.CodeTaskNotFound, a2aErr.Code)
}

func TestTaskStoreLifecycle(t *testing.T) {
	store := NewInMemoryTaskStore()
	task := store.Create("ctx-1")

	require.NoError(t, store.AppendHistory(task.ID, agentMsg(task.ID, "hello")))
	require.NoError(t, store.Transition(task.ID, a2a.TaskStateRunning))

	result := agentMsg(task.ID, "the answer")
	require.NoError(t, store.SetResult(task.ID, result))

	snap, err := store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateCompleted, snap.Status.State)
	require.NotNil(t, snap.Status.Message)
	assert.Equal(t, "the answer", snap.Status.Message.Text())
	assert.Len(t, snap.History, 1)
}

func TestTaskStoreFail(t *testing.T) {
	store := NewInMemoryTaskStore()
	task := store.Create("ctx-1")
	require.NoError(t, store.Transition(task.ID, a2a.TaskStateRunning))

	explanation := agentMsg(task.ID, "Sorry, I couldn't find that country.")
	require.NoError(t, store.Fail(task.ID, explanation))

	snap, err := store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateFailed, snap.Status.State)
	require.NotNil(t, snap.Status.Message)
	assert.Contains(t, snap.Status.Message.Text(), "couldn't find")
}

func TestTaskStoreRejectsInvalidTransitions(t *testing.T) {
	store := NewInMemoryTaskStore()

	// Straight to terminal from submitted.
	task := store.Create("ctx-1")
	err := store.SetResult(task.ID, agentMsg(task.ID, "x"))
	require.Error(t, err)
	a2aErr, ok := err.(*a2a.Error)
	require.True(t, ok)
	assert.Equal(t, a2a.CodeInvalidTransition, a2aErr.Code)

	// Terminal states admit nothing.
	require.NoError(t, store.Transition(task.ID, a2a.TaskStateRunning))
	require.NoError(t, store.SetResult(task.ID, agentMsg(task.ID, "x")))
	assert.Error(t, store.Transition(task.ID, a2a.TaskStateRunning))
	assert.Error(t, store.Fail(task.ID, agentMsg(task.ID, "y")))

	// The failed transition left the task untouched.
	snap, err := store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateCompleted, snap.Status.State)
}

func TestTaskStoreSnapshotsAreIsolated(t *testing.T) {
	store := NewInMemoryTaskStore()
	task := store.Create("ctx-1")
	require.NoError(t, store.AppendHistory(task.ID, agentMsg(task.ID, "one")))

	snap, err := store.Get(task.ID)
	require.NoError(t, err)

	// Mutating the snapshot must not affect the store.
	snap.History[0].Parts[0].Text = "tampered"
	snap.History = append(snap.History, agentMsg(task.ID, "two"))

	fresh, err := store.Get(task.ID)
	require.NoError(t, err)
	require.Len(t, fresh.History, 1)
	assert.Equal(t, "one", fresh.History[0].Text())
}
