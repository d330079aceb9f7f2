package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// TaskStore is the in-memory registry of tasks. It owns every task for its
// lifetime: callers only ever see snapshots, and all mutation goes through
// the store so that state transitions for a task are serialized.
type TaskStore interface {
	// Create registers a new task in the submitted state and returns a
	// snapshot of it.
	Create(contextID string) a2a.Task

	// Get returns a snapshot of the task, or ErrTaskNotFound.
	Get(id string) (a2a.Task, error)

	// AppendHistory appends a message to the task's history.
	AppendHistory(id string, msg a2a.Message) error

	// Transition moves the task to newState. It fails with
	// ErrInvalidTransition when newState does not follow the current state.
	Transition(id string, newState a2a.TaskState) error

	// SetResult atomically transitions a running task to completed with the
	// given agent message as its result.
	SetResult(id string, msg a2a.Message) error

	// Fail atomically transitions a running task to failed with the given
	// agent message explaining the failure.
	Fail(id string, msg a2a.Message) error
}

// taskRecord is the store-internal representation of a task.
type taskRecord struct {
	task      a2a.Task
	createdAt time.Time
	updatedAt time.Time
}

// InMemoryTaskStore is a TaskStore backed by a map. Tasks live for the
// duration of the process; there is no persistence across restarts.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*taskRecord
}

// NewInMemoryTaskStore creates an empty InMemoryTaskStore.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		tasks: make(map[string]*taskRecord),
	}
}

// Create implements TaskStore.Create.
func (s *InMemoryTaskStore) Create(contextID string) a2a.Task {
	now := time.Now().UTC()

	task := a2a.Task{
		ID:        uuid.NewString(),
		ContextID: contextID,
		Status: a2a.TaskStatus{
			State:     a2a.TaskStateSubmitted,
			Timestamp: now,
		},
		Artifacts: []a2a.Artifact{},
		History:   []a2a.Message{},
		Kind:      a2a.KindTask,
	}

	s.mu.Lock()
	s.tasks[task.ID] = &taskRecord{task: task, createdAt: now, updatedAt: now}
	s.mu.Unlock()

	return snapshot(&task)
}

// Get implements TaskStore.Get.
func (s *InMemoryTaskStore) Get(id string) (a2a.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tasks[id]
	if !ok {
		return a2a.Task{}, a2a.ErrTaskNotFound(id)
	}
	return snapshot(&rec.task), nil
}

// AppendHistory implements TaskStore.AppendHistory.
func (s *InMemoryTaskStore) AppendHistory(id string, msg a2a.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok {
		return a2a.ErrTaskNotFound(id)
	}

	rec.task.History = append(rec.task.History, msg)
	rec.updatedAt = time.Now().UTC()
	return nil
}

// Transition implements TaskStore.Transition.
func (s *InMemoryTaskStore) Transition(id string, newState a2a.TaskState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(id, newState, nil)
}

// SetResult implements TaskStore.SetResult.
func (s *InMemoryTaskStore) SetResult(id string, msg a2a.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(id, a2a.TaskStateCompleted, &msg)
}

// Fail implements TaskStore.Fail.
func (s *InMemoryTaskStore) Fail(id string, msg a2a.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(id, a2a.TaskStateFailed, &msg)
}

// transitionLocked applies a state transition under the store lock,
// enforcing the submitted -> running -> {completed, failed} lifecycle.
func (s *InMemoryTaskStore) transitionLocked(id string, newState a2a.TaskState, statusMsg *a2a.Message) error {
	rec, ok := s.tasks[id]
	if !ok {
		return a2a.ErrTaskNotFound(id)
	}

	if !rec.task.Status.State.CanTransitionTo(newState) {
		return a2a.ErrInvalidTransition(rec.task.Status.State, newState)
	}

	now := time.Now().UTC()
	rec.task.Status = a2a.TaskStatus{
		State:     newState,
		Timestamp: now,
		Message:   statusMsg,
	}
	rec.updatedAt = now
	return nil
}

// snapshot returns a deep copy of the task so callers cannot mutate
// store-owned state through shared slices or pointers.
func snapshot(t *a2a.Task) a2a.Task {
	out := *t

	out.History = make([]a2a.Message, len(t.History))
	for i, msg := range t.History {
		out.History[i] = copyMessage(msg)
	}

	out.Artifacts = make([]a2a.Artifact, len(t.Artifacts))
	for i, art := range t.Artifacts {
		out.Artifacts[i] = art
		out.Artifacts[i].Parts = append([]a2a.Part(nil), art.Parts...)
	}

	if t.Status.Message != nil {
		msg := copyMessage(*t.Status.Message)
		out.Status.Message = &msg
	}

	return out
}

func copyMessage(msg a2a.Message) a2a.Message {
	msg.Parts = append([]a2a.Part(nil), msg.Parts...)
	return msg
}
