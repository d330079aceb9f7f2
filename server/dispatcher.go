package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
)

// DefaultResolveTimeout bounds the whole resolution pipeline for one task.
const DefaultResolveTimeout = 25 * time.Second

// TextResolver produces the agent's answer text for a user's message text.
// A nil error means a full answer; a non-nil error classifies why only an
// explanatory text could be produced.
type TextResolver interface {
	Resolve(ctx context.Context, userText string) (string, error)
}

// CommandHandler intercepts chat commands (such as subscription management)
// ahead of country resolution. It returns the reply text and whether the
// input was a command it handled.
type CommandHandler interface {
	HandleCommand(ctx context.Context, contextID, text string, push *a2a.PushNotificationConfig) (string, bool)
}

// Dispatcher drives the task state machine. It admits decoded message/send
// requests, runs the resolution pipeline in blocking or non-blocking mode,
// and hands terminal envelopes to the push notifier for webhook delivery.
type Dispatcher struct {
	store          TaskStore
	resolver       TextResolver
	notifier       *PushNotifier
	commands       CommandHandler
	logger         *common.Logger
	resolveTimeout time.Duration
}

// DispatcherConfig carries the optional knobs of a Dispatcher.
type DispatcherConfig struct {
	// ResolveTimeout bounds the resolution pipeline. Zero means
	// DefaultResolveTimeout.
	ResolveTimeout time.Duration

	// Commands optionally handles chat commands before country resolution.
	Commands CommandHandler
}

// NewDispatcher creates a Dispatcher over the given collaborators.
func NewDispatcher(store TaskStore, resolver TextResolver, notifier *PushNotifier, logger *common.Logger, cfg DispatcherConfig) *Dispatcher {
	if logger == nil {
		logger = common.DefaultLogger()
	}
	timeout := cfg.ResolveTimeout
	if timeout == 0 {
		timeout = DefaultResolveTimeout
	}

	return &Dispatcher{
		store:          store,
		resolver:       resolver,
		notifier:       notifier,
		commands:       cfg.Commands,
		logger:         logger,
		resolveTimeout: timeout,
	}
}

// HandleMessageSend admits a validated message/send request: it creates the
// task, appends the user message, moves the task to running, and either
// resolves synchronously (blocking mode) or returns a running acknowledgment
// while resolution continues on its own goroutine (non-blocking mode).
func (d *Dispatcher) HandleMessageSend(ctx context.Context, params *a2a.MessageSendParams) (a2a.Task, *a2a.Error) {
	contextID := params.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	task := d.store.Create(contextID)

	userMsg := params.Message
	userMsg.Kind = a2a.KindMessage
	userMsg.TaskID = task.ID

	if err := d.store.AppendHistory(task.ID, userMsg); err != nil {
		return a2a.Task{}, a2a.ErrInternalError(err)
	}
	if err := d.store.Transition(task.ID, a2a.TaskStateRunning); err != nil {
		return a2a.Task{}, a2a.ErrInternalError(err)
	}

	push := params.Configuration.PushConfig()

	if params.Configuration.IsBlocking() {
		rctx, cancel := context.WithTimeout(ctx, d.resolveTimeout)
		defer cancel()
		d.runPipeline(rctx, task.ID, contextID, userMsg.Text(), push)

		snap, err := d.store.Get(task.ID)
		if err != nil {
			return a2a.Task{}, a2a.ErrInternalError(err)
		}
		return snap, nil
	}

	// Non-blocking: the acknowledgment is a running snapshot with empty
	// history; the full history travels only on the terminal envelope.
	ack, err := d.store.Get(task.ID)
	if err != nil {
		return a2a.Task{}, a2a.ErrInternalError(err)
	}
	ack.History = []a2a.Message{}

	go d.resolveDetached(task.ID, contextID, userMsg.Text(), push)

	return ack, nil
}

// resolveDetached runs the pipeline on its own goroutine, detached from the
// inbound request's lifetime, and then attempts webhook delivery of the
// terminal envelope. Pipeline completion strictly precedes the delivery
// attempt.
func (d *Dispatcher) resolveDetached(taskID, contextID, userText string, push *a2a.PushNotificationConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), d.resolveTimeout)
	defer cancel()

	d.runPipeline(ctx, taskID, contextID, userText, push)

	if push == nil || push.URL == "" {
		d.logger.Warn("task %s resolved without a push notification config; result is only reachable via tasks/get", taskID)
		return
	}

	snap, err := d.store.Get(taskID)
	if err != nil {
		d.logger.Error("task %s disappeared before webhook delivery: %v", taskID, err)
		return
	}

	envelope := a2a.JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  snap,
		ID:      taskID,
	}

	if err := d.notifier.Push(context.Background(), push, envelope); err != nil {
		// Delivery is best-effort: the task stays terminal either way.
		d.logger.Warn("webhook delivery for task %s failed: %v", taskID, err)
		return
	}

	d.logger.Info("delivered terminal envelope for task %s to %s", taskID, push.URL)
}

// runPipeline resolves the user's text and applies the terminal transition.
// Resolution failures become a failed task carrying explanatory agent text;
// they are never surfaced as protocol errors.
func (d *Dispatcher) runPipeline(ctx context.Context, taskID, contextID, userText string, push *a2a.PushNotificationConfig) {
	text, resolveErr := d.answer(ctx, contextID, userText, push)

	agentMsg := a2a.Message{
		Kind:      a2a.KindMessage,
		Role:      a2a.RoleAgent,
		Parts:     []a2a.Part{a2a.TextPart(text)},
		MessageID: uuid.NewString(),
		TaskID:    taskID,
	}

	if err := d.store.AppendHistory(taskID, agentMsg); err != nil {
		d.logger.Error("failed to append agent message to task %s: %v", taskID, err)
		return
	}

	if resolveErr != nil {
		d.logger.Info("task %s failed: %v", taskID, resolveErr)
		if err := d.store.Fail(taskID, agentMsg); err != nil {
			d.logger.Error("failed to fail task %s: %v", taskID, err)
		}
		return
	}

	if err := d.store.SetResult(taskID, agentMsg); err != nil {
		d.logger.Error("failed to complete task %s: %v", taskID, err)
	}
}

// answer routes the user text either to the command handler or to the
// resolution pipeline.
func (d *Dispatcher) answer(ctx context.Context, contextID, userText string, push *a2a.PushNotificationConfig) (string, error) {
	if d.commands != nil && strings.HasPrefix(strings.TrimSpace(userText), "/") {
		if reply, handled := d.commands.HandleCommand(ctx, contextID, userText, push); handled {
			return reply, nil
		}
	}
	return d.resolver.Resolve(ctx, userText)
}
