package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
)

// defaultDeliveryTimeout bounds one daily-fact resolution and push.
const defaultDeliveryTimeout = 25 * time.Second

// subscribeUsage is returned for malformed /subscribe commands.
const subscribeUsage = "Usage: /subscribe HH:MM [country] (time is UTC, e.g. /subscribe 09:00 Japan)"

// defaultCountries is the pool a subscription without a fixed country draws
// from.
var defaultCountries = []string{
	"Japan", "Kenya", "Brazil", "Norway", "Vietnam", "Morocco",
	"Peru", "New Zealand", "Portugal", "Mongolia", "Ghana", "Iceland",
}

// Resolver produces the country summary text for a piece of user text.
type Resolver interface {
	Resolve(ctx context.Context, userText string) (string, error)
}

// Notifier delivers a JSON-RPC envelope to a webhook.
type Notifier interface {
	Push(ctx context.Context, config *a2a.PushNotificationConfig, envelope a2a.JSONRPCResponse) error
}

// Service runs daily-fact subscriptions. It implements the server's
// CommandHandler interface for /subscribe and /unsubscribe, and runs a
// minute ticker that delivers due summaries through the notifier.
type Service struct {
	store    *Store
	resolver Resolver
	notifier Notifier
	logger   *common.Logger

	now func() time.Time

	// lastSent maps contextId to the "date HH:MM" last delivered, so a
	// subscription fires at most once per scheduled minute.
	lastSent map[string]string
}

// New creates a scheduler Service.
func New(store *Store, resolver Resolver, notifier Notifier, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.DefaultLogger()
	}
	return &Service{
		store:    store,
		resolver: resolver,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		lastSent: make(map[string]string),
	}
}

// HandleCommand processes /subscribe and /unsubscribe. Any other text is
// left to the regular resolution pipeline.
func (s *Service) HandleCommand(ctx context.Context, contextID, text string, push *a2a.PushNotificationConfig) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return "", false
	}

	switch strings.ToLower(fields[0]) {
	case "/subscribe":
		return s.handleSubscribe(contextID, fields[1:], push), true
	case "/unsubscribe":
		return s.handleUnsubscribe(contextID), true
	default:
		return "", false
	}
}

func (s *Service) handleSubscribe(contextID string, args []string, push *a2a.PushNotificationConfig) string {
	if push == nil || push.URL == "" {
		return "Subscriptions need a push notification config so I know where to deliver the daily fact."
	}
	if len(args) == 0 {
		return subscribeUsage
	}

	at, err := time.Parse("15:04", args[0])
	if err != nil {
		return subscribeUsage
	}

	sub := Subscription{
		ContextID: contextID,
		Time:      at.Format("15:04"),
		Country:   strings.Join(args[1:], " "),
		Push:      *push,
	}
	if err := s.store.Upsert(sub); err != nil {
		s.logger.Error("Failed to save subscription for context %s: %v", contextID, err)
		return "Sorry, I couldn't save your subscription right now. Please try again."
	}

	if sub.Country != "" {
		return fmt.Sprintf("Subscribed. You'll get a daily fact about %s at %s UTC.", sub.Country, sub.Time)
	}
	return fmt.Sprintf("Subscribed. You'll get a daily fact about a different country at %s UTC.", sub.Time)
}

func (s *Service) handleUnsubscribe(contextID string) string {
	removed, err := s.store.Remove(contextID)
	if err != nil {
		s.logger.Error("Failed to remove subscription for context %s: %v", contextID, err)
		return "Sorry, I couldn't update your subscription right now. Please try again."
	}
	if !removed {
		return "You don't have an active subscription."
	}
	return "Unsubscribed. You'll no longer receive daily country facts."
}

// Start runs the delivery loop until ctx is cancelled. It ticks once a
// minute and fires every subscription whose HH:MM matches the current UTC
// minute.
func (s *Service) Start(ctx context.Context) {
	s.logger.Info("Starting daily fact scheduler")
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Daily fact scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick delivers every subscription due at the current UTC minute.
func (s *Service) tick(ctx context.Context) {
	now := s.now().UTC()
	minute := now.Format("15:04")
	stamp := now.Format("2006-01-02 15:04")

	subs, err := s.store.Load()
	if err != nil {
		s.logger.Error("Failed to load subscriptions: %v", err)
		return
	}

	for _, sub := range subs {
		if sub.Time != minute || s.lastSent[sub.ContextID] == stamp {
			continue
		}
		s.lastSent[sub.ContextID] = stamp
		go s.deliver(ctx, sub)
	}
}

// deliver resolves the subscription's summary and pushes it as a completed
// task envelope. Failures are logged; there is no retry until the next day.
func (s *Service) deliver(ctx context.Context, sub Subscription) {
	rctx, cancel := context.WithTimeout(ctx, defaultDeliveryTimeout)
	defer cancel()

	country := sub.Country
	if country == "" {
		country = defaultCountries[rand.Intn(len(defaultCountries))]
	}

	text, err := s.resolver.Resolve(rctx, country)
	if err != nil {
		s.logger.Warn("Daily fact resolution for context %s (%s) degraded: %v", sub.ContextID, country, err)
	}

	envelope := s.buildEnvelope(sub.ContextID, text)
	if err := s.notifier.Push(rctx, &sub.Push, envelope); err != nil {
		s.logger.Warn("Failed to deliver daily fact for context %s: %v", sub.ContextID, err)
		return
	}
	s.logger.Info("Delivered daily fact for context %s (%s)", sub.ContextID, country)
}

// buildEnvelope wraps the summary text in a completed task envelope, the
// same shape webhook consumers receive for asynchronous message/send tasks.
func (s *Service) buildEnvelope(contextID, text string) a2a.JSONRPCResponse {
	taskID := uuid.NewString()
	agentMsg := a2a.Message{
		Kind:      a2a.KindMessage,
		Role:      a2a.RoleAgent,
		Parts:     []a2a.Part{a2a.TextPart(text)},
		MessageID: uuid.NewString(),
		TaskID:    taskID,
	}
	task := a2a.Task{
		ID:        taskID,
		ContextID: contextID,
		Status: a2a.TaskStatus{
			State:     a2a.TaskStateCompleted,
			Timestamp: s.now().UTC(),
			Message:   &agentMsg,
		},
		Artifacts: []a2a.Artifact{},
		History:   []a2a.Message{agentMsg},
		Kind:      a2a.KindTask,
	}
	return a2a.JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  task,
		ID:      taskID,
	}
}
