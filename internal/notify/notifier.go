package notify

import (
	"go.uber.org/zap"
)

// Event is published once per classified gateway reply.
type Event struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload"`
}

// Notifier delivers transaction events. Publish is synchronous and
// fire-and-forget: implementations swallow delivery failures and never block
// the calling operation on acknowledgement.
type Notifier interface {
	Publish(event Event)
}

// ZapNotifier emits transaction events as structured log entries.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Publish(event Event) {
	n.logger.Info("transaction event",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.Bool("success", event.Success),
		zap.Any("payload", event.Payload),
	)
}
