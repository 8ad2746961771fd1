package gateway

import (
	"github.com/google/uuid"

	"pinpay/internal/notify"
)

// classify turns a decoded reply into a status and the payload the rest of
// the operation works with. A reply without the "response" envelope is a
// failure carrying the raw body; with the envelope, the reply is a success
// unless it carries an explicit success=false. Exactly one event is
// published, before the result reaches the caller.
func (g *PinGateway) classify(operation string, reply map[string]interface{}) (Status, map[string]interface{}) {
	envelope, ok := reply["response"].(map[string]interface{})
	if !ok {
		g.publish(operation, StatusFailure, reply)
		return StatusFailure, reply
	}

	status := StatusSuccess
	if flag, ok := envelope["success"].(bool); ok && !flag {
		status = StatusFailure
	}
	g.publish(operation, status, envelope)
	return status, envelope
}

func (g *PinGateway) publish(operation string, status Status, payload map[string]interface{}) {
	g.notifier.Publish(notify.Event{
		ID:      uuid.NewString(),
		Type:    operation,
		Success: status == StatusSuccess,
		Payload: payload,
	})
}
