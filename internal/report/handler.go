package report

import "time"

// now is replaceable in tests.
var now = time.Now

// Handler implements the three transport callbacks the console reacts to:
// connection established, connection lost, and message received. It is
// registered once with the MQTT client at startup and holds no mutable
// state of its own.
type Handler struct {
	dispatcher *Dispatcher
	console    *Console
}

// NewHandler creates a Handler feeding the given dispatcher and console.
func NewHandler(dispatcher *Dispatcher, console *Console) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		console:    console,
	}
}

// HandleConnect prints the connection banner and subscription confirmations.
// Called on initial connect and again on every reconnect; the transport
// layer restores the actual subscriptions itself.
func (h *Handler) HandleConnect() {
	h.console.Connected(AllTopics())
}

// HandleDisconnect prints a connection-lost notice. Reconnection is the
// transport layer's job; the console only reports it.
func (h *Handler) HandleDisconnect(err error) {
	h.console.Disconnected(err)
}

// HandleMessage stamps one inbound delivery with its receipt time and
// dispatches it. It always returns nil: every failure mode is already
// rendered as report content by the dispatcher.
func (h *Handler) HandleMessage(topic string, payload []byte) error {
	h.dispatcher.Dispatch(Message{
		Topic:      topic,
		Payload:    payload,
		ReceivedAt: now(),
	})
	return nil
}
