package event

import "time"

type Type string

// Event is a technical notification travelling on the telemetry channel.
// Payload holds one of the structs declared in technical_event.go.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}
