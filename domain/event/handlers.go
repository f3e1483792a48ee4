//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=../../mocks/mock_handler.go -package=mocks
package event

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}
