package chat

// SendMessageCommand carries a sender's intent to broadcast content.
// Identity and timestamp are assigned by the hub, never by the caller.
type SendMessageCommand struct {
	Sender  string `validate:"required"`
	Content string `validate:"required"`
}

// GetHistoryCommand asks for up to Limit of the most recent retained messages.
// A non-positive limit yields an empty result.
type GetHistoryCommand struct {
	Limit int
}

type DeleteMessageCommand struct {
	MessageID string `validate:"required"`
}
