package chat

import (
	"chat-relay/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMessageID(t *testing.T) {
	req := require.New(t)

	id, err := ParseMessageID("42")
	req.NoError(err)
	req.Equal(MessageID(42), id)
	req.Equal("42", id.String())

	id, err = ParseMessageID(" 7 ")
	req.NoError(err)
	req.Equal(MessageID(7), id)
}

func TestParseMessageID_Malformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "-1", "0", "1.5", "99999999999999999999999"} {
		t.Run(raw, func(t *testing.T) {
			req := require.New(t)
			_, err := ParseMessageID(raw)
			req.ErrorIs(err, errors.ErrInvalidInput)
		})
	}
}

func TestMessage_Timestamp(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC)
	msg := Message{ID: 1, Sender: "alice", Content: "hi", CreatedAt: at}
	req.Equal(at.Unix(), msg.Timestamp())
}
