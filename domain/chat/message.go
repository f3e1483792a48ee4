// Package chat holds the value types exchanged between the hub, its history and its callers.
// Messages are immutable once accepted by the hub.
package chat

import (
	"chat-relay/errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MessageID is assigned by the hub from a counter starting at 1.
// An id is never reused, even after its message was evicted or deleted.
type MessageID uint64

func (id MessageID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseMessageID reads the base-10 wire form of a MessageID.
func ParseMessageID(s string) (MessageID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty message id", errors.ErrInvalidInput)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: malformed message id %q", errors.ErrInvalidInput, s)
	}
	return MessageID(v), nil
}

type Message struct {
	ID        MessageID
	Sender    string
	Content   string
	CreatedAt time.Time
}

// Timestamp returns the acceptance time in seconds since epoch.
func (m Message) Timestamp() int64 {
	return m.CreatedAt.Unix()
}
