package repositories

import (
	"chat-relay/grpc/chatpb"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"google.golang.org/protobuf/proto"
)

// DB exposes the underlying instance for the debug inspector.
func (h *BadgerHistory) DB() *badger.DB {
	return h.db
}

// InspectMapper renders a retained message as a row of the badger debug inspector.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	stored := &chatpb.StoredMessage{}
	if err := proto.Unmarshal(val, stored); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = "CHAT"
	row.Detail = fmt.Sprintf("[%s] %s: %s",
		time.Unix(0, stored.GetCreatedAt()).UTC().Format(time.RFC3339), stored.GetSender(), stored.GetContent())
	return row
}
