package chat

// HubStats is a point-in-time snapshot of the hub counters.
type HubStats struct {
	Subscribers int
	Retained    int
	Accepted    uint64
	Dropped     uint64
}

// SubscriberStats describes the backlog of one registered subscriber.
type SubscriberStats struct {
	ID       string
	Seq      uint64
	Length   int
	Capacity int
	Dropped  uint64
}
