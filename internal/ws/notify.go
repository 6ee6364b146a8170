package ws

import (
	"encoding/json"
	"time"
)

type SnapshotRefreshedEvent struct {
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// NotifySnapshotRefreshed tells connected clients to re-run their searches.
func (h *Hub) NotifySnapshotRefreshed(kind string, count int) {
	if h == nil {
		return
	}
	b, err := json.Marshal(SnapshotRefreshedEvent{
		Type:      "snapshot_refreshed",
		Kind:      kind,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}
