package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type PendingEvent struct {
	Type          string `json:"type"`
	PendingID     string `json:"pending_id"`
	OriginalTitle string `json:"original_title,omitempty"`
	Status        string `json:"status,omitempty"`
	Timestamp     string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyPendingCreated announces a new review-queue entry.
func NotifyPendingCreated(id uuid.UUID, originalTitle string) {
	publish(PendingEvent{
		Type:          "pending_created",
		PendingID:     id.String(),
		OriginalTitle: originalTitle,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

// NotifyPendingResolved announces an approve or reject decision.
func NotifyPendingResolved(id uuid.UUID, status string) {
	publish(PendingEvent{
		Type:      "pending_resolved",
		PendingID: id.String(),
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func publish(evt PendingEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
