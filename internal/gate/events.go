package gate

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// publishEvent notifies subscribers of credential changes (best-effort).
// No redis configured means no events.
func (s *Server) publishEvent(ctx context.Context, eventType string, payload map[string]any) {
	if s.rdb == nil {
		return
	}
	event := map[string]any{
		"id":      uuid.NewString(),
		"type":    eventType,
		"payload": payload,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("m3u-gate: marshal event: %v", err)
		return
	}
	if err := s.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		log.Printf("m3u-gate: publish event: %v", err)
	}
}
