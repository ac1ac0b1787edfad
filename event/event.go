package event

import "time"

// DatasetUpdatedEvent signals that the source datasets changed and any
// in-memory snapshot should be reloaded. Table is optional; an empty
// value means the whole dataset was republished.
type DatasetUpdatedEvent struct {
	Source     string    `json:"source"`
	Table      string    `json:"table,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
