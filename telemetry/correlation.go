package telemetry

import "github.com/google/uuid"

// NewCorrelationID generates a time-sortable UUIDv7 for tagging a batch
// run's telemetry counters and log lines with a single run identifier.
//
// Grounded on the teacher's foundry.GenerateCorrelationID: UUIDv7 embeds a
// 48-bit timestamp, so correlation IDs collected across a fleet of batch
// jobs sort chronologically in log aggregation without a separate
// timestamp field.
func NewCorrelationID() string {
	return uuid.Must(uuid.NewV7()).String()
}
