// Package ids allocates the identifiers used across services.
//
// Job ids are bare v4 UUIDs. Run ids carry a "run-" prefix so they are
// recognizable in bundle names and log lines.
package ids

import "github.com/google/uuid"

// NewJobID returns a fresh job identifier.
func NewJobID() string {
	return uuid.NewString()
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return "run-" + uuid.NewString()
}
