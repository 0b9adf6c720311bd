// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ResponseLogRepository defines the interface for the immutable response
// audit log. Entries are append-only; there are no update or delete
// operations.
type ResponseLogRepository interface {
	// CreateEntry appends one audit row.
	CreateEntry(ctx context.Context, entry *entity.ResponseLogEntry) error

	// FindEntriesByAlert returns all audit rows for an alert in creation
	// order.
	FindEntriesByAlert(ctx context.Context, alertID uuid.UUID) ([]entity.ResponseLogEntry, error)
}
