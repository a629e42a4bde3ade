// Package history provides bounded persistence for completed meetings.
//
// The store keeps only the 100 most recent meetings: adding beyond the cap
// evicts the oldest entries, and a failed insert is retried once after
// halving the retained history. Everything else about a stored meeting is
// immutable except explicit whole-record replacement by ID.
package history

import (
	"context"
	"errors"

	"github.com/meetcost/meetcost/internal/models"
)

// MaxMeetings is the retention cap.
const MaxMeetings = 100

// ErrNotFound is returned when no meeting has the requested ID.
var ErrNotFound = errors.New("meeting not found")

// Store defines the interface for meeting history storage. The
// abstraction allows swapping backends without touching callers.
type Store interface {
	// Add persists a meeting, evicting the oldest entries beyond
	// MaxMeetings. trimmed reports whether any eviction happened.
	// The meeting's ID field is populated if empty.
	Add(ctx context.Context, meeting *models.Meeting) (trimmed bool, err error)

	// List returns all stored meetings, newest first.
	List(ctx context.Context) ([]models.Meeting, error)

	// Get retrieves one meeting by ID; ErrNotFound if absent.
	Get(ctx context.Context, id string) (*models.Meeting, error)

	// Update replaces the stored meeting with the given ID;
	// ErrNotFound if absent.
	Update(ctx context.Context, id string, meeting *models.Meeting) error

	// Clear removes all stored meetings.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
