package errorlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one append-only audit row for an unhandled failure.
type Record struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Message    string    `json:"message" db:"message"`
	StackTrace *string   `json:"stack_trace,omitempty" db:"stack_trace"`
	Date       time.Time `json:"date" db:"date"`
}

// Recorder appends failure records. Implementations must never panic;
// audit failures are logged and swallowed by callers.
type Recorder interface {
	Record(ctx context.Context, message string, stackTrace string) error
}
