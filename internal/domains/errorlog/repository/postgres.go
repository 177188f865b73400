package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/errorlog"
)

type postgresRecorder struct {
	pool *pgxpool.Pool
}

func NewPostgresRecorder(pool *pgxpool.Pool) errorlog.Recorder {
	return &postgresRecorder{pool: pool}
}

func (r *postgresRecorder) Record(ctx context.Context, message string, stackTrace string) error {
	query := `
		INSERT INTO errors (id, message, stack_trace, date)
		VALUES ($1, $2, $3, $4)
	`

	var trace *string
	if stackTrace != "" {
		trace = &stackTrace
	}

	_, err := r.pool.Exec(ctx, query, uuid.New(), message, trace, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record error: %w", err)
	}
	return nil
}
