package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures
const uniqueViolation = "23505"

// Client wraps a pgx connection pool with observability
type Client struct {
	pool *pgxpool.Pool
}

// NewClient wraps an already connected pool
func NewClient(pool *pgxpool.Pool) *Client {
	stat := pool.Stat()
	logger.Info("PostgreSQL client initialized",
		zap.Int32("max_conns", stat.MaxConns()),
	)
	return &Client{pool: pool}
}

// Close closes the connection pool
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
		logger.Info("PostgreSQL connection pool closed")
	}
}

// Ping checks if the database connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Stats returns connection pool statistics
func (c *Client) Stats() *pgxpool.Stat {
	return c.pool.Stat()
}

// recordMetrics records database operation metrics
func recordMetrics(operation, status string, duration float64) {
	metrics.DBClientOperationDuration.WithLabelValues("postgres_"+operation, status).Observe(duration)
	metrics.DBClientOperationTotal.WithLabelValues("postgres_"+operation, status).Inc()
}

// statusOf classifies a query outcome for metrics and logs
func statusOf(err error) string {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, pgx.ErrNoRows):
		return "not_found"
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return "conflict"
	default:
		return "error"
	}
}

// observe records metrics and a call log line for one query
func observe(ctx context.Context, operation string, start time.Time, err error, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	status := statusOf(err)
	if status == "error" {
		fields = append(fields, zap.Error(err))
	}
	recordMetrics(operation, status, duration)
	logger.LogAPICall(ctx, "postgres", operation, status, duration, fields...)
}

// mapError turns driver errors into application errors
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFoundError(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ConflictError(pgErr.ConstraintName)
	}

	return fmt.Errorf("%s query failed: %w", resource, err)
}
