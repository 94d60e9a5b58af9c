package measurements

import (
	"context"

	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO measurement (user_id, type, value, recorded_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;`,
		entry.UserID, entry.Type, entry.Value, entry.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &entry, nil
}

// List returns the series for one measurement type, oldest first.
func (r *Repo) List(ctx context.Context, userID int, measurementType Type) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("measurement.type", string(measurementType)),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, type, value, recorded_at, created_at
			FROM measurement
			WHERE user_id = $1 AND type = $2
			ORDER BY recorded_at ASC;`,
		userID, measurementType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Type,
			&entry.Value, &entry.RecordedAt, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ListAll returns every series of a user keyed by measurement type,
// each ordered oldest first.
func (r *Repo) ListAll(ctx context.Context, userID int) (_ map[Type][]Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, type, value, recorded_at, created_at
			FROM measurement
			WHERE user_id = $1
			ORDER BY recorded_at ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	seriesByType := make(map[Type][]Entry)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Type,
			&entry.Value, &entry.RecordedAt, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		seriesByType[entry.Type] = append(seriesByType[entry.Type], entry)
	}

	return seriesByType, nil
}
