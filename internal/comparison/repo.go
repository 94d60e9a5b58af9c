package comparison

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrComparisonNotFound = errors.New("comparison not found")

// Comparison is one saved before/after composition: the ordered photo
// selection plus its settings document.
type Comparison struct {
	ID       int      `json:"id"`
	UserID   int      `json:"userId"`
	PhotoIDs []int    `json:"photoIds"`
	Settings Settings `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, comparison Comparison) (_ *Comparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comparison.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", comparison.UserID))

	settingsJson, err := EncodeSettingsJSON(comparison.Settings)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO comparison (user_id, photo_ids, settings)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at;`,
		comparison.UserID, comparison.PhotoIDs, settingsJson,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&comparison.ID, &comparison.CreatedAt, &comparison.UpdatedAt); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &comparison, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Comparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comparison.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("comparison.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, photo_ids, settings, created_at, updated_at
			FROM comparison
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrComparisonNotFound
	}

	return scanComparison(rows)
}

func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Comparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comparison.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, photo_ids, settings, created_at, updated_at
			FROM comparison
			WHERE user_id = $1
			ORDER BY updated_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var comparisons []Comparison
	for rows.Next() {
		comparison, err := scanComparison(rows)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, *comparison)
	}

	return comparisons, nil
}

// UpdateSettings persists a new settings document for an existing
// comparison.
func (r *Repo) UpdateSettings(ctx context.Context, id int, settings Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comparison.updateSettings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("comparison.id", id))

	settingsJson, err := EncodeSettingsJSON(settings)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE comparison
			SET settings = $1, updated_at = NOW()
			WHERE id = $2;`,
		settingsJson, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrComparisonNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comparison.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("comparison.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM comparison WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrComparisonNotFound
	}

	return nil
}

// AddArtifact records one produced export image.
func (r *Repo) AddArtifact(ctx context.Context, artifact ExportArtifact) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comparison.addArtifact")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("comparison.id", artifact.ComparisonID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO comparison_export (id, comparison_id, image_path, created_at)
			VALUES ($1, $2, $3, $4);`,
		artifact.ID, artifact.ComparisonID, artifact.ImagePath, artifact.CreatedAt,
	)
	return err
}

type comparisonRow interface {
	Scan(dest ...any) error
}

func scanComparison(row comparisonRow) (*Comparison, error) {
	var comparison Comparison
	var settingsJson []byte
	if err := row.Scan(
		&comparison.ID, &comparison.UserID, &comparison.PhotoIDs,
		&settingsJson, &comparison.CreatedAt, &comparison.UpdatedAt,
	); err != nil {
		return nil, err
	}

	settings, err := DecodeSettingsJSON(settingsJson)
	if err != nil {
		return nil, err
	}
	comparison.Settings = settings

	return &comparison, nil
}
