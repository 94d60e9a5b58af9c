package photos

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPhotoNotFound = errors.New("progress photo not found")

type ListParams struct {
	UserID   int
	ViewType ViewType // empty: all view types
	From     *time.Time
	To       *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id int) (_ *ProgressPhoto, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("photo.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, view_type, taken_at, image_path, body_weight_kg, created_at
			FROM progress_photo
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
		return nil, ErrPhotoNotFound
	}

	var photo ProgressPhoto
	if err := rows.Scan(
		&photo.ID, &photo.UserID, &photo.ViewType, &photo.TakenAt,
		&photo.ImagePath, &photo.BodyWeightKg, &photo.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &photo, nil
}

// GetAll returns the photos with the given IDs, in the order requested.
func (r *Repo) GetAll(ctx context.Context, ids []int) (_ []ProgressPhoto, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.getAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, view_type, taken_at, image_path, body_weight_kg, created_at
			FROM progress_photo
			WHERE id = ANY($1);`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[int]ProgressPhoto)
	for rows.Next() {
		var photo ProgressPhoto
		if err := rows.Scan(
			&photo.ID, &photo.UserID, &photo.ViewType, &photo.TakenAt,
			&photo.ImagePath, &photo.BodyWeightKg, &photo.CreatedAt,
		); err != nil {
			return nil, err
		}
		byID[photo.ID] = photo
	}

	// selection order encodes the slot order, keep it
	ordered := make([]ProgressPhoto, 0, len(ids))
	for _, id := range ids {
		photo, ok := byID[id]
		if !ok {
			return nil, ErrPhotoNotFound
		}
		ordered = append(ordered, photo)
	}

	return ordered, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []ProgressPhoto, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.photos.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	query := `SELECT
			id, user_id, view_type, taken_at, image_path, body_weight_kg, created_at
		FROM progress_photo
		WHERE user_id = $1`
	args := []any{params.UserID}

	if params.ViewType != "" {
		args = append(args, params.ViewType)
		query += ` AND view_type = $2`
	}
	if params.From != nil {
		args = append(args, *params.From)
		query += ` AND taken_at >= $` + strconv.Itoa(len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		query += ` AND taken_at <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY taken_at ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var photosList []ProgressPhoto
	for rows.Next() {
		var photo ProgressPhoto
		if err := rows.Scan(
			&photo.ID, &photo.UserID, &photo.ViewType, &photo.TakenAt,
			&photo.ImagePath, &photo.BodyWeightKg, &photo.CreatedAt,
		); err != nil {
			return nil, err
		}
		photosList = append(photosList, photo)
	}

	return photosList, nil
}
