package strength

import (
	"context"
	"encoding/json"

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

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metadataJson, err := json.Marshal(exercise.Metadata)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise (user_id, exercise_id, muscle_group, kilos, reps, metadata, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		exercise.UserID, exercise.ExerciseID, exercise.MuscleGroup,
		exercise.Kilos, exercise.Reps, metadataJson, exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&exercise.ID); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &exercise, nil
}

// ListAll returns every set a user has logged, oldest first.
func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, exercise_id, muscle_group, kilos, reps, metadata, created_at
			FROM exercise
			WHERE user_id = $1
			ORDER BY created_at ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var exercises []Exercise
	for rows.Next() {
		var exercise Exercise
		var metadataJson []byte
		if err := rows.Scan(
			&exercise.ID, &exercise.UserID, &exercise.ExerciseID, &exercise.MuscleGroup,
			&exercise.Kilos, &exercise.Reps, &metadataJson, &exercise.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadataJson) > 0 {
			if err := json.Unmarshal(metadataJson, &exercise.Metadata); err != nil {
				return nil, err
			}
		}
		exercises = append(exercises, exercise)
	}

	return exercises, nil
}
