package repository

import (
	"database/sql"
	"fmt"
	"time"

	"gymlog/internal/models"
)

// WorkoutRepository работает с таблицами тренировок
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository создаёт репозиторий тренировок
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// LogEntries сохраняет записи тренировок каскадом:
// workouts -> exercises -> exercise_sets -> exercise_metrics.
// Всё в одной транзакции, возвращает id созданных тренировок.
func (r *WorkoutRepository) LogEntries(entries []models.Entry) ([]string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback()

	var workoutIDs []string

	for _, entry := range entries {
		var workoutID string
		err := tx.QueryRow(`
			INSERT INTO public.workouts (date, user_id, username, raw_input)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			entry.Date, entry.UserID, entry.Username, entry.RawInput,
		).Scan(&workoutID)
		if err != nil {
			return nil, fmt.Errorf("ошибка сохранения тренировки за %s: %w", entry.Date, err)
		}
		workoutIDs = append(workoutIDs, workoutID)

		for _, ex := range entry.Exercises {
			var exerciseID string
			err := tx.QueryRow(`
				INSERT INTO public.exercises (workout_id, name, activity_type, notes)
				VALUES ($1, $2, $3, NULLIF($4, ''))
				RETURNING id`,
				workoutID, ex.Name, ex.ActivityType, ex.Notes,
			).Scan(&exerciseID)
			if err != nil {
				return nil, fmt.Errorf("ошибка сохранения упражнения %q: %w", ex.Name, err)
			}

			for _, set := range ex.Sets {
				var setID string
				err := tx.QueryRow(`
					INSERT INTO public.exercise_sets (exercise_id, set_number)
					VALUES ($1, $2)
					RETURNING id`,
					exerciseID, set.SetNumber,
				).Scan(&setID)
				if err != nil {
					return nil, fmt.Errorf("ошибка сохранения подхода %d: %w", set.SetNumber, err)
				}

				for _, metric := range set.Metrics {
					_, err := tx.Exec(`
						INSERT INTO public.exercise_metrics (set_id, metric_type, value, unit)
						VALUES ($1, $2, $3, $4)`,
						setID, metric.Type, metric.Value, metric.Unit,
					)
					if err != nil {
						return nil, fmt.Errorf("ошибка сохранения метрики %s: %w", metric.Type, err)
					}
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return workoutIDs, nil
}

// RecentWorkouts возвращает последние тренировки пользователя
func (r *WorkoutRepository) RecentWorkouts(userID string, limit int) ([]models.Workout, error) {
	rows, err := r.db.Query(`
		SELECT id, date::text, user_id, COALESCE(username, ''), COALESCE(raw_input, ''), created_at
		FROM public.workouts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.UserID, &w.Username, &w.RawInput, &w.CreatedAt); err != nil {
			continue
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// ExerciseTotals возвращает суммарные повторы по упражнениям с указанной даты
func (r *WorkoutRepository) ExerciseTotals(userID string, since time.Time) ([]models.ExerciseTotal, error) {
	rows, err := r.db.Query(`
		SELECT e.name,
		       COALESCE(SUM(m.value), 0),
		       COUNT(DISTINCT s.id)
		FROM public.workouts w
		JOIN public.exercises e ON e.workout_id = w.id
		LEFT JOIN public.exercise_sets s ON s.exercise_id = e.id
		LEFT JOIN public.exercise_metrics m ON m.set_id = s.id AND m.metric_type = 'reps'
		WHERE w.user_id = $1 AND w.date >= $2
		GROUP BY e.name
		ORDER BY 2 DESC, e.name`,
		userID, since.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.ExerciseTotal
	for rows.Next() {
		var t models.ExerciseTotal
		if err := rows.Scan(&t.Name, &t.TotalReps, &t.Sets); err != nil {
			continue
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// UserIDs возвращает всех пользователей с записями
func (r *WorkoutRepository) UserIDs() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT user_id FROM public.workouts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close закрывает соединение с базой данных
func (r *WorkoutRepository) Close() error {
	return r.db.Close()
}
