package supabase

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	"gymlog/internal/models"

	"github.com/google/uuid"
)

// workoutRow — строка таблицы workouts в представлении PostgREST
type workoutRow struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	RawInput  string    `json:"raw_input"`
	CreatedAt time.Time `json:"created_at"`
}

// LogEntries сохраняет записи тренировок каскадом через PostgREST.
// id генерируются на клиенте — ссылки между таблицами нужны до вставки.
func (c *Client) LogEntries(entries []models.Entry) ([]string, error) {
	var workoutIDs []string

	for _, entry := range entries {
		workoutID := uuid.New().String()

		err := c.insert("workouts", []map[string]interface{}{{
			"id":        workoutID,
			"date":      entry.Date,
			"user_id":   entry.UserID,
			"username":  entry.Username,
			"raw_input": entry.RawInput,
		}}, nil)
		if err != nil {
			return nil, fmt.Errorf("ошибка сохранения тренировки за %s: %w", entry.Date, err)
		}
		workoutIDs = append(workoutIDs, workoutID)

		for _, ex := range entry.Exercises {
			exerciseID := uuid.New().String()
			payload := map[string]interface{}{
				"id":            exerciseID,
				"workout_id":    workoutID,
				"name":          ex.Name,
				"activity_type": ex.ActivityType,
			}
			if ex.Notes != "" {
				payload["notes"] = ex.Notes
			}
			err := c.insert("exercises", []map[string]interface{}{payload}, nil)
			if err != nil {
				return nil, fmt.Errorf("ошибка сохранения упражнения %q: %w", ex.Name, err)
			}

			for _, set := range ex.Sets {
				setID := uuid.New().String()
				err := c.insert("exercise_sets", []map[string]interface{}{{
					"id":          setID,
					"exercise_id": exerciseID,
					"set_number":  set.SetNumber,
				}}, nil)
				if err != nil {
					return nil, fmt.Errorf("ошибка сохранения подхода %d: %w", set.SetNumber, err)
				}

				for _, metric := range set.Metrics {
					err := c.insert("exercise_metrics", []map[string]interface{}{{
						"id":          uuid.New().String(),
						"set_id":      setID,
						"metric_type": metric.Type,
						"value":       metric.Value,
						"unit":        metric.Unit,
					}}, nil)
					if err != nil {
						return nil, fmt.Errorf("ошибка сохранения метрики %s: %w", metric.Type, err)
					}
				}
			}
		}
	}

	return workoutIDs, nil
}

// RecentWorkouts возвращает последние тренировки пользователя
func (c *Client) RecentWorkouts(userID string, limit int) ([]models.Workout, error) {
	query := url.Values{}
	query.Set("select", "id,date,user_id,username,raw_input,created_at")
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.desc")
	query.Set("limit", fmt.Sprintf("%d", limit))

	var rows []workoutRow
	if err := c.get("workouts", query, &rows); err != nil {
		return nil, err
	}

	workouts := make([]models.Workout, 0, len(rows))
	for _, row := range rows {
		workouts = append(workouts, models.Workout{
			ID:        row.ID,
			Date:      row.Date,
			UserID:    row.UserID,
			Username:  row.Username,
			RawInput:  row.RawInput,
			CreatedAt: row.CreatedAt,
		})
	}
	return workouts, nil
}

// statsRow — вложенное представление для подсчёта итогов
type statsRow struct {
	Exercises []struct {
		Name string `json:"name"`
		Sets []struct {
			ID      string `json:"id"`
			Metrics []struct {
				MetricType string  `json:"metric_type"`
				Value      float64 `json:"value"`
			} `json:"exercise_metrics"`
		} `json:"exercise_sets"`
	} `json:"exercises"`
}

// ExerciseTotals считает суммарные повторы по упражнениям с указанной даты.
// PostgREST не умеет агрегаты без представлений, поэтому считаем на клиенте
// по вложенной выборке.
func (c *Client) ExerciseTotals(userID string, since time.Time) ([]models.ExerciseTotal, error) {
	query := url.Values{}
	query.Set("select", "exercises(name,exercise_sets(id,exercise_metrics(metric_type,value)))")
	query.Set("user_id", "eq."+userID)
	query.Set("date", "gte."+since.Format(models.DateLayout))

	var rows []statsRow
	if err := c.get("workouts", query, &rows); err != nil {
		return nil, err
	}

	byName := make(map[string]*models.ExerciseTotal)
	for _, row := range rows {
		for _, ex := range row.Exercises {
			total, ok := byName[ex.Name]
			if !ok {
				total = &models.ExerciseTotal{Name: ex.Name}
				byName[ex.Name] = total
			}
			for _, set := range ex.Sets {
				total.Sets++
				for _, m := range set.Metrics {
					if m.MetricType == models.MetricReps {
						total.TotalReps += m.Value
					}
				}
			}
		}
	}

	totals := make([]models.ExerciseTotal, 0, len(byName))
	for _, total := range byName {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalReps != totals[j].TotalReps {
			return totals[i].TotalReps > totals[j].TotalReps
		}
		return totals[i].Name < totals[j].Name
	})
	return totals, nil
}

// UserIDs возвращает всех пользователей с записями
func (c *Client) UserIDs() ([]string, error) {
	query := url.Values{}
	query.Set("select", "user_id")

	var rows []struct {
		UserID string `json:"user_id"`
	}
	if err := c.get("workouts", query, &rows); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var ids []string
	for _, row := range rows {
		if !seen[row.UserID] {
			seen[row.UserID] = true
			ids = append(ids, row.UserID)
		}
	}
	return ids, nil
}
