package supabase

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gymlog/internal/models"
)

func testEntry() models.Entry {
	return models.Entry{
		Date:     "2026-08-29",
		UserID:   "42",
		Username: "tester",
		RawInput: "5 pull-ups",
		Exercises: []models.Exercise{
			{
				Name:         "pull-ups",
				ActivityType: models.ActivityTypeDefault,
				Sets: []models.Set{
					{SetNumber: 1, Metrics: []models.Metric{{Type: models.MetricReps, Value: 5, Unit: "reps"}}},
				},
			},
		},
	}
}

func TestLogEntries_Cascade(t *testing.T) {
	var tables []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("метод = %s, ожидался POST", r.Method)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("нет заголовка apikey")
		}
		if r.Header.Get("Authorization") != "Bearer anon-key" {
			t.Errorf("нет заголовка Authorization")
		}

		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
		tables = append(tables, table)

		var rows []map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			t.Fatalf("ошибка декодирования тела: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("строк = %d, ожидалась 1", len(rows))
		}
		if id, _ := rows[0]["id"].(string); id == "" {
			t.Error("id должен генерироваться на клиенте")
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rows)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	ids, err := client.LogEntries([]models.Entry{testEntry()})
	if err != nil {
		t.Fatalf("LogEntries() error = %v", err)
	}

	if len(ids) != 1 || ids[0] == "" {
		t.Errorf("ids = %v, ожидался один id тренировки", ids)
	}

	want := []string{"workouts", "exercises", "exercise_sets", "exercise_metrics"}
	if len(tables) != len(want) {
		t.Fatalf("вставок = %d (%v), ожидалось %d", len(tables), tables, len(want))
	}
	for i, table := range want {
		if tables[i] != table {
			t.Errorf("вставка %d в %q, ожидалась в %q", i, tables[i], table)
		}
	}
}

func TestLogEntries_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "JWT expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	_, err := client.LogEntries([]models.Entry{testEntry()})
	if err == nil {
		t.Fatal("ожидалась ошибка API")
	}
	if !strings.Contains(err.Error(), "JWT expired") {
		t.Errorf("ошибка %q должна содержать сообщение API", err)
	}
}

func TestRecentWorkouts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/workouts" {
			t.Errorf("путь = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("user_id") != "eq.42" {
			t.Errorf("фильтр user_id = %q, ожидался eq.42", q.Get("user_id"))
		}
		if q.Get("order") != "created_at.desc" {
			t.Errorf("order = %q", q.Get("order"))
		}
		if q.Get("limit") != "5" {
			t.Errorf("limit = %q", q.Get("limit"))
		}

		json.NewEncoder(w).Encode([]workoutRow{
			{ID: "w1", Date: "2026-08-29", UserID: "42", Username: "tester", RawInput: "5 pull-ups", CreatedAt: time.Now()},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	workouts, err := client.RecentWorkouts("42", 5)
	if err != nil {
		t.Fatalf("RecentWorkouts() error = %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != "w1" {
		t.Errorf("workouts = %+v", workouts)
	}
}

func TestExerciseTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !strings.Contains(q.Get("select"), "exercise_metrics") {
			t.Errorf("select = %q, нет вложенной выборки метрик", q.Get("select"))
		}
		if q.Get("date") != "gte.2026-08-22" {
			t.Errorf("фильтр date = %q", q.Get("date"))
		}

		w.Write([]byte(`[
			{"exercises": [
				{"name": "pull-ups", "exercise_sets": [
					{"id": "s1", "exercise_metrics": [{"metric_type": "reps", "value": 5}]},
					{"id": "s2", "exercise_metrics": [{"metric_type": "reps", "value": 5}]}
				]},
				{"name": "running", "exercise_sets": [
					{"id": "s3", "exercise_metrics": [{"metric_type": "distance", "value": 5}]}
				]}
			]}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	since := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	totals, err := client.ExerciseTotals("42", since)
	if err != nil {
		t.Fatalf("ExerciseTotals() error = %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("totals = %+v, ожидалось 2 упражнения", totals)
	}
	if totals[0].Name != "pull-ups" || totals[0].TotalReps != 10 || totals[0].Sets != 2 {
		t.Errorf("pull-ups = %+v, ожидалось 10 повторов в 2 подходах", totals[0])
	}
	if totals[1].Name != "running" || totals[1].TotalReps != 0 {
		t.Errorf("running = %+v, повторы не должны считаться из дистанции", totals[1])
	}
}

func TestUserIDs_Dedup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"user_id": "42"}, {"user_id": "42"}, {"user_id": "7"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	ids, err := client.UserIDs()
	if err != nil {
		t.Fatalf("UserIDs() error = %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("ids = %v, дубликаты должны убираться", ids)
	}
}
