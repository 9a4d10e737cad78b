package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gymlog/internal/config"
	"gymlog/internal/models"

	"github.com/gin-gonic/gin"
)

// fakeStore — хранилище в памяти для тестов
type fakeStore struct {
	entries []models.Entry
	failing bool
}

func (s *fakeStore) LogEntries(entries []models.Entry) ([]string, error) {
	if s.failing {
		return nil, errStore
	}
	s.entries = append(s.entries, entries...)
	ids := make([]string, len(entries))
	for i := range entries {
		ids[i] = "test-id"
	}
	return ids, nil
}

func (s *fakeStore) RecentWorkouts(userID string, limit int) ([]models.Workout, error) {
	return nil, nil
}

func (s *fakeStore) ExerciseTotals(userID string, since time.Time) ([]models.ExerciseTotal, error) {
	return nil, nil
}

func (s *fakeStore) UserIDs() ([]string, error) { return nil, nil }
func (s *fakeStore) Close() error               { return nil }

var errStore = &storeError{}

type storeError struct{}

func (e *storeError) Error() string { return "хранилище недоступно" }

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Без GOOGLE_API_KEY работает локальный парсер
	return NewRouter(store, &config.Config{})
}

func postLog(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/log", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleLog(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := postLog(t, router, `{"input": "5 pull-ups, 10 push-ups"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("код = %d, тело: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success       bool     `json:"success"`
		EntriesLogged int      `json:"entries_logged"`
		WorkoutIDs    []string `json:"workout_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("ошибка разбора ответа: %v", err)
	}

	if !resp.Success || resp.EntriesLogged != 1 || len(resp.WorkoutIDs) != 1 {
		t.Errorf("ответ = %+v", resp)
	}

	if len(store.entries) != 1 {
		t.Fatalf("сохранено записей = %d, ожидалась 1", len(store.entries))
	}
	if store.entries[0].UserID != defaultUserID {
		t.Errorf("UserID = %q, want %q", store.entries[0].UserID, defaultUserID)
	}
	if len(store.entries[0].Exercises) != 2 {
		t.Errorf("упражнений = %d, ожидалось 2", len(store.entries[0].Exercises))
	}
}

func TestHandleLog_CustomUser(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := postLog(t, router, `{"input": "5 squats", "user_id": "42", "username": "tester"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("код = %d, тело: %s", w.Code, w.Body.String())
	}
	if store.entries[0].UserID != "42" || store.entries[0].Username != "tester" {
		t.Errorf("entry = %+v", store.entries[0])
	}
}

func TestHandleLog_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		failing  bool
		wantCode int
	}{
		{"empty input", `{"input": ""}`, false, http.StatusBadRequest},
		{"bad json", `{недоделанный`, false, http.StatusBadRequest},
		{"unparseable", `{"input": "просто был хороший день"}`, false, http.StatusBadRequest},
		{"store failure", `{"input": "5 squats"}`, true, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeStore{failing: tt.failing})
			w := postLog(t, router, tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("код = %d, want %d, тело: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("код = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("тело = %s", w.Body.String())
	}
}

func TestHandleIndex(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("код = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "workoutForm") {
		t.Error("страница не содержит форму")
	}
}
