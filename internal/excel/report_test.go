package excel

import (
	"bytes"
	"testing"
	"time"

	"gymlog/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestBuildWorkoutReport(t *testing.T) {
	workouts := []models.Workout{
		{ID: "w1", Date: "2026-08-29", UserID: "42", Username: "tester", RawInput: "5 pull-ups", CreatedAt: time.Now()},
	}
	totals := []models.ExerciseTotal{
		{Name: "pull-ups", TotalReps: 5, Sets: 1},
	}

	data, err := BuildWorkoutReport(workouts, totals)
	if err != nil {
		t.Fatalf("BuildWorkoutReport() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("пустой файл")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("файл не открывается: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Workouts", "A2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if got != "2026-08-29" {
		t.Errorf("A2 = %q, want 2026-08-29", got)
	}

	got, err = f.GetCellValue("Totals", "A2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if got != "pull-ups" {
		t.Errorf("Totals!A2 = %q, want pull-ups", got)
	}
}
