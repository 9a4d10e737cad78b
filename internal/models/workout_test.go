package models

import (
	"testing"
	"time"
)

func testEntry(date string) Entry {
	return Entry{
		Date:     date,
		UserID:   "42",
		Username: "tester",
		RawInput: "5 pull-ups",
		Exercises: []Exercise{
			{
				Name:         "pull-ups",
				ActivityType: ActivityTypeDefault,
				Sets: []Set{
					{SetNumber: 1, Metrics: []Metric{{Type: MetricReps, Value: 5, Unit: "reps"}}},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		workout ParsedWorkout
		wantErr bool
	}{
		{
			name:    "valid",
			workout: ParsedWorkout{Entries: []Entry{testEntry("2026-08-29")}},
			wantErr: false,
		},
		{
			name:    "no entries",
			workout: ParsedWorkout{},
			wantErr: true,
		},
		{
			name: "bad date",
			workout: ParsedWorkout{Entries: []Entry{
				testEntry("29.08.2026"),
			}},
			wantErr: true,
		},
		{
			name: "entry without exercises",
			workout: ParsedWorkout{Entries: []Entry{
				{Date: "2026-08-29", UserID: "42"},
			}},
			wantErr: true,
		},
		{
			name: "negative metric",
			workout: ParsedWorkout{Entries: []Entry{
				{
					Date: "2026-08-29",
					Exercises: []Exercise{{
						Name: "squats",
						Sets: []Set{{SetNumber: 1, Metrics: []Metric{{Type: MetricReps, Value: -1}}}},
					}},
				},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.workout.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	workout := ParsedWorkout{Entries: []Entry{
		{
			Exercises: []Exercise{{
				Name: "push-ups",
				Sets: []Set{{}, {}},
			}},
		},
	}}

	workout.Normalize(now)

	e := workout.Entries[0]
	if e.Date != "2026-08-29" {
		t.Errorf("Date = %q, want %q", e.Date, "2026-08-29")
	}
	if e.Exercises[0].ActivityType != ActivityTypeDefault {
		t.Errorf("ActivityType = %q, want %q", e.Exercises[0].ActivityType, ActivityTypeDefault)
	}
	if e.Exercises[0].Sets[1].SetNumber != 2 {
		t.Errorf("SetNumber = %d, want 2", e.Exercises[0].Sets[1].SetNumber)
	}
}

func TestTotalExercises(t *testing.T) {
	workout := ParsedWorkout{Entries: []Entry{
		testEntry("2026-08-28"),
		testEntry("2026-08-29"),
	}}
	if got := workout.TotalExercises(); got != 2 {
		t.Errorf("TotalExercises() = %d, want 2", got)
	}
}

func TestRepsMetric(t *testing.T) {
	e := testEntry("2026-08-29")
	if got := e.Exercises[0].RepsMetric(); got != 5 {
		t.Errorf("RepsMetric() = %v, want 5", got)
	}

	empty := Exercise{Name: "plank"}
	if got := empty.RepsMetric(); got != 0 {
		t.Errorf("RepsMetric() = %v, want 0", got)
	}
}
