package models

import (
	"fmt"
	"time"
)

// Типы метрик подхода
const (
	MetricReps     = "reps"
	MetricWeight   = "weight"
	MetricTime     = "time"
	MetricDistance = "distance"
)

// ActivityTypeDefault тип активности по умолчанию
const ActivityTypeDefault = "exercise"

// DateLayout формат даты записи тренировки
const DateLayout = "2006-01-02"

// Metric — одна метрика подхода (повторы, вес, время, дистанция)
type Metric struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Set — один подход упражнения
type Set struct {
	SetNumber int      `json:"set_number"`
	Metrics   []Metric `json:"metrics"`
}

// Exercise — упражнение внутри записи тренировки
type Exercise struct {
	Name         string `json:"name"`
	ActivityType string `json:"activity_type"`
	Notes        string `json:"notes,omitempty"`
	Sets         []Set  `json:"sets"`
}

// Entry — запись тренировки за одну дату
type Entry struct {
	Date      string     `json:"date"`
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	RawInput  string     `json:"raw_input"`
	Exercises []Exercise `json:"exercises"`
}

// ParsedWorkout — результат разбора свободного текста
type ParsedWorkout struct {
	Entries []Entry `json:"entries"`
}

// Workout — сохранённая запись тренировки из БД
type Workout struct {
	ID        string
	Date      string
	UserID    string
	Username  string
	RawInput  string
	CreatedAt time.Time
}

// ExerciseTotal — суммарные повторы по упражнению
type ExerciseTotal struct {
	Name      string
	TotalReps float64
	Sets      int
}

// Normalize заполняет значения по умолчанию после разбора
func (p *ParsedWorkout) Normalize(now time.Time) {
	for i := range p.Entries {
		e := &p.Entries[i]
		if e.Date == "" {
			e.Date = now.Format(DateLayout)
		}
		for j := range e.Exercises {
			ex := &e.Exercises[j]
			if ex.ActivityType == "" {
				ex.ActivityType = ActivityTypeDefault
			}
			for k := range ex.Sets {
				if ex.Sets[k].SetNumber == 0 {
					ex.Sets[k].SetNumber = k + 1
				}
			}
		}
	}
}

// Validate проверяет структуру разобранной тренировки
func (p *ParsedWorkout) Validate() error {
	if len(p.Entries) == 0 {
		return fmt.Errorf("нет ни одной записи тренировки")
	}

	for _, e := range p.Entries {
		if _, err := time.Parse(DateLayout, e.Date); err != nil {
			return fmt.Errorf("некорректная дата %q: %w", e.Date, err)
		}
		if len(e.Exercises) == 0 {
			return fmt.Errorf("запись за %s не содержит упражнений", e.Date)
		}
		for _, ex := range e.Exercises {
			if ex.Name == "" {
				return fmt.Errorf("упражнение без названия в записи за %s", e.Date)
			}
			for _, s := range ex.Sets {
				for _, m := range s.Metrics {
					if m.Value < 0 {
						return fmt.Errorf("отрицательное значение метрики %s у %q", m.Type, ex.Name)
					}
				}
			}
		}
	}

	return nil
}

// TotalExercises возвращает общее число упражнений во всех записях
func (p *ParsedWorkout) TotalExercises() int {
	total := 0
	for _, e := range p.Entries {
		total += len(e.Exercises)
	}
	return total
}

// RepsMetric возвращает метрику повторов первого подхода (0 — если нет)
func (ex *Exercise) RepsMetric() float64 {
	if len(ex.Sets) == 0 {
		return 0
	}
	for _, m := range ex.Sets[0].Metrics {
		if m.Type == MetricReps {
			return m.Value
		}
	}
	return 0
}
