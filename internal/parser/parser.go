package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gymlog/internal/models"
)

// Регулярные выражения для разбора строк тренировки.
// Формат 1: "присед 3x8 60", "squats 3x8x60", "жим 4/10 60" (название, потом подходы)
// Формат 2: "3x8 squats at 60kg" (подходы, потом название)
// Формат 3: "5 pull-ups", "30 берпи" (количество повторов и название)
// Формат 4: "ran 5k in 25 minutes", "пробежал 5 км за 45:18"
// Формат 5: "plank 60 sec", "планка 90 секунд"
var (
	reNameFirst = regexp.MustCompile(`^(.+?)\s+(\d+)\s*[xх/]\s*(\d+)(?:(?:\s*[xх/]\s*|\s+)(\d+(?:[.,]\d+)?)\s*(?:kg|кг)?)?$`)
	reSetsFirst = regexp.MustCompile(`^(\d+)\s*[xх]\s*(\d+)\s+(.+?)(?:\s+(?:at|@|по)\s+(\d+(?:[.,]\d+)?)\s*(?:kg|кг)?)?$`)
	reCountName = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	reRun       = regexp.MustCompile(`(?i)^(?:ran|run|jogged|пробежал(?:а)?|пробежка|бег)\s+(\d+(?:[.,]\d+)?)\s*(k|km|км|m|м|mi|miles?)?(?:\s+(?:in|за)\s+(.+))?$`)
	reDuration  = regexp.MustCompile(`^(.+?)\s+(\d+)\s*(?:sec|seconds|сек|секунд)\.?$`)

	reMinSec  = regexp.MustCompile(`^(\d+):(\d{2})$`)
	reMinutes = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(?:minutes?|mins?|мин(?:ут|уты)?)\.?$`)
	reSeconds = regexp.MustCompile(`(?i)^(\d+)\s*(?:seconds?|secs?|сек(?:унд)?)\.?$`)
	reHours   = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(?:hours?|час(?:а|ов)?)\.?$`)

	reDaysAgo = regexp.MustCompile(`^(\d+)\s+(?:days?\s+ago|(?:дня|дней|день)\s+назад)$`)

	reLeadingFiller = regexp.MustCompile(`(?i)^(?:i\s+)?(?:did|made|сделал(?:а)?)\s+`)
)

// knownExercises нормализует названия к стандартному набору.
// Ключ — название без пробелов и дефисов, в нижнем регистре.
var knownExercises = map[string]string{
	"pullup": "pull-ups", "pullups": "pull-ups",
	"подтягивание": "pull-ups", "подтягивания": "pull-ups", "подтягиваний": "pull-ups",
	"pushup": "push-ups", "pushups": "push-ups",
	"отжимание": "push-ups", "отжимания": "push-ups", "отжиманий": "push-ups",
	"squat": "squats", "squats": "squats",
	"присед": "squats", "приседа": "squats", "приседания": "squats", "приседаний": "squats",
	"situp": "sit-ups", "situps": "sit-ups",
	"ситап": "sit-ups", "ситапы": "sit-ups", "ситапов": "sit-ups",
	"burpee": "burpees", "burpees": "burpees",
	"берпи": "burpees", "бёрпи": "burpees",
	"run": "running", "running": "running", "бег": "running", "пробежка": "running",
}

// entryBuilder накапливает упражнения за одну дату
type entryBuilder struct {
	date      string
	rawLines  []string
	exercises []models.Exercise
}

// Parse разбирает свободный текст тренировки без обращения к AI.
// Лучшее из возможного: известные форматы распознаются, остальное пропускается.
func Parse(text, userID, username string, now time.Time) (*models.ParsedWorkout, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("пустой текст")
	}

	currentDate := now
	builders := make(map[string]*entryBuilder)
	var order []string

	addExercise := func(date time.Time, raw string, ex models.Exercise) {
		key := date.Format(models.DateLayout)
		b, ok := builders[key]
		if !ok {
			b = &entryBuilder{date: key}
			builders[key] = b
			order = append(order, key)
		}
		if len(b.rawLines) == 0 || b.rawLines[len(b.rawLines)-1] != raw {
			b.rawLines = append(b.rawLines, raw)
		}
		b.exercises = append(b.exercises, ex)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Строка целиком — дата ("вчера", "2026-08-27", "27.08")
		if d, ok := tryParseDate(line, now); ok {
			currentDate = d
			continue
		}

		// Префикс-дата: "yesterday: ran 5k in 25 minutes"
		lineDate := currentDate
		if idx := strings.Index(line, ":"); idx > 0 {
			if d, ok := tryParseDate(line[:idx], now); ok {
				lineDate = d
				line = strings.TrimSpace(line[idx+1:])
			}
		}

		for _, item := range splitItems(line) {
			if ex, ok := parseItem(item); ok {
				addExercise(lineDate, line, *ex)
			}
		}
	}

	workout := &models.ParsedWorkout{}
	for _, key := range order {
		b := builders[key]
		if len(b.exercises) == 0 {
			continue
		}
		workout.Entries = append(workout.Entries, models.Entry{
			Date:      b.date,
			UserID:    userID,
			Username:  username,
			RawInput:  strings.Join(b.rawLines, "\n"),
			Exercises: b.exercises,
		})
	}

	if len(workout.Entries) == 0 {
		return nil, fmt.Errorf("не удалось распознать ни одного упражнения")
	}

	workout.Normalize(now)
	return workout, nil
}

// splitItems режет строку на отдельные упражнения
func splitItems(line string) []string {
	line = strings.ReplaceAll(line, ";", ",")
	line = strings.ReplaceAll(line, " and ", ",")
	line = strings.ReplaceAll(line, " и ", ",")

	var items []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// parseItem разбирает одно упражнение
func parseItem(item string) (*models.Exercise, bool) {
	item = strings.TrimSpace(reLeadingFiller.ReplaceAllString(item, ""))
	if item == "" {
		return nil, false
	}

	// Бег: "ran 5k in 25 minutes"
	if matches := reRun.FindStringSubmatch(item); matches != nil {
		return parseRun(matches), true
	}

	// Упражнение на время: "plank 60 sec"
	if matches := reDuration.FindStringSubmatch(item); matches != nil {
		seconds, _ := strconv.ParseFloat(matches[2], 64)
		return &models.Exercise{
			Name:         normalizeName(matches[1]),
			ActivityType: models.ActivityTypeDefault,
			Sets: []models.Set{{
				SetNumber: 1,
				Metrics:   []models.Metric{{Type: models.MetricTime, Value: seconds, Unit: "sec"}},
			}},
		}, true
	}

	// "присед 3x8 60"
	if matches := reNameFirst.FindStringSubmatch(item); matches != nil {
		sets, _ := strconv.Atoi(matches[2])
		reps, _ := strconv.Atoi(matches[3])
		weight := parseWeight(matches[4])
		return buildStrength(matches[1], sets, reps, weight), true
	}

	// "3x8 squats at 60kg"
	if matches := reSetsFirst.FindStringSubmatch(item); matches != nil {
		sets, _ := strconv.Atoi(matches[1])
		reps, _ := strconv.Atoi(matches[2])
		weight := parseWeight(matches[4])
		return buildStrength(matches[3], sets, reps, weight), true
	}

	// "5 pull-ups"
	if matches := reCountName.FindStringSubmatch(item); matches != nil {
		reps, _ := strconv.Atoi(matches[1])
		name := normalizeName(matches[2])
		if name == "" {
			return nil, false
		}
		return buildStrength(name, 1, reps, 0), true
	}

	return nil, false
}

// parseRun собирает упражнение бега с дистанцией и временем
func parseRun(matches []string) *models.Exercise {
	distance, _ := strconv.ParseFloat(strings.Replace(matches[1], ",", ".", 1), 64)

	unit := "km"
	switch strings.ToLower(matches[2]) {
	case "m", "м":
		unit = "m"
	case "mi", "mile", "miles":
		unit = "mi"
	}

	metrics := []models.Metric{
		{Type: models.MetricDistance, Value: distance, Unit: unit},
	}

	if matches[3] != "" {
		if seconds, ok := parseDuration(strings.TrimSpace(matches[3])); ok {
			metrics = append(metrics, models.Metric{Type: models.MetricTime, Value: seconds, Unit: "sec"})
		}
	}

	return &models.Exercise{
		Name:         "running",
		ActivityType: models.ActivityTypeDefault,
		Sets:         []models.Set{{SetNumber: 1, Metrics: metrics}},
	}
}

// parseDuration переводит "45:18", "25 minutes", "90 sec" в секунды
func parseDuration(s string) (float64, bool) {
	if matches := reMinSec.FindStringSubmatch(s); matches != nil {
		min, _ := strconv.ParseFloat(matches[1], 64)
		sec, _ := strconv.ParseFloat(matches[2], 64)
		return min*60 + sec, true
	}
	if matches := reMinutes.FindStringSubmatch(s); matches != nil {
		min, _ := strconv.ParseFloat(strings.Replace(matches[1], ",", ".", 1), 64)
		return min * 60, true
	}
	if matches := reSeconds.FindStringSubmatch(s); matches != nil {
		sec, _ := strconv.ParseFloat(matches[1], 64)
		return sec, true
	}
	if matches := reHours.FindStringSubmatch(s); matches != nil {
		hours, _ := strconv.ParseFloat(strings.Replace(matches[1], ",", ".", 1), 64)
		return hours * 3600, true
	}
	return 0, false
}

// buildStrength собирает силовое упражнение из подходов и повторов
func buildStrength(name string, sets, reps int, weight float64) *models.Exercise {
	if sets < 1 {
		sets = 1
	}

	ex := &models.Exercise{
		Name:         normalizeName(name),
		ActivityType: models.ActivityTypeDefault,
	}

	for i := 0; i < sets; i++ {
		metrics := []models.Metric{
			{Type: models.MetricReps, Value: float64(reps), Unit: "reps"},
		}
		if weight > 0 {
			metrics = append(metrics, models.Metric{Type: models.MetricWeight, Value: weight, Unit: "kg"})
		}
		ex.Sets = append(ex.Sets, models.Set{SetNumber: i + 1, Metrics: metrics})
	}

	return ex
}

// parseWeight разбирает вес с запятой или точкой
func parseWeight(s string) float64 {
	if s == "" {
		return 0
	}
	weight, _ := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	return weight
}

// normalizeName приводит название упражнения к стандартному виду
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Trim(name, ".!")

	key := strings.NewReplacer(" ", "", "-", "").Replace(name)
	if standard, ok := knownExercises[key]; ok {
		return standard
	}
	return name
}

// tryParseDate пытается распознать дату в строке
func tryParseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ":")))

	switch s {
	case "today", "сегодня":
		return now, true
	case "yesterday", "вчера":
		return now.AddDate(0, 0, -1), true
	case "позавчера", "day before yesterday":
		return now.AddDate(0, 0, -2), true
	case "a week ago", "week ago", "неделю назад":
		return now.AddDate(0, 0, -7), true
	}

	if matches := reDaysAgo.FindStringSubmatch(s); matches != nil {
		days, _ := strconv.Atoi(matches[1])
		return now.AddDate(0, 0, -days), true
	}

	for _, layout := range []string{models.DateLayout, "02.01.2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}

	// "27.08" — без года, берём текущий
	if d, err := time.Parse("02.01", s); err == nil {
		return time.Date(now.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location()), true
	}

	return time.Time{}, false
}
