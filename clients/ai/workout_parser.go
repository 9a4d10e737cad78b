package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gymlog/internal/models"
)

// WorkoutParser разбирает свободный текст тренировки через Gemini
type WorkoutParser struct {
	client *Client
}

// NewWorkoutParser создаёт парсер тренировок
func NewWorkoutParser(client *Client) *WorkoutParser {
	return &WorkoutParser{client: client}
}

// ParseWorkout разбирает текст тренировки в структуру записей
func (p *WorkoutParser) ParseWorkout(input, userID, username string, now time.Time) (*models.ParsedWorkout, error) {
	prompt := buildWorkoutPrompt(input, userID, username, now)

	response, err := p.client.Generate(prompt, 0.1)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации: %w", err)
	}

	jsonStr := extractJSON(response)

	var workout models.ParsedWorkout
	if err := json.Unmarshal([]byte(jsonStr), &workout); err != nil {
		return nil, fmt.Errorf("некорректный JSON от Gemini: %w", err)
	}

	workout.Normalize(now)
	if err := workout.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная структура от Gemini: %w", err)
	}

	// user_id и username подставляем сами, модели не доверяем
	for i := range workout.Entries {
		workout.Entries[i].UserID = userID
		workout.Entries[i].Username = username
		if workout.Entries[i].RawInput == "" {
			workout.Entries[i].RawInput = input
		}
	}

	return &workout, nil
}

// buildWorkoutPrompt формирует промпт для разбора тренировки
func buildWorkoutPrompt(input, userID, username string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("Today's date is " + now.Format(models.DateLayout) + ".\n")
	sb.WriteString("Convert this workout description into structured JSON.\n\n")
	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString("1. If multiple dates are mentioned, create separate entries for each\n")
	sb.WriteString("2. ALWAYS return {\"entries\": [...]} format - never a raw array\n")
	sb.WriteString("3. Convert time formats to seconds (45:18 becomes 2718)\n")
	sb.WriteString("4. Use standard exercise names\n")
	sb.WriteString("5. Metric types: reps, weight (kg), time (sec), distance (km)\n\n")
	sb.WriteString("INPUT: \"" + input + "\"\n\n")
	sb.WriteString("OUTPUT:\n")
	sb.WriteString(`{
  "entries": [
    {
      "date": "YYYY-MM-DD",
      "user_id": "` + userID + `",
      "username": "` + username + `",
      "raw_input": "relevant portion",
      "exercises": [
        {
          "name": "exercise name",
          "activity_type": "exercise",
          "notes": "any notes or null",
          "sets": [
            {
              "set_number": 1,
              "metrics": [
                {"type": "reps", "value": 10, "unit": "reps"},
                {"type": "weight", "value": 50, "unit": "kg"}
              ]
            }
          ]
        }
      ]
    }
  ]
}`)

	return sb.String()
}
