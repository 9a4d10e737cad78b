package ai

import "strings"

// extractJSON вытаскивает JSON-объект из ответа модели
func extractJSON(s string) string {
	// Убираем markdown блоки ```json ... ```
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	// Ищем начало JSON
	start := strings.Index(s, "{")
	if start == -1 {
		return s
	}

	// Ищем конец JSON (последняя закрывающая скобка)
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return s
	}

	jsonStr := s[start : end+1]

	// Убираем JavaScript-style комментарии // ...
	lines := strings.Split(jsonStr, "\n")
	var cleanLines []string
	for _, line := range lines {
		cleanLines = append(cleanLines, removeLineComment(line))
	}

	return strings.Join(cleanLines, "\n")
}

// removeLineComment убирает комментарии из строки, не трогая содержимое в кавычках
func removeLineComment(line string) string {
	inString := false
	escaped := false
	for i, ch := range line {
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		case '/':
			if !inString && i+1 < len(line) && line[i+1] == '/' {
				return strings.TrimRight(line[:i], " \t")
			}
		}
	}
	return line
}
