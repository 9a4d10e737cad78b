package excel

import (
	"fmt"

	"gymlog/internal/models"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Workouts"

// BuildWorkoutReport собирает xlsx-отчёт: лист с тренировками
// и лист с итогами по упражнениям
func BuildWorkoutReport(workouts []models.Workout, totals []models.ExerciseTotal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", reportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания стиля: %w", err)
	}

	// Лист тренировок
	headers := []string{"Дата", "Пользователь", "Текст тренировки", "Записано"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(reportSheet, cell, h)
	}
	f.SetCellStyle(reportSheet, "A1", "D1", headerStyle)
	f.SetColWidth(reportSheet, "A", "A", 12)
	f.SetColWidth(reportSheet, "B", "B", 16)
	f.SetColWidth(reportSheet, "C", "C", 48)
	f.SetColWidth(reportSheet, "D", "D", 20)

	for i, w := range workouts {
		row := i + 2
		f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), w.Date)
		f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), w.Username)
		f.SetCellValue(reportSheet, fmt.Sprintf("C%d", row), w.RawInput)
		f.SetCellValue(reportSheet, fmt.Sprintf("D%d", row), w.CreatedAt.Format("02.01.2006 15:04"))
	}

	// Лист итогов
	const totalsSheet = "Totals"
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return nil, fmt.Errorf("ошибка создания листа: %w", err)
	}

	for i, h := range []string{"Упражнение", "Повторы", "Подходы"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(totalsSheet, cell, h)
	}
	f.SetCellStyle(totalsSheet, "A1", "C1", headerStyle)
	f.SetColWidth(totalsSheet, "A", "A", 24)

	for i, t := range totals {
		row := i + 2
		f.SetCellValue(totalsSheet, fmt.Sprintf("A%d", row), t.Name)
		f.SetCellValue(totalsSheet, fmt.Sprintf("B%d", row), t.TotalReps)
		f.SetCellValue(totalsSheet, fmt.Sprintf("C%d", row), t.Sets)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ошибка записи файла: %w", err)
	}
	return buf.Bytes(), nil
}
