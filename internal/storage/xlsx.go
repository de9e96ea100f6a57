// ABOUTME: Spreadsheet export with one sheet per collection.
// ABOUTME: Workouts are flattened to one row per set.
package storage

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	workoutHeader = []any{"Workout ID", "Date", "Type", "Duration (min)", "Completed", "Exercise ID", "Set", "Reps", "Weight", "Rest (s)"}
	metricHeader  = []any{"ID", "Date", "Weight", "Body Fat %", "Chest", "Waist", "Hips", "Bicep", "Thigh"}
	goalHeader    = []any{"ID", "Title", "Category", "Status", "Current", "Target", "Unit", "Deadline", "Milestones"}
	catalogHeader = []any{"ID", "Name", "Muscle Group", "Type"}
)

// ToXLSX renders the document as an Excel workbook.
func (d *ExportData) ToXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Workouts"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	rows := [][]any{workoutHeader}
	for _, w := range d.Workouts {
		if len(w.Exercises) == 0 {
			rows = append(rows, []any{w.ID, sheetDate(w.Date), w.Type, w.Duration, w.Completed})
			continue
		}
		for _, e := range w.Exercises {
			for i, s := range e.Sets {
				rows = append(rows, []any{w.ID, sheetDate(w.Date), w.Type, w.Duration, w.Completed, e.ExerciseID, i + 1, s.Reps, s.Weight, s.Rest})
			}
		}
	}
	if err := writeSheet(f, "Workouts", rows); err != nil {
		return nil, err
	}

	rows = [][]any{metricHeader}
	for _, m := range d.BodyMetrics {
		ms := m.Measurements
		rows = append(rows, []any{m.ID, sheetDate(m.Date), cell(m.Weight), cell(m.BodyFat),
			cell(ms.Chest), cell(ms.Waist), cell(ms.Hips), cell(ms.Bicep), cell(ms.Thigh)})
	}
	if err := writeSheet(f, "Body Metrics", rows); err != nil {
		return nil, err
	}

	rows = [][]any{goalHeader}
	for _, g := range d.Goals {
		rows = append(rows, []any{g.ID, g.Title, g.Category, g.Status, g.CurrentValue, g.TargetValue, g.Unit, sheetDate(g.Deadline), len(g.Milestones)})
	}
	if err := writeSheet(f, "Goals", rows); err != nil {
		return nil, err
	}

	rows = [][]any{catalogHeader}
	for _, e := range d.Exercises {
		rows = append(rows, []any{e.ID, e.Name, e.MuscleGroup, e.Type})
	}
	if err := writeSheet(f, "Exercises", rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// sheetDate trims stored timestamps to a readable local date and time.
func sheetDate(s string) string {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return t.Local().Format("2006-01-02 15:04")
}

func cell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
