package Controllers

import (
	"fmt"
	"time"

	"RoutineMaster/Compliance"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ExportScoreboard writes the current discipline ranking to an .xlsx
// workbook, honoring the same shift/department filters as the
// dashboard.
func (d *DashboardController) ExportScoreboard(ctx *fiber.Ctx) error {
	users, tasks, completions, logs, err := d.snapshot()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard data"})
	}

	filters := Compliance.Filters{
		Shift:      ctx.Query("shift", Compliance.FilterAll),
		Department: ctx.Query("department", Compliance.FilterAll),
	}
	data := Compliance.Aggregate(users, tasks, completions, logs, filters, time.Now())

	file := excelize.NewFile()
	defer file.Close()
	sheet := "Scoreboard"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Title", "Shift", "Department", "Assigned", "Satisfied", "Score (%)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for rowIdx, row := range data.Scores {
		values := []interface{}{row.Name, row.Title, row.Shift, row.Department, row.Assigned, row.Satisfied, row.Score}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	summaryRow := len(data.Scores) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	file.SetCellValue(sheet, cell, fmt.Sprintf("Overall rate: %d%%", data.OverallRate))
	cell, _ = excelize.CoordinatesToCellName(1, summaryRow+1)
	file.SetCellValue(sheet, cell, fmt.Sprintf("Pending assignments: %d", data.PendingCount))

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate workbook"})
	}

	filename := fmt.Sprintf("scoreboard_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buffer.Bytes())
}
