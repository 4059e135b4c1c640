// Package export writes a week plan to an XLSX workbook so a schedule can
// leave the app (print, share, archive).
package export

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/breaking-byts/Life-Os-sub000/pkg/block/repository"
	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

type Exporter struct{ blocks repository.BlockRepository }

func New(blocks repository.BlockRepository) *Exporter { return &Exporter{blocks} }

var header = []string{"Day", "Start", "End", "Type", "Title", "Status"}

// WriteWeek builds a one-sheet workbook with a row per plan block of the week.
func (e *Exporter) WriteWeek(weekStartDate string) (*excelize.File, error) {
	blocks, err := e.blocks.ListByWeek(weekStartDate)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Week " + weekStartDate
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(sheet, 1, 1, style)
	}

	for i, b := range blocks {
		row := i + 2
		values := []any{
			timeutil.DayKey(b.StartAt),
			clock(b.StartAt),
			clock(b.EndAt),
			b.BlockType,
			b.Title,
			b.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Download streams the workbook for ?week_start_date=....
func (e *Exporter) Download(c echo.Context) error {
	week := c.QueryParam("week_start_date")
	if week == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "week_start_date is required"})
	}
	f, err := e.WriteWeek(week)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="week-plan-%s.xlsx"`, week))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

func clock(ts string) string {
	t, err := timeutil.ParseDateTime(ts)
	if err != nil {
		return ts
	}
	return t.Format(timeutil.ClockLayout)
}
