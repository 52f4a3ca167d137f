package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"jobtrackr/internal/models"
)

// exportHeader is the data header of both export encodings.
var exportHeader = []string{"No.", "Applied Date", "Job Title", "Company Name", "Job Location", "Role", "Status"}

const exportTitle = "Job Applications Report"

// ExportService renders an owner's full job set into tabular output.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// CSV renders the delimited-text encoding.
func (s *ExportService) CSV(jobs []models.Job, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range buildExportRows(jobs, now) {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX renders the grid encoding. The title and statistics rows are merged
// across all seven columns.
func (s *ExportService) XLSX(jobs []models.Job, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := buildExportRows(jobs, now)
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheet, "A2", "G2"); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A4", "G4", bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildExportRows produces the shared row layout: title, statistics summary,
// blank, header, then numbered data rows with a blank separator between
// month groups. An empty slice marks a blank row.
//
// Data rows sort by creation timestamp, not applied date, and the month
// grouping uses the same field — the column label says "Applied Date" but
// the legacy export always ordered on created_at, and downstream sheets
// depend on that order. Kept as-is pending product clarification.
func buildExportRows(jobs []models.Job, now time.Time) [][]string {
	sorted := make([]models.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	rows := [][]string{
		{exportTitle},
		{summaryLine(sorted, now)},
		{},
		exportHeader,
	}

	num := 0
	var prevMonth time.Month
	var prevYear int
	for _, job := range sorted {
		year, month := job.CreatedAt.Year(), job.CreatedAt.Month()
		if num > 0 && (month != prevMonth || year != prevYear) {
			rows = append(rows, []string{})
		}
		prevYear, prevMonth = year, month
		num++
		rows = append(rows, []string{
			fmt.Sprintf("%d", num),
			job.AppliedDate.Format("2006-01-02"),
			job.Position,
			job.Company,
			job.Location,
			job.Mode.Label(),
			job.Status.Label(),
		})
	}
	return rows
}

// summaryLine is the single merged statistics row: per-status counts over
// the exported set plus the generation timestamp.
func summaryLine(jobs []models.Job, now time.Time) string {
	counts := map[models.Status]int{}
	for _, job := range jobs {
		counts[job.Status]++
	}
	line := ""
	for _, status := range models.Statuses {
		line += fmt.Sprintf("%s: %d | ", status.Label(), counts[status])
	}
	return line + "Generated: " + now.Format("2006-01-02 15:04")
}
