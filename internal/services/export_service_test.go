package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"jobtrackr/internal/models"
)

var exportNow = time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

func exportJob(created time.Time, position string, status models.Status) models.Job {
	return models.Job{
		CreatedAt:   created,
		AppliedDate: created,
		Position:    position,
		Company:     "Acme",
		Location:    "Berlin",
		Status:      status,
		Mode:        models.ModeRemote,
	}
}

func TestExportRowLayout(t *testing.T) {
	jobs := []models.Job{
		exportJob(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), "Engineer", models.StatusApplied),
	}
	rows := buildExportRows(jobs, exportNow)

	if len(rows) != 5 {
		t.Fatalf("expected title, summary, blank, header, one data row; got %d rows", len(rows))
	}
	if rows[0][0] != "Job Applications Report" {
		t.Errorf("title row = %v", rows[0])
	}
	if !strings.Contains(rows[1][0], "Applied: 1") || !strings.Contains(rows[1][0], "Generated: 2026-08-31") {
		t.Errorf("summary row = %q", rows[1][0])
	}
	if len(rows[2]) != 0 {
		t.Errorf("row 3 must be blank, got %v", rows[2])
	}
	wantHeader := []string{"No.", "Applied Date", "Job Title", "Company Name", "Job Location", "Role", "Status"}
	for i, col := range wantHeader {
		if rows[3][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[3][i], col)
		}
	}
	if rows[4][0] != "1" || rows[4][2] != "Engineer" || rows[4][5] != "Remote" || rows[4][6] != "Applied" {
		t.Errorf("data row = %v", rows[4])
	}
}

func TestExportMonthSeparator(t *testing.T) {
	jobs := []models.Job{
		exportJob(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), "June A", models.StatusApplied),
		exportJob(time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), "June B", models.StatusApplied),
		exportJob(time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), "July A", models.StatusOffer),
	}
	rows := buildExportRows(jobs, exportNow)

	blanks := 0
	for _, row := range rows[4:] {
		if len(row) == 0 {
			blanks++
		}
	}
	if blanks != 1 {
		t.Fatalf("two month groups must produce exactly one separator, got %d", blanks)
	}
	// newest month first, separator between the July row and the June rows
	if rows[4][2] != "July A" {
		t.Errorf("first data row = %v, want the July record", rows[4])
	}
	if len(rows[5]) != 0 {
		t.Errorf("expected separator after the July group, got %v", rows[5])
	}
	if rows[6][2] != "June B" || rows[7][2] != "June A" {
		t.Errorf("june group out of order: %v / %v", rows[6], rows[7])
	}
}

func TestExportNumberingSkipsSeparators(t *testing.T) {
	jobs := []models.Job{
		exportJob(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), "May", models.StatusApplied),
		exportJob(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "June", models.StatusApplied),
		exportJob(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), "July", models.StatusApplied),
	}
	rows := buildExportRows(jobs, exportNow)

	var numbers []string
	for _, row := range rows[4:] {
		if len(row) > 0 {
			numbers = append(numbers, row[0])
		}
	}
	want := []string{"1", "2", "3"}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("data row numbering = %v, want %v", numbers, want)
		}
	}
}

func TestExportSortsByCreationTimestamp(t *testing.T) {
	// legacy ordering: creation timestamp, not applied date
	older := exportJob(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "Created June", models.StatusApplied)
	older.AppliedDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := exportJob(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), "Created July", models.StatusApplied)
	newer.AppliedDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := buildExportRows([]models.Job{older, newer}, exportNow)
	if rows[4][2] != "Created July" {
		t.Fatalf("rows must sort by created_at desc, got %v first", rows[4])
	}
}

func TestCSVEncoding(t *testing.T) {
	svc := NewExportService()
	jobs := []models.Job{
		exportJob(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), "Engineer", models.StatusApplied),
	}
	out, err := svc.CSV(jobs, exportNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "No.,Applied Date,Job Title,Company Name,Job Location,Role,Status") {
		t.Errorf("missing header line in:\n%s", text)
	}
	if !strings.Contains(text, "1,2026-07-05,Engineer,Acme,Berlin,Remote,Applied") {
		t.Errorf("missing data line in:\n%s", text)
	}
}

func TestXLSXEncoding(t *testing.T) {
	svc := NewExportService()
	jobs := []models.Job{
		exportJob(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), "Engineer", models.StatusApplied),
	}
	out, err := svc.XLSX(jobs, exportNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	title, err := f.GetCellValue(sheet, "A1")
	if err != nil || title != "Job Applications Report" {
		t.Errorf("A1 = %q (err %v)", title, err)
	}
	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("title and summary rows must be merged across the columns, got %d merges", len(merged))
	}
	header, err := f.GetCellValue(sheet, "B4")
	if err != nil || header != "Applied Date" {
		t.Errorf("B4 = %q (err %v)", header, err)
	}
}
