package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobtrackr/internal/dtos"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jobColumns() []string {
	return []string{"id", "user_id", "position", "company", "location", "status", "mode", "applied_date"}
}

var errDatabaseDown = errors.New("database down")

func TestListPaginationMath(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).
		WithArgs("owner-a").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	rows := sqlmock.NewRows(jobColumns())
	for i := 0; i < 10; i++ {
		rows.AddRow(fmt.Sprintf("00000000-0000-0000-0000-%012d", i), "owner-a",
			"Engineer", "Acme", "Berlin", "applied", "remote", time.Now())
	}
	mock.ExpectQuery(`SELECT \* FROM "jobs"`).WillReturnRows(rows)

	result := svc.List("owner-a", dtos.JobFilter{})
	if result.Count != 25 {
		t.Errorf("count = %d, want 25", result.Count)
	}
	if result.Page != 1 {
		t.Errorf("page = %d, want default 1", result.Page)
	}
	if result.TotalPages != 3 {
		t.Errorf("totalPages = %d, want ceil(25/10) = 3", result.TotalPages)
	}
	if len(result.Jobs) != 10 {
		t.Errorf("jobs length = %d, want 10", len(result.Jobs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListScopesToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	// both the count and the page query must carry the owner id
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE user_id = \$1`).
		WithArgs("owner-a").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	result := svc.List("owner-a", dtos.JobFilter{})
	if len(result.Jobs) != 0 || result.Count != 0 {
		t.Errorf("expected empty result for owner with no jobs, got %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListSearchAndStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE user_id = \$1 AND \(position ILIKE \$2 OR company ILIKE \$3\) AND status = \$4`).
		WithArgs("owner-a", "%acme%", "%acme%", "offer").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow("9b3e7c2a-0a51-4b57-9f0f-3c5dd2f5a111", "owner-a", "Engineer", "Acme", "Berlin", "offer", "hybrid", time.Now()))

	result := svc.List("owner-a", dtos.JobFilter{Search: "acme", Status: "offer"})
	if result.Count != 1 || len(result.Jobs) != 1 {
		t.Fatalf("expected one match, got %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListStatusAllIsNoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	// "all" is the sentinel for no status restriction
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE user_id = \$1$`).
		WithArgs("owner-a").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	svc.List("owner-a", dtos.JobFilter{Status: "all"})
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListStorageErrorYieldsEmptyResult(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).
		WillReturnError(errDatabaseDown)

	result := svc.List("owner-a", dtos.JobFilter{Page: 2, Limit: 5})
	if result.Count != 0 || result.TotalPages != 0 || len(result.Jobs) != 0 {
		t.Errorf("storage failure must downgrade to empty result, got %+v", result)
	}
	if result.Jobs == nil {
		t.Error("jobs must be an empty slice, not nil")
	}
	if result.Page != 2 {
		t.Errorf("page should still echo, got %d", result.Page)
	}
}

func TestGetOneNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	// absent row and foreign-owned row look identical: zero rows back
	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE id = \$1 AND user_id = \$2`).
		WithArgs("2f0c8d1e-55aa-4a0f-b1fd-7f8e9a0b1c2d", "owner-b", 1).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	_, err := svc.GetOne("owner-b", "2f0c8d1e-55aa-4a0f-b1fd-7f8e9a0b1c2d")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetOneMalformedIDIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	// a non-UUID id can never match a record; it must report not-found
	// without reaching storage
	for _, id := range []string{"abc", "123", "'; DROP TABLE jobs;--", ""} {
		if _, err := svc.GetOne("owner-a", id); err != ErrNotFound {
			t.Errorf("id %q: expected ErrNotFound, got %v", id, err)
		}
	}
	if _, err := svc.Update("owner-a", "abc", &dtos.JobRequest{}); err != ErrNotFound {
		t.Errorf("update with malformed id: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Delete("owner-a", "abc"); err != ErrNotFound {
		t.Errorf("delete with malformed id: expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query may run for malformed ids: %v", err)
	}
}

func TestGetOneFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE id = \$1 AND user_id = \$2`).
		WithArgs("9b3e7c2a-0a51-4b57-9f0f-3c5dd2f5a111", "owner-a", 1).
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow("9b3e7c2a-0a51-4b57-9f0f-3c5dd2f5a111", "owner-a", "Engineer", "Acme", "Berlin", "applied", "remote", time.Now()))

	job, err := svc.GetOne("owner-a", "9b3e7c2a-0a51-4b57-9f0f-3c5dd2f5a111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.UserID != "owner-a" || job.Company != "Acme" {
		t.Errorf("unexpected record: %+v", job)
	}
}

func TestCreateAssignsOwnerAndID(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	mock.ExpectExec(`INSERT INTO "jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := &dtos.JobRequest{
		Position:    "Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		Status:      "applied",
		Mode:        "remote",
		AppliedDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	job, err := svc.Create("owner-a", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.UserID != "owner-a" {
		t.Errorf("owner must come from the identity, got %q", job.UserID)
	}
	if job.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("id was not assigned")
	}
	if !job.AppliedDate.Equal(req.AppliedDate) {
		t.Errorf("applied date = %v, want %v", job.AppliedDate, req.AppliedDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMissingRecordFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewJobService(db, testLogger())

	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	if _, err := svc.Delete("owner-a", "2f0c8d1e-55aa-4a0f-b1fd-7f8e9a0b1c2d"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// no DELETE statement may run for a missing record
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
