package services

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"jobtrackr/internal/dtos"
	"jobtrackr/internal/models"
)

// trendWindowMonths is the trailing window of the monthly chart; the start
// boundary is inclusive.
const trendWindowMonths = 6

// StatsService derives aggregate views over one owner's jobs.
type StatsService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewStatsService(db *gorm.DB, log *slog.Logger) *StatsService {
	return &StatsService{DB: db, Log: log}
}

type statusRow struct {
	Status models.Status
	Count  int64
}

// CountsByStatus groups the owner's jobs by status. Every status is present
// in the result, zero-filled when the owner has no jobs in it. A storage
// failure yields the all-zero result.
func (s *StatsService) CountsByStatus(userID string) dtos.StatusCounts {
	var rows []statusRow
	err := s.DB.Model(&models.Job{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		s.Log.Error("count by status failed", "user_id", userID, "err", err)
		return dtos.StatusCounts{}
	}
	return mergeStatusCounts(rows)
}

// mergeStatusCounts folds grouped rows into the zero-filled default so all
// five statuses are always represented.
func mergeStatusCounts(rows []statusRow) dtos.StatusCounts {
	var counts dtos.StatusCounts
	for _, row := range rows {
		switch row.Status {
		case models.StatusApplied:
			counts.Applied = row.Count
		case models.StatusScreening:
			counts.Screening = row.Count
		case models.StatusInterview:
			counts.Interview = row.Count
		case models.StatusOffer:
			counts.Offer = row.Count
		case models.StatusRejected:
			counts.Rejected = row.Count
		}
	}
	return counts
}

// MonthlyTrend buckets the owner's jobs applied within the trailing window
// by calendar month, oldest month first. Months with no jobs do not appear.
func (s *StatsService) MonthlyTrend(userID string) []dtos.MonthlyTrendPoint {
	cutoff := trendCutoff(time.Now().UTC())
	jobs := []models.Job{}
	err := s.DB.Where("user_id = ? AND applied_date >= ?", userID, cutoff).
		Order("applied_date ASC").
		Find(&jobs).Error
	if err != nil {
		s.Log.Error("monthly trend failed", "user_id", userID, "err", err)
		return []dtos.MonthlyTrendPoint{}
	}
	return bucketByMonth(jobs)
}

// trendCutoff is the inclusive start of the trailing window: the same day
// of month six months back, clamped to the target month's length so a
// month-end date never spills into the following month.
func trendCutoff(now time.Time) time.Time {
	year, month, day := now.Date()
	first := time.Date(year, month-trendWindowMonths, 1, 0, 0, 0, 0, now.Location())
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	hour, minute, sec := now.Clock()
	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, now.Nanosecond(), now.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// bucketByMonth walks jobs in ascending applied-date order and accumulates
// an insertion-ordered month bucket per distinct month. The first job of a
// month creates its bucket, later ones increment it in place, so the output
// is chronological because the input is.
func bucketByMonth(jobs []models.Job) []dtos.MonthlyTrendPoint {
	points := []dtos.MonthlyTrendPoint{}
	index := map[string]int{}
	for _, job := range jobs {
		label := job.AppliedDate.Format("Jan 06")
		if i, ok := index[label]; ok {
			points[i].Count++
			continue
		}
		index[label] = len(points)
		points = append(points, dtos.MonthlyTrendPoint{Month: label, Count: 1})
	}
	return points
}
