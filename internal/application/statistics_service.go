package application

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

// trendMonths is the fixed width of the monthly trend window, current month
// included.
const trendMonths = 6

// MonthlyTrendEntry is one month bucket of the application trend.
type MonthlyTrendEntry struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StatisticsSummary is the aggregate view over one user's jobs.
type StatisticsSummary struct {
	TotalApplications   int                 `json:"totalApplications"`
	MonthlyApplications int                 `json:"monthlyApplications"`
	InterviewsScheduled int                 `json:"interviewsScheduled"`
	ResponseRate        int                 `json:"responseRate"`
	StatusDistribution  map[string]int      `json:"statusDistribution"`
	MonthlyTrend        []MonthlyTrendEntry `json:"monthlyTrend"`
}

// StatisticsService computes derived counters over the caller's jobs.
// All month bucketing is done in UTC.
type StatisticsService struct {
	Stats  repo.StatisticsReader
	Logger *logrus.Logger
	now    func() time.Time
}

func NewStatisticsService(stats repo.StatisticsReader, logger *logrus.Logger) *StatisticsService {
	return &StatisticsService{Stats: stats, Logger: logger, now: time.Now}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *StatisticsService) Summary(userID string) (*StatisticsSummary, error) {
	now := s.now().UTC()
	monthStart := startOfMonth(now)
	trendStart := monthStart.AddDate(0, -(trendMonths - 1), 0)

	total, err := s.Stats.CountByUser(userID)
	if err != nil {
		return nil, apperr.Server("failed to compute statistics", err)
	}
	monthly, err := s.Stats.CountByUserSince(userID, monthStart)
	if err != nil {
		return nil, apperr.Server("failed to compute statistics", err)
	}
	statusCounts, err := s.Stats.StatusCounts(userID)
	if err != nil {
		return nil, apperr.Server("failed to compute statistics", err)
	}
	monthCounts, err := s.Stats.MonthlyCounts(userID, trendStart)
	if err != nil {
		return nil, apperr.Server("failed to compute statistics", err)
	}

	responses := 0
	for _, st := range entity.ResponseStatuses {
		responses += statusCounts[st]
	}
	responseRate := 0
	if total > 0 {
		responseRate = int(math.Round(float64(responses) / float64(total) * 100))
	}

	// Zero-fill the trend window so every month appears even with no jobs.
	byMonth := make(map[int]int, len(monthCounts))
	for _, mc := range monthCounts {
		byMonth[mc.Year*100+int(mc.Month)] = mc.Count
	}
	trend := make([]MonthlyTrendEntry, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		m := trendStart.AddDate(0, i, 0)
		trend = append(trend, MonthlyTrendEntry{
			Month: m.Format("Jan"),
			Count: byMonth[m.Year()*100+int(m.Month())],
		})
	}

	return &StatisticsSummary{
		TotalApplications:   total,
		MonthlyApplications: monthly,
		InterviewsScheduled: statusCounts[entity.StatusInterview],
		ResponseRate:        responseRate,
		StatusDistribution:  statusCounts,
		MonthlyTrend:        trend,
	}, nil
}
