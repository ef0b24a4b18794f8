package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/internal/domain/repository"
	"github.com/parthsh/billify-api/pkg/utils"
)

// DailyPoint is one calendar day's bucket in the daily profit series.
type DailyPoint struct {
	Date   string  `json:"date"`
	Profit float64 `json:"profit"`
	Total  float64 `json:"total"`
}

// WeeklyPoint is one Monday-start week's bucket, keyed by the week-start date.
type WeeklyPoint struct {
	Week   string  `json:"week"`
	Profit float64 `json:"profit"`
	Total  float64 `json:"total"`
}

// MonthlyPoint is one calendar month's bucket, keyed by YYYY-MM.
type MonthlyPoint struct {
	Month  string  `json:"month"`
	Profit float64 `json:"profit"`
	Total  float64 `json:"total"`
}

// AnalyticsSummary is the derived dashboard shape. It is recomputed from
// the fetched records on every load and never persisted.
type AnalyticsSummary struct {
	TotalProfit   float64        `json:"total_profit"`
	TodayProfit   float64        `json:"today_profit"`
	WeekProfit    float64        `json:"week_profit"`
	MonthProfit   float64        `json:"month_profit"`
	DailyProfit   []DailyPoint   `json:"daily_profit"`
	WeeklyProfit  []WeeklyPoint  `json:"weekly_profit"`
	MonthlyProfit []MonthlyPoint `json:"monthly_profit"`
}

type bucket struct {
	profit float64
	total  float64
}

// Summarize buckets an unordered set of profit records against the injected
// reference instant. The caller's fetch window already limits records to
// the current month; no re-filtering by month happens here, so TotalProfit
// and MonthProfit are the same sum. Duplicate records for one invoice are
// summed as-is — the log is append-only and nothing deduplicates it.
func Summarize(records []entity.ProfitRecord, now time.Time) *AnalyticsSummary {
	summary := &AnalyticsSummary{
		DailyProfit:   []DailyPoint{},
		WeeklyProfit:  []WeeklyPoint{},
		MonthlyProfit: []MonthlyPoint{},
	}

	todayStart, todayEnd := utils.StartOfDay(now), utils.EndOfDay(now)
	weekStart, weekEnd := utils.StartOfWeek(now), utils.EndOfWeek(now)

	dailyMap := make(map[string]*bucket)
	weeklyMap := make(map[string]*bucket)
	monthlyMap := make(map[string]*bucket)

	for _, record := range records {
		summary.TotalProfit += record.Profit

		recordDate := utils.ParseDate(record.Date)
		if !recordDate.Before(todayStart) && !recordDate.After(todayEnd) {
			summary.TodayProfit += record.Profit
		}
		if !recordDate.Before(weekStart) && !recordDate.After(weekEnd) {
			summary.WeekProfit += record.Profit
		}

		accumulate(dailyMap, record.Date, record)
		accumulate(weeklyMap, utils.FormatDate(utils.StartOfWeek(recordDate)), record)
		if len(record.Date) >= 7 {
			accumulate(monthlyMap, record.Date[:7], record)
		}
	}

	summary.MonthProfit = summary.TotalProfit

	for _, key := range sortedKeys(dailyMap) {
		b := dailyMap[key]
		summary.DailyProfit = append(summary.DailyProfit, DailyPoint{Date: key, Profit: b.profit, Total: b.total})
	}
	for _, key := range sortedKeys(weeklyMap) {
		b := weeklyMap[key]
		summary.WeeklyProfit = append(summary.WeeklyProfit, WeeklyPoint{Week: key, Profit: b.profit, Total: b.total})
	}
	for _, key := range sortedKeys(monthlyMap) {
		b := monthlyMap[key]
		summary.MonthlyProfit = append(summary.MonthlyProfit, MonthlyPoint{Month: key, Profit: b.profit, Total: b.total})
	}

	return summary
}

func accumulate(buckets map[string]*bucket, key string, record entity.ProfitRecord) {
	b, ok := buckets[key]
	if !ok {
		b = &bucket{}
		buckets[key] = b
	}
	b.profit += record.Profit
	b.total += record.GrandTotal
}

func sortedKeys(buckets map[string]*bucket) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AnalyticsService fetches profit records and produces dashboard summaries.
type AnalyticsService struct {
	profitRepo repository.ProfitRecordRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(profitRepo repository.ProfitRecordRepository) *AnalyticsService {
	return &AnalyticsService{profitRepo: profitRepo}
}

// GetSummary fetches the user's records for the month containing now and
// summarizes them. A fetch failure is surfaced to the caller; the handler
// degrades to an error state instead of a partial summary.
func (s *AnalyticsService) GetSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*AnalyticsSummary, error) {
	monthStart := utils.FormatDate(utils.StartOfMonth(now))
	monthEnd := utils.FormatDate(utils.EndOfMonth(now))

	records, err := s.profitRepo.ListByDateRange(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	return Summarize(records, now), nil
}
