package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/domain/entity"
)

func TestSummarize_Empty(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	summary := service.Summarize(nil, now)

	if summary.TotalProfit != 0 || summary.TodayProfit != 0 || summary.WeekProfit != 0 || summary.MonthProfit != 0 {
		t.Errorf("empty input should produce all-zero scalars, got %+v", summary)
	}
	if summary.DailyProfit == nil || len(summary.DailyProfit) != 0 {
		t.Errorf("DailyProfit = %v, want empty non-nil slice", summary.DailyProfit)
	}
	if summary.WeeklyProfit == nil || len(summary.WeeklyProfit) != 0 {
		t.Errorf("WeeklyProfit = %v, want empty non-nil slice", summary.WeeklyProfit)
	}
	if summary.MonthlyProfit == nil || len(summary.MonthlyProfit) != 0 {
		t.Errorf("MonthlyProfit = %v, want empty non-nil slice", summary.MonthlyProfit)
	}
}

func TestSummarize_Buckets(t *testing.T) {
	// 2024-06-10 is a Monday, so the week window is exactly [06-10, 06-16]
	// and the 06-03 records fall into the previous week.
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	records := []entity.ProfitRecord{
		{Date: "2024-06-03", Profit: 100, GrandTotal: 500},
		{Date: "2024-06-03", Profit: 50, GrandTotal: 200},
		{Date: "2024-06-10", Profit: 20, GrandTotal: 20},
	}

	summary := service.Summarize(records, now)

	if summary.TotalProfit != 170 {
		t.Errorf("TotalProfit = %v, want 170", summary.TotalProfit)
	}
	if summary.TodayProfit != 20 {
		t.Errorf("TodayProfit = %v, want 20", summary.TodayProfit)
	}
	if summary.WeekProfit != 20 {
		t.Errorf("WeekProfit = %v, want 20", summary.WeekProfit)
	}
	if summary.MonthProfit != summary.TotalProfit {
		t.Errorf("MonthProfit = %v, want TotalProfit %v", summary.MonthProfit, summary.TotalProfit)
	}

	wantDaily := []service.DailyPoint{
		{Date: "2024-06-03", Profit: 150, Total: 700},
		{Date: "2024-06-10", Profit: 20, Total: 20},
	}
	if len(summary.DailyProfit) != len(wantDaily) {
		t.Fatalf("DailyProfit has %d points, want %d", len(summary.DailyProfit), len(wantDaily))
	}
	for i, want := range wantDaily {
		if summary.DailyProfit[i] != want {
			t.Errorf("DailyProfit[%d] = %+v, want %+v", i, summary.DailyProfit[i], want)
		}
	}

	wantWeekly := []service.WeeklyPoint{
		{Week: "2024-06-03", Profit: 150, Total: 700},
		{Week: "2024-06-10", Profit: 20, Total: 20},
	}
	if len(summary.WeeklyProfit) != len(wantWeekly) {
		t.Fatalf("WeeklyProfit has %d points, want %d", len(summary.WeeklyProfit), len(wantWeekly))
	}
	for i, want := range wantWeekly {
		if summary.WeeklyProfit[i] != want {
			t.Errorf("WeeklyProfit[%d] = %+v, want %+v", i, summary.WeeklyProfit[i], want)
		}
	}

	if len(summary.MonthlyProfit) != 1 {
		t.Fatalf("MonthlyProfit has %d points, want 1", len(summary.MonthlyProfit))
	}
	wantMonthly := service.MonthlyPoint{Month: "2024-06", Profit: 170, Total: 720}
	if summary.MonthlyProfit[0] != wantMonthly {
		t.Errorf("MonthlyProfit[0] = %+v, want %+v", summary.MonthlyProfit[0], wantMonthly)
	}
}

// A Sunday reference date must land in the week that started the previous
// Monday, not start its own week.
func TestSummarize_SundayBelongsToMondayWeek(t *testing.T) {
	now := time.Date(2024, 6, 16, 9, 0, 0, 0, time.Local) // Sunday
	records := []entity.ProfitRecord{
		{Date: "2024-06-10", Profit: 30, GrandTotal: 30}, // Monday of the same week
		{Date: "2024-06-16", Profit: 10, GrandTotal: 10},
	}

	summary := service.Summarize(records, now)

	if summary.WeekProfit != 40 {
		t.Errorf("WeekProfit = %v, want 40", summary.WeekProfit)
	}
	if len(summary.WeeklyProfit) != 1 {
		t.Fatalf("WeeklyProfit has %d points, want 1", len(summary.WeeklyProfit))
	}
	if summary.WeeklyProfit[0].Week != "2024-06-10" {
		t.Errorf("week key = %q, want 2024-06-10", summary.WeeklyProfit[0].Week)
	}
}

func TestAnalyticsService_GetSummary_ScopesToUserAndMonth(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	repo := &stubProfitRepo{records: []entity.ProfitRecord{
		{UserID: userID, Date: "2024-06-03", Profit: 100, GrandTotal: 100},
		{UserID: userID, Date: "2024-05-28", Profit: 999, GrandTotal: 999}, // previous month
		{UserID: otherID, Date: "2024-06-03", Profit: 500, GrandTotal: 500},
	}}
	svc := service.NewAnalyticsService(repo)

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	summary, err := svc.GetSummary(context.Background(), userID, now)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.TotalProfit != 100 {
		t.Errorf("TotalProfit = %v, want 100 (other users and months excluded)", summary.TotalProfit)
	}
}
