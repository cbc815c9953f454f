package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitflow/internal/error_values"
	"github.com/limbo/habitflow/internal/repository/mocks"
	"github.com/limbo/habitflow/internal/service"
	"github.com/limbo/habitflow/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func newAnalyticsService(t *testing.T) (*service.AnalyticsService, *mocks.MockHabitsRepositoryI, *mocks.MockCompletionsRepositoryI) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	svc := service.NewAnalyticsService(habitsRepo, completionsRepo)
	svc.SetClock(func() time.Time { return today })
	return svc, habitsRepo, completionsRepo
}

func TestCalculateStreak_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("delegates to the calculator", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{
			today.AddDate(0, 0, -2), today.AddDate(0, 0, -1), today,
		}, nil)
		current, longest, err := svc.CalculateStreak(ctx, hid, uid, today)
		assert.NoError(t, err)
		assert.Equal(t, 3, current)
		assert.Equal(t, 3, longest)
	})
	t.Run("unknown habit yields zeros", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		current, longest, err := svc.CalculateStreak(ctx, hid, uid, today)
		assert.NoError(t, err)
		assert.Equal(t, 0, current)
		assert.Equal(t, 0, longest)
	})
	t.Run("error on another user's habit", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uuid.New()), nil)
		_, _, err := svc.CalculateStreak(ctx, hid, uid, today)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestCompletionRate_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("uses the habit start date", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habit := ownedHabit(hid, uid)
		habit.StartDate = today.AddDate(0, 0, -9)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		dates := make([]time.Time, 0, 5)
		for i := 0; i < 5; i++ {
			dates = append(dates, today.AddDate(0, 0, -i*2))
		}
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return(dates, nil)
		rate, err := svc.CompletionRate(ctx, hid, uid)
		assert.NoError(t, err)
		assert.InDelta(t, 50.0, rate, 0.001)
	})
	t.Run("unknown habit yields zero", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		rate, err := svc.CompletionRate(ctx, hid, uid)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, rate)
	})
	t.Run("error on another user's habit", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uuid.New()), nil)
		rate, err := svc.CompletionRate(ctx, hid, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		assert.Equal(t, 0.0, rate)
	})
}

func TestWeeklyPattern_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	svc, habitsRepo, completionsRepo := newAnalyticsService(t)
	habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
	// 2026-08-17 is a Monday, 2026-08-23 a Sunday.
	monday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{
		monday, monday.AddDate(0, 0, -7), monday.AddDate(0, 0, 6),
	}, nil)
	pattern, err := svc.WeeklyPattern(ctx, hid, uid)
	assert.NoError(t, err)
	assert.Equal(t, 7, len(pattern))
	assert.Equal(t, 2, pattern[0])
	assert.Equal(t, 1, pattern[6])
	assert.Equal(t, 0, pattern[3])
}

func TestMonthlyStats_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("counts in-month completions only", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{
			time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		}, nil)
		stats, err := svc.MonthlyStats(ctx, hid, uid, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.Completions)
		assert.Equal(t, 31, stats.TotalDays)
		assert.InDelta(t, 3.0/31.0*100, stats.CompletionRate, 0.001)
		assert.Equal(t, "August 2026", stats.Month)
	})
	t.Run("february length", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{}, nil)
		stats, err := svc.MonthlyStats(ctx, hid, uid, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, 28, stats.TotalDays)
	})
	t.Run("december wraps the year", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{}, nil)
		stats, err := svc.MonthlyStats(ctx, hid, uid, time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, 31, stats.TotalDays)
		assert.Equal(t, "December 2026", stats.Month)
	})
}

func TestHabitSummary_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habit := ownedHabit(hid, uid)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		dates := []time.Time{today.AddDate(0, 0, -1), today}
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return(dates, nil)
		completionsRepo.EXPECT().CountByHabitID(gomock.Any(), hid).Return(2, nil)
		summary, err := svc.HabitSummary(ctx, hid, uid)
		assert.NoError(t, err)
		assert.Equal(t, hid, summary.HabitID)
		assert.Equal(t, habit.Name, summary.Name)
		assert.Equal(t, 2, summary.CurrentStreak)
		assert.Equal(t, 2, summary.LongestStreak)
		assert.Equal(t, 2, summary.TotalCompletions)
		assert.Equal(t, 10, summary.DaysTracked)
	})
	t.Run("unknown habit yields empty summary", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		summary, err := svc.HabitSummary(ctx, hid, uid)
		assert.NoError(t, err)
		assert.Equal(t, entity.HabitSummary{}, *summary)
	})
	t.Run("another user's habit stays hidden", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		foreign := ownedHabit(hid, uuid.New())
		foreign.Name = "therapy session"
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(foreign, nil)
		summary, err := svc.HabitSummary(ctx, hid, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		assert.Nil(t, summary)
	})
}

func TestAllHabitsSummary_Analytics(t *testing.T) {
	uid := uuid.New()
	ctx := context.Background()
	svc, habitsRepo, completionsRepo := newAnalyticsService(t)
	strong := ownedHabit(uuid.New(), uid)
	strong.Name = "strong"
	weak := ownedHabit(uuid.New(), uid)
	weak.Name = "weak"
	habitsRepo.EXPECT().ListByUser(gomock.Any(), uid, false).Return([]*entity.Habit{weak, strong}, nil)
	completionsRepo.EXPECT().GetDates(gomock.Any(), weak.ID).Return([]time.Time{today}, nil)
	completionsRepo.EXPECT().CountByHabitID(gomock.Any(), weak.ID).Return(1, nil)
	strongDates := make([]time.Time, 0, 10)
	for i := 0; i < 10; i++ {
		strongDates = append(strongDates, today.AddDate(0, 0, -i))
	}
	completionsRepo.EXPECT().GetDates(gomock.Any(), strong.ID).Return(strongDates, nil)
	completionsRepo.EXPECT().CountByHabitID(gomock.Any(), strong.ID).Return(10, nil)
	summaries, err := svc.AllHabitsSummary(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(summaries))
	// Sorted by completion rate, best first.
	assert.Equal(t, "strong", summaries[0].Name)
	assert.Equal(t, "weak", summaries[1].Name)
}

func TestOverallStats_Analytics(t *testing.T) {
	uid := uuid.New()
	ctx := context.Background()
	svc, habitsRepo, completionsRepo := newAnalyticsService(t)
	half := ownedHabit(uuid.New(), uid)
	idle := ownedHabit(uuid.New(), uid)
	habitsRepo.EXPECT().CountByUserID(gomock.Any(), uid).Return(2, nil)
	completionsRepo.EXPECT().CountByUserID(gomock.Any(), uid).Return(5, nil)
	habitsRepo.EXPECT().ListByUser(gomock.Any(), uid, false).Return([]*entity.Habit{half, idle}, nil)
	halfDates := []time.Time{
		today, today.AddDate(0, 0, -2), today.AddDate(0, 0, -4),
		today.AddDate(0, 0, -6), today.AddDate(0, 0, -8),
	}
	completionsRepo.EXPECT().GetDates(gomock.Any(), half.ID).Return(halfDates, nil)
	completionsRepo.EXPECT().GetDates(gomock.Any(), idle.ID).Return([]time.Time{}, nil)
	stats, err := svc.OverallStats(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalHabits)
	assert.Equal(t, 5, stats.TotalCompletions)
	// Zero-rate habits stay out of the average.
	assert.InDelta(t, 50.0, stats.AverageCompletionRate, 0.001)
	assert.Equal(t, 1, stats.BestStreak)
}

func TestHeatmapData_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("windows back from today", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habit := ownedHabit(hid, uid)
		habit.StartDate = today.AddDate(0, 0, -30)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{today}, nil)
		heatmap, err := svc.HeatmapData(ctx, hid, uid, 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, len(heatmap))
		assert.Equal(t, today.AddDate(0, 0, -6), heatmap[0].Date)
		assert.Equal(t, today, heatmap[6].Date)
		assert.True(t, heatmap[6].Completed)
		assert.False(t, heatmap[0].Completed)
	})
	t.Run("clamps to the start date", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newAnalyticsService(t)
		habit := ownedHabit(hid, uid)
		habit.StartDate = today.AddDate(0, 0, -2)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{}, nil)
		heatmap, err := svc.HeatmapData(ctx, hid, uid, 30)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(heatmap))
	})
	t.Run("unknown habit yields empty slice", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		heatmap, err := svc.HeatmapData(ctx, hid, uid, 30)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(heatmap))
	})
	t.Run("error on another user's habit", func(t *testing.T) {
		svc, habitsRepo, _ := newAnalyticsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uuid.New()), nil)
		_, err := svc.HeatmapData(ctx, hid, uid, 30)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestTrendData_Analytics(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	svc, habitsRepo, completionsRepo := newAnalyticsService(t)
	habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
	thisWeek := service.WeekStart(today)
	completionsRepo.EXPECT().GetDates(gomock.Any(), hid).Return([]time.Time{
		thisWeek, thisWeek.AddDate(0, 0, 2),
		thisWeek.AddDate(0, 0, -7),
	}, nil)
	trend, err := svc.TrendData(ctx, hid, uid, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(trend))
	// Oldest week first, current week last.
	assert.Equal(t, thisWeek.AddDate(0, 0, -21), trend[0].WeekStart)
	assert.Equal(t, 0, trend[0].Completions)
	assert.Equal(t, 1, trend[2].Completions)
	assert.Equal(t, 2, trend[3].Completions)
	assert.Equal(t, thisWeek, trend[3].WeekStart)
}
