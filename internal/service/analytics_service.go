package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitflow/internal/error_values"
	"github.com/limbo/habitflow/internal/repository"
	"github.com/limbo/habitflow/pkg/entity"
)

// AnalyticsService composes the streak, rate and frequency calculators into
// per-habit and cross-habit summaries. Unknown habit ids yield zero-valued
// results rather than errors so presentation layers can render empty states
// without special-casing. Per-habit reads are gated by owner: a habit that
// belongs to another user is refused with ErrWrongOwner.
type AnalyticsService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	now             func() time.Time
}

func NewAnalyticsService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI) *AnalyticsService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on analytics service provided nil repos")
	}
	return &AnalyticsService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		now:             time.Now,
	}
}

// SetClock swaps the time source, for tests.
func (as *AnalyticsService) SetClock(now func() time.Time) {
	as.now = now
}

func (as *AnalyticsService) CalculateStreak(ctx context.Context, habitID, userID uuid.UUID, ref time.Time) (int, int, error) {
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return 0, 0, err
	}
	if habit == nil {
		return 0, 0, nil
	}
	dates, err := as.completionsRepo.GetDates(ctx, habitID)
	if err != nil {
		return 0, 0, errors.New("completions repository error: " + err.Error())
	}
	current, longest := CalculateStreak(dates, ref)
	return current, longest, nil
}

func (as *AnalyticsService) CompletionRate(ctx context.Context, habitID, userID uuid.UUID) (float64, error) {
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return 0.0, err
	}
	if habit == nil {
		return 0.0, nil
	}
	dates, err := as.completionsRepo.GetDates(ctx, habitID)
	if err != nil {
		return 0.0, errors.New("completions repository error: " + err.Error())
	}
	return CompletionRate(habit.StartDate, dates, as.now()), nil
}

func (as *AnalyticsService) WeeklyPattern(ctx context.Context, habitID, userID uuid.UUID) (map[int]int, error) {
	pattern := map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0}
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return pattern, nil
	}
	dates, err := as.completionsRepo.GetDates(ctx, habitID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	for _, d := range dates {
		pattern[WeekdayIndex(d)]++
	}
	return pattern, nil
}

func (as *AnalyticsService) MonthlyStats(ctx context.Context, habitID, userID uuid.UUID, targetMonth time.Time) (*entity.MonthlyStats, error) {
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return &entity.MonthlyStats{}, nil
	}
	firstDay := time.Date(targetMonth.Year(), targetMonth.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	daysInMonth := DaysBetween(firstDay, lastDay) + 1

	dates, err := as.completionsRepo.GetDates(ctx, habitID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	completions := 0
	for _, d := range dates {
		day := DateOf(d)
		if !day.Before(firstDay) && !day.After(lastDay) {
			completions++
		}
	}
	// Deliberately uncapped: this is the simple in-month formula, distinct
	// from the capped lifetime rate.
	rate := float64(completions) / float64(daysInMonth) * 100
	return &entity.MonthlyStats{
		Completions:    completions,
		TotalDays:      daysInMonth,
		CompletionRate: rate,
		Month:          firstDay.Format("January 2006"),
	}, nil
}

func (as *AnalyticsService) HabitSummary(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitSummary, error) {
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return &entity.HabitSummary{}, nil
	}
	return as.summarize(ctx, habit)
}

func (as *AnalyticsService) AllHabitsSummary(ctx context.Context, userID uuid.UUID) ([]*entity.HabitSummary, error) {
	habits, err := as.habitsRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	summaries := make([]*entity.HabitSummary, 0, len(habits))
	for _, habit := range habits {
		summary, err := as.summarize(ctx, habit)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CompletionRate > summaries[j].CompletionRate
	})
	return summaries, nil
}

func (as *AnalyticsService) OverallStats(ctx context.Context, userID uuid.UUID) (*entity.OverallStats, error) {
	totalHabits, err := as.habitsRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	totalCompletions, err := as.completionsRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	habits, err := as.habitsRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	today := as.now()
	totalRate := 0.0
	activeHabits := 0
	bestStreak := 0
	for _, habit := range habits {
		dates, err := as.completionsRepo.GetDates(ctx, habit.ID)
		if err != nil {
			return nil, errors.New("completions repository error: " + err.Error())
		}
		// Habits with a zero rate stay out of the average so brand-new
		// habits don't drag it down.
		if rate := CompletionRate(habit.StartDate, dates, today); rate > 0 {
			totalRate += rate
			activeHabits++
		}
		if _, longest := CalculateStreak(dates, today); longest > bestStreak {
			bestStreak = longest
		}
	}
	avgRate := 0.0
	if activeHabits > 0 {
		avgRate = totalRate / float64(activeHabits)
	}
	return &entity.OverallStats{
		TotalHabits:           totalHabits,
		TotalCompletions:      totalCompletions,
		AverageCompletionRate: avgRate,
		BestStreak:            bestStreak,
	}, nil
}

func (as *AnalyticsService) HeatmapData(ctx context.Context, habitID, userID uuid.UUID, days int) ([]entity.HeatmapDay, error) {
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return []entity.HeatmapDay{}, nil
	}
	dates, err := as.completionsRepo.GetDates(ctx, habitID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[DateOf(d)] = struct{}{}
	}
	today := DateOf(as.now())
	start := today.AddDate(0, 0, -(days - 1))
	if habitStart := DateOf(habit.StartDate); habitStart.After(start) {
		start = habitStart
	}
	heatmap := make([]entity.HeatmapDay, 0, days)
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		_, completed := set[day]
		heatmap = append(heatmap, entity.HeatmapDay{
			Date:      day,
			Completed: completed,
			Weekday:   WeekdayIndex(day),
		})
	}
	return heatmap, nil
}

func (as *AnalyticsService) TrendData(ctx context.Context, habitID, userID uuid.UUID, weeks int) ([]entity.WeekTrend, error) {
	habit, err := as.habitForOwner(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return []entity.WeekTrend{}, nil
	}
	dates, err := as.completionsRepo.GetDates(ctx, habitID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	weeklyCounts := make(map[time.Time]int)
	for _, d := range dates {
		weeklyCounts[WeekStart(d)]++
	}
	thisWeek := WeekStart(as.now())
	trend := make([]entity.WeekTrend, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		targetWeek := thisWeek.AddDate(0, 0, -7*i)
		trend = append(trend, entity.WeekTrend{
			WeekStart:   targetWeek,
			Completions: weeklyCounts[targetWeek],
			Label:       targetWeek.Format("Jan 02"),
		})
	}
	return trend, nil
}

// habitForOwner loads the habit and enforces ownership. A missing habit
// comes back as nil with nil error so callers can produce empty results;
// a habit of another user is refused with ErrWrongOwner.
func (as *AnalyticsService) habitForOwner(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := as.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, nil
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (as *AnalyticsService) summarize(ctx context.Context, habit *entity.Habit) (*entity.HabitSummary, error) {
	dates, err := as.completionsRepo.GetDates(ctx, habit.ID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	total, err := as.completionsRepo.CountByHabitID(ctx, habit.ID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	today := as.now()
	current, longest := CalculateStreak(dates, today)
	return &entity.HabitSummary{
		HabitID:          habit.ID,
		Name:             habit.Name,
		Category:         habit.Category,
		CurrentStreak:    current,
		LongestStreak:    longest,
		CompletionRate:   CompletionRate(habit.StartDate, dates, today),
		TotalCompletions: total,
		DaysTracked:      DaysBetween(habit.StartDate, today) + 1,
	}, nil
}
