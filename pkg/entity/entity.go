package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Habit struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	Name       string    `json:"name"`
	Frequency  Frequency `json:"frequency"`
	StartDate  time.Time `json:"start_date"`
	Color      string    `json:"color"`
	Icon       string    `json:"icon"`
	Category   string    `json:"category"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Completion struct {
	ID             int       `json:"id"`
	HabitID        uuid.UUID `json:"habit_id"`
	CompletionDate time.Time `json:"completion_date"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type HabitSummary struct {
	HabitID          uuid.UUID `json:"habit_id"`
	Name             string    `json:"habit_name"`
	Category         string    `json:"category"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	CompletionRate   float64   `json:"completion_rate"`
	TotalCompletions int       `json:"total_completions"`
	DaysTracked      int       `json:"days_tracked"`
}

type MonthlyStats struct {
	Completions    int     `json:"completions"`
	TotalDays      int     `json:"total_days"`
	CompletionRate float64 `json:"completion_rate"`
	Month          string  `json:"month"`
}

type OverallStats struct {
	TotalHabits           int     `json:"total_habits"`
	TotalCompletions      int     `json:"total_completions"`
	AverageCompletionRate float64 `json:"average_completion_rate"`
	BestStreak            int     `json:"best_streak"`
}

type HeatmapDay struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Weekday   int       `json:"weekday"`
}

type WeekTrend struct {
	WeekStart   time.Time `json:"week_start"`
	Completions int       `json:"completions"`
	Label       string    `json:"week_label"`
}

// HabitStatus is one row of a for-date checklist: the habit plus whether
// it counts as completed on the requested date under its frequency.
type HabitStatus struct {
	Habit     *Habit `json:"habit"`
	Completed bool   `json:"completed"`
}
