package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitflow/internal/category"
	"github.com/limbo/habitflow/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Name      string `validate:"required,max=50"`
	Frequency entity.Frequency
	StartDate time.Time
	Color     string
	Icon      string
	Category  string
}

type UpdateHabitRequest struct {
	Name      string `validate:"required,max=50"`
	Frequency entity.Frequency
	Category  string
	Color     string
	Icon      string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	// Validates the request, auto-categorizes the name when no category is
	// given and stores the habit. Returns the stored habit with ID
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	ArchiveHabit(ctx context.Context, habitID, userID uuid.UUID) error
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
	// Records a completion for the date. Marking an already marked date is
	// an idempotent no-op
	MarkComplete(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
	// Removes the completion of the date. Unmarking a date that was never
	// marked is an idempotent no-op
	UnmarkComplete(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
	// Flips the completion of the date, returns the new state
	ToggleCompletion(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (bool, error)
	// Reports whether the habit counts as completed on the date under its
	// frequency semantics
	IsCompletedOn(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
	// Lists the user's habits due on the date with their completion state
	HabitsForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.HabitStatus, error)
}

type AnalyticsServiceI interface {
	// Current and longest consecutive-day streaks relative to ref. Per-habit
	// reads take the requesting userID and refuse habits of other users
	// with ErrWrongOwner
	CalculateStreak(ctx context.Context, habitID, userID uuid.UUID, ref time.Time) (int, int, error)
	// Lifetime percentage of days completed since the habit started, capped at 100
	CompletionRate(ctx context.Context, habitID, userID uuid.UUID) (float64, error)
	// Completion counts bucketed by weekday, 0=Monday..6=Sunday
	WeeklyPattern(ctx context.Context, habitID, userID uuid.UUID) (map[int]int, error)
	MonthlyStats(ctx context.Context, habitID, userID uuid.UUID, targetMonth time.Time) (*entity.MonthlyStats, error)
	HabitSummary(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitSummary, error)
	// Per-habit summaries sorted by completion rate, best first
	AllHabitsSummary(ctx context.Context, userID uuid.UUID) ([]*entity.HabitSummary, error)
	OverallStats(ctx context.Context, userID uuid.UUID) (*entity.OverallStats, error)
	// Day-by-day completion flags for the trailing window
	HeatmapData(ctx context.Context, habitID, userID uuid.UUID, days int) ([]entity.HeatmapDay, error)
	// Weekly completion counts for the trailing weeks, oldest first
	TrendData(ctx context.Context, habitID, userID uuid.UUID, weeks int) ([]entity.WeekTrend, error)
}

type ClassifierI interface {
	Classify(name string) (string, float64, category.Definition)
	Suggest(name string, topN int) []category.Suggestion
	All() []category.Definition
}
