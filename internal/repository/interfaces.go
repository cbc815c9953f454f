package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitflow/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Only UserID, Name, Frequency, StartDate, Color,
	// Icon and Category are read from habit
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Lists every habit of a user, optionally with archived ones
	ListByUser(ctx context.Context, uid uuid.UUID, includeArchived bool) ([]*entity.Habit, error)
	// Updates habit's editable fields by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Flips the archived flag
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
	// Deletes habit with id, cascading its completions
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns count of habits owned by user
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type CompletionsRepositoryI interface {
	// Records a completion for habitID on date. Duplicate habit+date pairs
	// are rejected with ErrCompletionExists
	Create(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// Removes the completion of habitID on date (unmark, hard delete)
	Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// Inspects if a completion exists on the exact date
	Exists(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
	// Inspects if any completion falls inside [from, to]
	ExistsInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) (bool, error)
	// Provides all completion dates of habitID
	GetDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)
	// Provides completions of habitID for a period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Completion, error)
	// Returns count of completions for habitID
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
	// Returns count of completions across all habits of a user
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
