package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habitflow/internal/error_values"
	"github.com/limbo/habitflow/pkg/cleanup"
	"github.com/limbo/habitflow/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, frequency, start_date, color, icon, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Frequency.String(),
		habit.StartDate,
		habit.Color,
		habit.Icon,
		habit.Category,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx,
		`SELECT user_id, name, frequency, start_date, color, icon, category, is_archived, created_at, updated_at
		FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	habit.ID = id
	return habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, name, frequency, start_date, color, icon, category, is_archived, created_at, updated_at
		FROM habits WHERE user_id = $1 AND is_archived = FALSE ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	return collectHabits(rows)
}

func (hr *HabitsRepository) ListByUser(ctx context.Context, uid uuid.UUID, includeArchived bool) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, name, frequency, start_date, color, icon, category, is_archived, created_at, updated_at
		FROM habits WHERE user_id = $1 AND (is_archived = FALSE OR $2) ORDER BY created_at;`, uid, includeArchived)
	if err != nil {
		return nil, errors.New("listing habits by uid error: " + err.Error())
	}
	defer rows.Close()
	return collectHabits(rows)
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx,
		`UPDATE habits SET name = $1, frequency = $2, category = $3, color = $4, icon = $5, updated_at = NOW() WHERE id = $6;`,
		habit.Name, habit.Frequency.String(), habit.Category, habit.Color, habit.Icon, habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET is_archived = $1, updated_at = NOW() WHERE id = $2;`, archived, id)
	if err != nil {
		return errors.New("error archiving habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := hr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM habits WHERE user_id = $1 AND is_archived = FALSE;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting habits error: " + err.Error())
	}
	return count, nil
}

type habitRow interface {
	Scan(dest ...any) error
}

// scanHabit reads one habit row without its id column. The frequency
// descriptor is parsed here, at the persistence boundary; an unknown
// descriptor degrades to Daily instead of failing the whole query.
func scanHabit(row habitRow) (*entity.Habit, error) {
	var (
		habit   entity.Habit
		freqStr string
	)
	err := row.Scan(&habit.UserID, &habit.Name, &freqStr, &habit.StartDate,
		&habit.Color, &habit.Icon, &habit.Category, &habit.IsArchived,
		&habit.CreatedAt, &habit.UpdatedAt)
	if err != nil {
		return nil, err
	}
	habit.Frequency = parseFrequencyOrDaily(freqStr)
	return &habit, nil
}

func collectHabits(rows pgx.Rows) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		var (
			h       entity.Habit
			freqStr string
			start   time.Time
		)
		err := rows.Scan(&h.ID, &h.UserID, &h.Name, &freqStr, &start,
			&h.Color, &h.Icon, &h.Category, &h.IsArchived, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			// A corrupted row must not blank the whole listing.
			continue
		}
		h.StartDate = start
		h.Frequency = parseFrequencyOrDaily(freqStr)
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func parseFrequencyOrDaily(s string) entity.Frequency {
	freq, err := entity.ParseFrequency(s)
	if err != nil {
		return entity.Frequency{Kind: entity.FrequencyDaily}
	}
	return freq
}
