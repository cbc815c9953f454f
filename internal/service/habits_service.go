package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/limbo/habitflow/internal/category"
	errorvalues "github.com/limbo/habitflow/internal/error_values"
	"github.com/limbo/habitflow/internal/repository"
	"github.com/limbo/habitflow/pkg/entity"
)

type HabitsService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	classifier      ClassifierI
	now             func() time.Time
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, classifier ClassifierI) *HabitsService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on habits service provided nil repos")
	}
	if classifier == nil {
		classifier = category.NewClassifier()
	}
	return &HabitsService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		classifier:      classifier,
		now:             time.Now,
	}
}

// SetClock swaps the time source, for tests.
func (hs *HabitsService) SetClock(now func() time.Time) {
	hs.now = now
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	startDate := DateOf(req.StartDate)
	if req.StartDate.IsZero() {
		startDate = DateOf(hs.now())
	}
	cat := req.Category
	if cat == "" {
		cat, _, _ = hs.classifier.Classify(req.Name)
	}
	h := entity.Habit{
		UserID:    uid,
		Name:      req.Name,
		Frequency: req.Frequency,
		StartDate: startDate,
		Color:     req.Color,
		Icon:      req.Icon,
		Category:  cat,
	}
	id, err := hs.habitsRepo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	return hs.ownedHabit(ctx, habitID, userID)
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.habitsRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	habit, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	habit.Name = req.Name
	habit.Frequency = req.Frequency
	habit.Category = req.Category
	habit.Color = req.Color
	habit.Icon = req.Icon
	if err := hs.habitsRepo.Update(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) ArchiveHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.ownedHabit(ctx, habitID, userID); err != nil {
		return err
	}
	if err := hs.habitsRepo.SetArchived(ctx, habitID, true); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.ownedHabit(ctx, habitID, userID); err != nil {
		return err
	}
	err := hs.habitsRepo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) MarkComplete(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	if _, err := hs.ownedHabit(ctx, habitID, userID); err != nil {
		return err
	}
	day := DateOf(date)
	if day.After(DateOf(hs.now())) {
		return errorvalues.ErrCompletionDateNotAllowed
	}
	err := hs.completionsRepo.Create(ctx, habitID, day)
	if err != nil {
		// Already marked is a no-op, not a failure.
		if errors.Is(err, errorvalues.ErrCompletionExists) {
			return nil
		}
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("completions repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) UnmarkComplete(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	if _, err := hs.ownedHabit(ctx, habitID, userID); err != nil {
		return err
	}
	err := hs.completionsRepo.Delete(ctx, habitID, DateOf(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return nil
		}
		return errors.New("completions repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) ToggleCompletion(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (bool, error) {
	if _, err := hs.ownedHabit(ctx, habitID, userID); err != nil {
		return false, err
	}
	day := DateOf(date)
	exists, err := hs.completionsRepo.Exists(ctx, habitID, day)
	if err != nil {
		return false, errors.New("completions repository error: " + err.Error())
	}
	if exists {
		if err := hs.completionsRepo.Delete(ctx, habitID, day); err != nil && !errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return false, errors.New("completions repository error: " + err.Error())
		}
		return false, nil
	}
	if day.After(DateOf(hs.now())) {
		return false, errorvalues.ErrCompletionDateNotAllowed
	}
	if err := hs.completionsRepo.Create(ctx, habitID, day); err != nil && !errors.Is(err, errorvalues.ErrCompletionExists) {
		return false, errors.New("completions repository error: " + err.Error())
	}
	return true, nil
}

func (hs *HabitsService) IsCompletedOn(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return false, nil
		}
		return false, errors.New("habits repository error: " + err.Error())
	}
	day := DateOf(date)
	// Habits are never due before their start date.
	if DateOf(habit.StartDate).After(day) {
		return false, nil
	}
	if habit.Frequency.Kind == entity.FrequencyWeekly {
		// Sticky window: one completion keeps a weekly habit done for the
		// following six days.
		done, err := hs.completionsRepo.ExistsInRange(ctx, habitID, day.AddDate(0, 0, -6), day)
		if err != nil {
			return false, errors.New("completions repository error: " + err.Error())
		}
		return done, nil
	}
	done, err := hs.completionsRepo.Exists(ctx, habitID, day)
	if err != nil {
		return false, errors.New("completions repository error: " + err.Error())
	}
	return done, nil
}

func (hs *HabitsService) HabitsForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.HabitStatus, error) {
	habits, err := hs.habitsRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	day := DateOf(date)
	statuses := make([]entity.HabitStatus, 0, len(habits))
	for _, habit := range habits {
		if DateOf(habit.StartDate).After(day) {
			continue
		}
		completed, err := hs.IsCompletedOn(ctx, habit.ID, day)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, entity.HabitStatus{
			Habit:     habit,
			Completed: completed,
		})
	}
	return statuses, nil
}

func (hs *HabitsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}
