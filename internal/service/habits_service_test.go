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

var today = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

func newHabitsService(t *testing.T) (*service.HabitsService, *mocks.MockHabitsRepositoryI, *mocks.MockCompletionsRepositoryI) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	svc := service.NewHabitsService(habitsRepo, completionsRepo, nil)
	svc.SetClock(func() time.Time { return today })
	return svc, habitsRepo, completionsRepo
}

func ownedHabit(id, uid uuid.UUID) *entity.Habit {
	return &entity.Habit{
		ID:        id,
		UserID:    uid,
		Name:      "morning run",
		Frequency: entity.Frequency{Kind: entity.FrequencyDaily},
		StartDate: today.AddDate(0, 0, -9),
		Category:  "Health & Fitness",
	}
}

func TestCreateHabit_Service(t *testing.T) {
	uid := uuid.New()
	ctx := context.Background()
	t.Run("success with explicit category", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		hid := uuid.New()
		created := ownedHabit(hid, uid)
		habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(hid, nil)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(created, nil)
		habit, err := svc.CreateHabit(ctx, uid, &service.CreateHabitRequest{
			Name:      "morning run",
			Frequency: entity.Frequency{Kind: entity.FrequencyDaily},
			StartDate: today.AddDate(0, 0, -9),
			Category:  "Health & Fitness",
		})
		assert.NoError(t, err)
		assert.Equal(t, created, habit)
	})
	t.Run("empty category gets classified", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		hid := uuid.New()
		habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *entity.Habit) (uuid.UUID, error) {
				assert.Equal(t, "Health & Fitness", h.Category)
				return hid, nil
			})
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		_, err := svc.CreateHabit(ctx, uid, &service.CreateHabitRequest{
			Name:      "30 min morning run",
			Frequency: entity.Frequency{Kind: entity.FrequencyDaily},
		})
		assert.NoError(t, err)
	})
	t.Run("zero start date defaults to today", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		hid := uuid.New()
		habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *entity.Habit) (uuid.UUID, error) {
				assert.Equal(t, today, h.StartDate)
				return hid, nil
			})
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		_, err := svc.CreateHabit(ctx, uid, &service.CreateHabitRequest{
			Name:      "journal",
			Frequency: entity.Frequency{Kind: entity.FrequencyDaily},
			Category:  "Self-Care",
		})
		assert.NoError(t, err)
	})
	t.Run("blank name fails validation", func(t *testing.T) {
		svc, _, _ := newHabitsService(t)
		_, err := svc.CreateHabit(ctx, uid, &service.CreateHabitRequest{
			Name:      "   ",
			Frequency: entity.Frequency{Kind: entity.FrequencyDaily},
		})
		assert.Error(t, err)
	})
	t.Run("unknown owner", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrOwnerNotFound)
		_, err := svc.CreateHabit(ctx, uid, &service.CreateHabitRequest{
			Name:      "read",
			Frequency: entity.Frequency{Kind: entity.FrequencyDaily},
			Category:  "Learning & Education",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetHabit_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habit := ownedHabit(hid, uid)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		result, err := svc.GetHabit(ctx, hid, uid)
		assert.NoError(t, err)
		assert.Equal(t, habit, result)
	})
	t.Run("not found", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		_, err := svc.GetHabit(ctx, hid, uid)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("wrong owner", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uuid.New()), nil)
		_, err := svc.GetHabit(ctx, hid, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestUpdateHabit_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	req := &service.UpdateHabitRequest{
		Name:      "evening run",
		Frequency: entity.Frequency{Kind: entity.FrequencyCustom, TimesPerWeek: 3},
		Category:  "Health & Fitness",
	}
	t.Run("success", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		habitsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		habit, err := svc.UpdateHabit(ctx, hid, uid, req)
		assert.NoError(t, err)
		assert.Equal(t, "evening run", habit.Name)
		assert.Equal(t, entity.FrequencyCustom, habit.Frequency.Kind)
	})
	t.Run("wrong owner", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uuid.New()), nil)
		_, err := svc.UpdateHabit(ctx, hid, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestArchiveAndDeleteHabit_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("archive", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		habitsRepo.EXPECT().SetArchived(gomock.Any(), hid, true).Return(nil)
		assert.NoError(t, svc.ArchiveHabit(ctx, hid, uid))
	})
	t.Run("delete", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		habitsRepo.EXPECT().Delete(gomock.Any(), hid).Return(nil)
		assert.NoError(t, svc.DeleteHabit(ctx, hid, uid))
	})
	t.Run("delete not found", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		assert.ErrorIs(t, svc.DeleteHabit(ctx, hid, uid), errorvalues.ErrHabitNotFound)
	})
}

func TestMarkComplete_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Create(gomock.Any(), hid, today).Return(nil)
		assert.NoError(t, svc.MarkComplete(ctx, hid, uid, today))
	})
	t.Run("future date rejected", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		err := svc.MarkComplete(ctx, hid, uid, today.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, errorvalues.ErrCompletionDateNotAllowed)
	})
	t.Run("already marked is a no-op", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Create(gomock.Any(), hid, today).Return(errorvalues.ErrCompletionExists)
		assert.NoError(t, svc.MarkComplete(ctx, hid, uid, today))
	})
}

func TestUnmarkComplete_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Delete(gomock.Any(), hid, today).Return(nil)
		assert.NoError(t, svc.UnmarkComplete(ctx, hid, uid, today))
	})
	t.Run("nothing to unmark is a no-op", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Delete(gomock.Any(), hid, today).Return(errorvalues.ErrCompletionNotFound)
		assert.NoError(t, svc.UnmarkComplete(ctx, hid, uid, today))
	})
}

func TestToggleCompletion_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("marks when missing", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Exists(gomock.Any(), hid, today).Return(false, nil)
		completionsRepo.EXPECT().Create(gomock.Any(), hid, today).Return(nil)
		completed, err := svc.ToggleCompletion(ctx, hid, uid, today)
		assert.NoError(t, err)
		assert.True(t, completed)
	})
	t.Run("unmarks when present", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Exists(gomock.Any(), hid, today).Return(true, nil)
		completionsRepo.EXPECT().Delete(gomock.Any(), hid, today).Return(nil)
		completed, err := svc.ToggleCompletion(ctx, hid, uid, today)
		assert.NoError(t, err)
		assert.False(t, completed)
	})
	t.Run("future mark rejected", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		tomorrow := today.AddDate(0, 0, 1)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Exists(gomock.Any(), hid, tomorrow).Return(false, nil)
		_, err := svc.ToggleCompletion(ctx, hid, uid, tomorrow)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionDateNotAllowed)
	})
}

func TestIsCompletedOn_Service(t *testing.T) {
	uid := uuid.New()
	hid := uuid.New()
	ctx := context.Background()
	t.Run("daily checks the exact day", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(ownedHabit(hid, uid), nil)
		completionsRepo.EXPECT().Exists(gomock.Any(), hid, today).Return(true, nil)
		done, err := svc.IsCompletedOn(ctx, hid, today)
		assert.NoError(t, err)
		assert.True(t, done)
	})
	t.Run("weekly checks the trailing window", func(t *testing.T) {
		svc, habitsRepo, completionsRepo := newHabitsService(t)
		habit := ownedHabit(hid, uid)
		habit.Frequency = entity.Frequency{Kind: entity.FrequencyWeekly}
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		completionsRepo.EXPECT().ExistsInRange(gomock.Any(), hid, today.AddDate(0, 0, -6), today).Return(true, nil)
		done, err := svc.IsCompletedOn(ctx, hid, today)
		assert.NoError(t, err)
		assert.True(t, done)
	})
	t.Run("before start date", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habit := ownedHabit(hid, uid)
		habit.StartDate = today.AddDate(0, 0, 5)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(habit, nil)
		done, err := svc.IsCompletedOn(ctx, hid, today)
		assert.NoError(t, err)
		assert.False(t, done)
	})
	t.Run("unknown habit reads as not completed", func(t *testing.T) {
		svc, habitsRepo, _ := newHabitsService(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), hid).Return(nil, errorvalues.ErrHabitNotFound)
		done, err := svc.IsCompletedOn(ctx, hid, today)
		assert.NoError(t, err)
		assert.False(t, done)
	})
}

func TestHabitsForDate_Service(t *testing.T) {
	uid := uuid.New()
	ctx := context.Background()
	svc, habitsRepo, completionsRepo := newHabitsService(t)
	started := ownedHabit(uuid.New(), uid)
	notStarted := ownedHabit(uuid.New(), uid)
	notStarted.StartDate = today.AddDate(0, 0, 3)
	habitsRepo.EXPECT().ListByUser(gomock.Any(), uid, false).Return([]*entity.Habit{started, notStarted}, nil)
	habitsRepo.EXPECT().GetByID(gomock.Any(), started.ID).Return(started, nil)
	completionsRepo.EXPECT().Exists(gomock.Any(), started.ID, today).Return(true, nil)
	statuses, err := svc.HabitsForDate(ctx, uid, today)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(statuses))
	assert.Equal(t, started.ID, statuses[0].Habit.ID)
	assert.True(t, statuses[0].Completed)
}
