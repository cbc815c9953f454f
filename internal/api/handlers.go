package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/habitflow/internal/category"
	errorvalues "github.com/limbo/habitflow/internal/error_values"
	"github.com/limbo/habitflow/internal/service"
	"github.com/limbo/habitflow/pkg/entity"
	"github.com/limbo/habitflow/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateHabitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date,omitempty"`
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Category  string `json:"category,omitempty"`
}

type UpdateHabitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	Category  string `json:"category"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
}

type CompletionRequest struct {
	Date string `json:"date,omitempty"`
}

type ClassifyRequest struct {
	Name string `json:"name"`
	TopN int    `json:"top_n,omitempty"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Habits []*entity.Habit `json:"habits"`
}

type ClassifyResponse struct {
	Category   string              `json:"category"`
	Confidence float64             `json:"confidence"`
	Definition category.Definition `json:"definition"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("delete account error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("delete account error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
			return
		default:
			logger.Error("delete account error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during account deletion", nil)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	freq := entity.Frequency{Kind: entity.FrequencyDaily}
	if req.Frequency != "" {
		freq, err = entity.ParseFrequency(req.Frequency)
		if err != nil {
			logger.Error("create habit error: invalid frequency")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid frequency descriptor", nil)
			return
		}
	}
	var startDate time.Time
	if req.StartDate != "" {
		startDate, err = time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			logger.Error("create habit error: invalid start date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid start date", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, &service.CreateHabitRequest{
		Name:      req.Name,
		Frequency: freq,
		StartDate: startDate,
		Color:     req.Color,
		Icon:      req.Icon,
		Category:  req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create habit error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create habit: user doesn't exists", nil)
		default:
			logger.Error("create habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't create habit", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.GetHabit(ctx, habitID, uid)
	if err != nil {
		s.writeHabitError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit provided")
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	var req UpdateHabitRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	freq, err := entity.ParseFrequency(req.Frequency)
	if err != nil {
		logger.Error("update habit error: invalid frequency")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid frequency descriptor", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.UpdateHabit(ctx, habitID, uid, &service.UpdateHabitRequest{
		Name:      req.Name,
		Frequency: freq,
		Category:  req.Category,
		Color:     req.Color,
		Icon:      req.Icon,
	})
	if err != nil {
		s.writeHabitError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated")
}

func (s *Server) ArchiveHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.habitService.ArchiveHabit(ctx, habitID, uid); err != nil {
		s.writeHabitError(w, logger, "archive habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit_id": habitID.String(), "archived": true})
	logger.Info("habit archived")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.habitService.DeleteHabit(ctx, habitID, uid); err != nil {
		s.writeHabitError(w, logger, "delete habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

func (s *Server) MarkComplete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	date, ok := s.completionDate(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.habitService.MarkComplete(ctx, habitID, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionDateNotAllowed) {
			logger.Error("mark complete error: future date")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "completion date is in the future", nil)
			return
		}
		s.writeHabitError(w, logger, "mark complete", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit_id": habitID.String(), "completed": true})
	logger.Info("habit marked complete")
}

func (s *Server) UnmarkComplete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	date, ok := s.completionDate(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.habitService.UnmarkComplete(ctx, habitID, uid, date); err != nil {
		s.writeHabitError(w, logger, "unmark complete", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit_id": habitID.String(), "completed": false})
	logger.Info("habit unmarked")
}

func (s *Server) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	date, ok := s.completionDate(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completed, err := s.habitService.ToggleCompletion(ctx, habitID, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionDateNotAllowed) {
			logger.Error("toggle completion error: future date")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "completion date is in the future", nil)
			return
		}
		s.writeHabitError(w, logger, "toggle completion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit_id": habitID.String(), "completed": completed})
	logger.Info("habit completion toggled")
}

func (s *Server) GetHabitsForDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habits for date error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			logger.Error("habits for date error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	statuses, err := s.habitService.HabitsForDate(ctx, uid, date)
	if err != nil {
		logger.Error("habits for date error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits for date", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, statuses)
	logger.Info("habits for date provided")
}

func (s *Server) GetHabitSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.analyticsService.HabitSummary(ctx, habitID, uid)
	if err != nil {
		s.writeHabitError(w, logger, "habit summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("habit summary provided")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	ref := time.Now()
	if raw := r.URL.Query().Get("ref"); raw != "" {
		var err error
		ref, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			logger.Error("streak error: invalid reference date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reference date", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	current, longest, err := s.analyticsService.CalculateStreak(ctx, habitID, uid, ref)
	if err != nil {
		s.writeHabitError(w, logger, "streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"habit_id":       habitID.String(),
		"current_streak": current,
		"longest_streak": longest,
	})
	logger.Info("streak provided")
}

func (s *Server) GetWeeklyPattern(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	pattern, err := s.analyticsService.WeeklyPattern(ctx, habitID, uid)
	if err != nil {
		s.writeHabitError(w, logger, "weekly pattern", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pattern)
	logger.Info("weekly pattern provided")
}

func (s *Server) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	targetMonth := time.Now()
	if raw := r.URL.Query().Get("month"); raw != "" {
		var err error
		targetMonth, err = time.Parse("2006-01", raw)
		if err != nil {
			logger.Error("monthly stats error: invalid month")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month, expected YYYY-MM", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.analyticsService.MonthlyStats(ctx, habitID, uid, targetMonth)
	if err != nil {
		s.writeHabitError(w, logger, "monthly stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("monthly stats provided")
}

func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 || days > 366 {
		days = 90
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	heatmap, err := s.analyticsService.HeatmapData(ctx, habitID, uid, days)
	if err != nil {
		s.writeHabitError(w, logger, "heatmap", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, heatmap)
	logger.Info("heatmap provided")
}

func (s *Server) GetTrend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := s.habitRequestIDs(w, r)
	if !ok {
		return
	}
	weeks, err := strconv.Atoi(r.URL.Query().Get("weeks"))
	if err != nil || weeks < 1 || weeks > 52 {
		weeks = 12
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	trend, err := s.analyticsService.TrendData(ctx, habitID, uid, weeks)
	if err != nil {
		s.writeHabitError(w, logger, "trend", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, trend)
	logger.Info("trend provided")
}

func (s *Server) GetAllHabitsSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("summaries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summaries, err := s.analyticsService.AllHabitsSummary(ctx, uid)
	if err != nil {
		logger.Error("summaries error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building summaries", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summaries)
	logger.Info("summaries provided")
}

func (s *Server) GetOverallStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("overall stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.analyticsService.OverallStats(ctx, uid)
	if err != nil {
		logger.Error("overall stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building overall stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("overall stats provided")
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	httputil.WriteJSONResponse(w, http.StatusOK, s.classifier.All())
	logger.Info("categories provided")
}

func (s *Server) ClassifyName(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ClassifyRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("classify error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	name, confidence, def := s.classifier.Classify(req.Name)
	httputil.WriteJSONResponse(w, http.StatusOK, ClassifyResponse{
		Category:   name,
		Confidence: confidence,
		Definition: def,
	})
	logger.Info("name classified")
}

func (s *Server) SuggestCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ClassifyRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("suggest error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	topN := req.TopN
	if topN < 1 || topN > 10 {
		topN = 3
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.classifier.Suggest(req.Name, topN))
	logger.Info("category suggestions provided")
}

func (s *Server) habitRequestIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit request error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	return uid, habitID, true
}

func (s *Server) completionDate(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (time.Time, bool) {
	var req CompletionRequest
	defer r.Body.Close()
	if r.ContentLength != 0 {
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("completion error: invalid body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return time.Time{}, false
		}
	}
	if req.Date == "" {
		return time.Now(), true
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		logger.Error("completion error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return date, true
}

func (s *Server) writeHabitError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		logger.Error(op + " error: unexist habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit not found", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: wrong owner")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "habit belongs to another user", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
