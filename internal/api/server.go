package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/habitflow/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	habitService     service.HabitsServiceI
	analyticsService service.AnalyticsServiceI
	classifier       service.ClassifierI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	HabitsService    service.HabitsServiceI
	AnalyticsService service.AnalyticsServiceI
	Classifier       service.ClassifierI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		habitService:     servicesOptions.HabitsService,
		analyticsService: servicesOptions.AnalyticsService,
		classifier:       servicesOptions.Classifier,
		jwtService:       servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/categories", s.GetCategories)
		r.Post("/categories/classify", s.ClassifyName)
		r.Post("/categories/suggest", s.SuggestCategories)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Get("/habits/today", s.GetHabitsForDate)
			r.Get("/habits/{id}", s.GetHabit)
			r.Put("/habits/{id}", s.UpdateHabit)
			r.Post("/habits/{id}/archive", s.ArchiveHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/completions", s.MarkComplete)
			r.Delete("/habits/{id}/completions", s.UnmarkComplete)
			r.Post("/habits/{id}/toggle", s.ToggleCompletion)
			r.Get("/habits/{id}/summary", s.GetHabitSummary)
			r.Get("/habits/{id}/streak", s.GetStreak)
			r.Get("/habits/{id}/weekly-pattern", s.GetWeeklyPattern)
			r.Get("/habits/{id}/monthly", s.GetMonthlyStats)
			r.Get("/habits/{id}/heatmap", s.GetHeatmap)
			r.Get("/habits/{id}/trend", s.GetTrend)
			r.Get("/analytics/summaries", s.GetAllHabitsSummary)
			r.Get("/analytics/overview", s.GetOverallStats)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
