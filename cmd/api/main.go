// @title HabitFlow API
// @description API for habit-tracker app "HabitFlow"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/habitflow/internal/api"
	"github.com/limbo/habitflow/internal/category"
	"github.com/limbo/habitflow/internal/repository"
	"github.com/limbo/habitflow/internal/service"
	"github.com/limbo/habitflow/pkg/cleanup"
	"github.com/limbo/habitflow/pkg/config"
	jwtservice "github.com/limbo/habitflow/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	completionsRepo := repository.NewCompletionsRepo(&dbCfg)
	classifier := category.NewClassifier()
	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(repository.NewUsersRepo(&dbCfg)),
		HabitsService:    service.NewHabitsService(habitsRepo, completionsRepo, classifier),
		AnalyticsService: service.NewAnalyticsService(habitsRepo, completionsRepo),
		Classifier:       classifier,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
