package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clubpuntos/cmd/fx/auth_fx"
	"clubpuntos/cmd/fx/controllers_fx"
	"clubpuntos/cmd/fx/db_fx"
	"clubpuntos/cmd/fx/ledger_fx"
	"clubpuntos/cmd/fx/members_fx"
	"clubpuntos/cmd/fx/ranking_fx"
	"clubpuntos/cmd/fx/reports_fx"
	"clubpuntos/internal/api/controllers"
	"clubpuntos/internal/config"
	"clubpuntos/internal/infra"
	"clubpuntos/internal/models/response_models"
	"clubpuntos/pkg/logger"
	"clubpuntos/pkg/middleware"
	"clubpuntos/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		members_fx.Module,
		ledger_fx.Module,
		ranking_fx.Module,
		reports_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(InitLogger),
		fx.Invoke(InitAuth),
		fx.Invoke(infra.SeedAdmin),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func InitLogger(cfg *config.Config) {
	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
}

func InitAuth(cfg *config.Config) {
	utils.InitJWT(cfg.JWTSecret)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log := logger.Get()
				log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log := logger.Get()
			log.Info().Msg("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	authController *controllers.AuthController,
	membersController *controllers.MembersController,
	transactionsController *controllers.TransactionsController) *gin.Engine {

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))

	RegisterRoutes(r, authController, membersController, transactionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	membersController *controllers.MembersController,
	transactionsController *controllers.TransactionsController) {

	r.POST("/api/login", authController.Login)
	r.POST("/api/register", authController.Register)

	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/members/:id", membersController.GetAccountView)
	authed.GET("/members/:id/rank", membersController.GetRank)

	admin := authed.Group("")
	admin.Use(middleware.RequireClass(response_models.ClassAdmin))
	admin.GET("/members", membersController.ListMembers)
	admin.GET("/ranking", membersController.GetRanking)
	admin.POST("/transactions", transactionsController.Record)
	admin.GET("/transactions", transactionsController.List)
	admin.GET("/transactions/export", transactionsController.Export)
}
