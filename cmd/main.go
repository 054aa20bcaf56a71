package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/config"
	"github.com/kunal22-jpg/nutracia-version-1/controllers"
	"github.com/kunal22-jpg/nutracia-version-1/routes"
	"github.com/kunal22-jpg/nutracia-version-1/services"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL, log)
	userSvc := services.NewUserService(db)
	cartSvc := services.NewCartService(db)
	gemini := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	chatSvc := services.NewChatService(db, gemini, log)
	dashSvc := services.NewDashboardService(userSvc, chatSvc, cartSvc)

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc, log),
		User:      controllers.NewUserController(userSvc, log),
		Cart:      controllers.NewCartController(cartSvc, log),
		Chat:      controllers.NewChatController(chatSvc, log),
		Dashboard: controllers.NewDashboardController(dashSvc, log),
	}, []byte(cfg.JWTSecret))

	log.Info().Str("addr", cfg.ServerAddress).Msg("starting server")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
