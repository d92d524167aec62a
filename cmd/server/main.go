package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"library-ai-gateway/internal/agent"
	"library-ai-gateway/internal/config"
	"library-ai-gateway/internal/handler"
	"library-ai-gateway/internal/middleware"
)

func main() {
	godotenv.Load(".env.local")
	godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
	}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("ollama_url", cfg.OllamaURL).
		Str("model", cfg.Model).
		Bool("api_key", cfg.UsingAPIKey()).
		Uint("max_retries", cfg.MaxRetries).
		Int("retry_delay_s", cfg.RetryDelay).
		Msg("Starting library AI gateway")

	llm := agent.NewOllamaClient(agent.OllamaConfig{
		BaseURL: cfg.OllamaURL,
		APIKey:  cfg.OllamaAPIKey,
		Model:   cfg.Model,
		Sink:    &agent.ConsoleSink{W: os.Stdout},
		Logger:  log,
	})
	rec := agent.NewRecommender(llm, cfg.MaxRetries, cfg.RetryDelayDuration(), log)
	h := handler.New(cfg, llm, llm, rec, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := cfg.Origins()
	if gin.Mode() != gin.ReleaseMode {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.ChatRate), cfg.ChatBurst)
	limited := middleware.RateLimit(limiter)

	r.GET("/health", h.Health)
	r.POST("/generate-personal-recommendations", limited, h.PersonalRecommendations)
	r.POST("/generate-related-recommendations", limited, h.RelatedRecommendations)
	r.POST("/chat", limited, h.Chat)

	log.Info().Str("port", cfg.Port).Strs("allowed_origins", allowedOrigins).Msg("Server ready")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
