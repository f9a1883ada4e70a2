package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/api/handler"
	customMiddleware "github.com/Rrens/fitsmart/internal/api/middleware"
	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/llm"
	"github.com/Rrens/fitsmart/internal/llm/anthropic"
	"github.com/Rrens/fitsmart/internal/llm/gemini"
	"github.com/Rrens/fitsmart/internal/llm/ollama"
	"github.com/Rrens/fitsmart/internal/llm/openai"
	"github.com/Rrens/fitsmart/internal/llm/vertex"
	"github.com/Rrens/fitsmart/internal/metrics"
	"github.com/Rrens/fitsmart/internal/service"
)

// Deps are the collaborators the router wires into its handlers
type Deps struct {
	Store   domain.KeyValueStore
	Metrics *metrics.Manager
	// Gatherer backs the metrics endpoint; nil disables it.
	Gatherer prometheus.Gatherer
	// Ready is pinged by the readiness check; nil means always ready.
	Ready handler.Pinger
	// LLM overrides the providers built from config.
	LLM *llm.Router
}

// NewLLMRouter registers every vision provider that has credentials
func NewLLMRouter(cfg config.LLMConfig) *llm.Router {
	llmRouter := llm.NewRouter(cfg.DefaultProvider)

	log.Info().Msgf("Initializing vision providers. Default: %s", cfg.DefaultProvider)

	if cfg.Ollama.Host != "" {
		log.Info().Str("host", cfg.Ollama.Host).Msg("Registering Ollama provider")
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.Ollama))
	}
	if cfg.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.OpenAI))
	} else {
		log.Warn().Msg("OpenAI API key is empty, skipping registration")
	}
	if cfg.Anthropic.APIKey != "" {
		llmRouter.RegisterProvider(anthropic.NewProvider(cfg.Anthropic))
	}
	if cfg.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.Gemini))
	}
	if cfg.Vertex.ProjectID != "" {
		log.Info().Str("project", cfg.Vertex.ProjectID).Str("location", cfg.Vertex.Location).Msg("Registering Vertex AI provider")
		llmRouter.RegisterProvider(vertex.NewProvider(cfg.Vertex))
	}

	return llmRouter
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	if deps.Metrics != nil {
		r.Use(customMiddleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.Recoverer)
	if cfg.Server.MiddlewareTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	}
	r.Use(customMiddleware.MaxBody(cfg.Server.MaxBodyBytes))

	// CORS
	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	llmRouter := deps.LLM
	if llmRouter == nil {
		llmRouter = NewLLMRouter(cfg.LLM)
	}

	// Initialize services
	profileService := service.NewProfileService()
	trackerService := service.NewTrackerService(deps.Store, profileService)
	analyzerService := service.NewAnalyzerService(llmRouter, cfg.LLM, deps.Metrics)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService, trackerService)
	analyzeHandler := handler.NewAnalyzeHandler(analyzerService, trackerService)
	trackerHandler := handler.NewTrackerHandler(trackerService)

	if cfg.Metrics.Enabled && deps.Gatherer != nil {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.Ready))

		r.Get("/llm-providers", handler.ListLLMProviders(analyzerService, llmRouter.DefaultProvider()))

		// Stateless calculator and analyzer
		r.Post("/onboarding", profileHandler.Onboard)
		r.Post("/meal-plan", profileHandler.MealPlan)
		r.Post("/analyze-food", analyzeHandler.AnalyzeFood)

		// Device tracker routes
		r.Route("/devices/{deviceID}", func(r chi.Router) {
			r.Use(customMiddleware.DeviceContext)

			r.Delete("/", trackerHandler.Reset)

			r.Put("/profile", profileHandler.Save)
			r.Get("/profile", profileHandler.Get)
			r.Get("/meal-plan", profileHandler.DeviceMealPlan)

			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", trackerHandler.Workouts)
				r.Post("/custom", trackerHandler.CustomWorkout)
				r.Post("/{workoutID}/complete", trackerHandler.CompleteWorkout)
			})

			r.Route("/meals", func(r chi.Router) {
				r.Get("/", trackerHandler.Meals)
				r.Post("/", trackerHandler.LogMeal)
				r.Post("/analyze", analyzeHandler.AnalyzeAndLog)
				r.Post("/photo", analyzeHandler.UploadPhoto)
				r.Delete("/{mealID}", trackerHandler.DeleteMeal)
			})

			r.Route("/water", func(r chi.Router) {
				r.Get("/", trackerHandler.Water)
				r.Post("/", trackerHandler.AddWater)
				r.Delete("/last", trackerHandler.RemoveWater)
			})

			r.Get("/progress", trackerHandler.Progress)
		})
	})

	return r
}
