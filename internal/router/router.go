package router

import (
	"net/http"

	_ "dicefit-api/docs"
	"dicefit-api/internal/config"
	"dicefit-api/internal/handlers"
	"dicefit-api/internal/metrics"
	"dicefit-api/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// BasePath prefixes every API route.
const BasePath = "/api/dicefit"

func Setup(app *config.Application, svc handlers.Services) http.Handler {
	router := mux.NewRouter()

	// Create instances of handlers and middleware
	h := handlers.New(app, svc)
	mw := middleware.New(app, svc.Auth)

	// Apply global middleware in order of execution
	router.Use(mw.RequestID) // First: Add request ID
	router.Use(otelmux.Middleware("dicefit-api"))
	router.Use(mw.Recovery)         // Second: Catch panics
	router.Use(mw.Logging)          // Third: Log requests
	router.Use(middleware.Security) // Fourth: Security headers

	// Wraps the router rather than Use: preflights match no route.
	c := cors.New(cors.Options{
		AllowedOrigins:   app.Config.CORS_Allowed_Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	})

	// Health and monitoring routes (no authentication required)
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/health/detailed", h.HealthDetailed).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix(BasePath).Subrouter()

	// Public routes
	api.HandleFunc("/registro", h.Register).Methods("POST")
	api.HandleFunc("/login", h.Login).Methods("POST")
	api.HandleFunc("/send-email", h.SendPasswordReset).Methods("POST")
	api.HandleFunc("/treino/exercicios", h.ListExercises).Methods("GET")
	api.HandleFunc("/treino/exercicios/tipos/{tipo}", h.ListExercisesByType).Methods("GET")
	api.HandleFunc("/treino/usuario/{id_cliente}", h.ListTrainingsForClient).Methods("GET")

	// Protected routes
	protected := func(fn http.HandlerFunc) http.Handler {
		return mw.Authenticate(fn)
	}
	api.Handle("/password/update", protected(h.ChangePassword)).Methods("PUT")
	api.Handle("/perfil", protected(h.GetProfile)).Methods("GET")
	api.Handle("/perfil/update", protected(h.UpdateProfile)).Methods("PUT")
	api.Handle("/perfil/plano", protected(h.GetPlan)).Methods("GET")
	api.Handle("/planos", protected(h.ListPlans)).Methods("GET")
	api.Handle("/treino/create", protected(h.CreateTraining)).Methods("POST")
	api.Handle("/treino/usuario/update", protected(h.UpdateTrainingStats)).Methods("PUT")
	api.Handle("/treino/treino-exercicio/update", protected(h.UpdateTrainingExercise)).Methods("PUT")
	api.Handle("/send-rating", protected(h.AddFeedback)).Methods("POST")

	return promhttp.InstrumentHandlerDuration(metrics.HTTPRequestDuration, c.Handler(router))
}
