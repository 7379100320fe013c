package api

import (
	"net/http"
	"time"

	"judge_api/internal/api/handler"
	"judge_api/internal/api/middleware"
	"judge_api/internal/app/service"
	"judge_api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// Services bundles what the handlers call into.
type Services struct {
	Auth        *service.AuthService
	Contests    *service.ContestService
	Problems    *service.ProblemService
	Submissions *service.SubmissionService
}

type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration // zero means 60s
}

func NewRouter(svc Services, log logrus.FieldLogger, opts Options) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Instrument)
	r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	authHandler := handler.NewAuthHandler(svc.Auth, log)
	r.Group(authHandler.RegisterRoutes)

	contestHandler := handler.NewContestHandler(svc.Contests, log)
	r.Route("/contests", contestHandler.RegisterRoutes)

	problemHandler := handler.NewProblemHandler(svc.Problems, svc.Submissions, log)
	r.Route("/problems", problemHandler.RegisterRoutes)

	submissionHandler := handler.NewSubmissionHandler(svc.Submissions, log)
	r.Route("/submissions", submissionHandler.RegisterRoutes)

	return r
}
