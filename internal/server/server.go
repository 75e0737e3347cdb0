// Package server wires the HTTP API: routing, authentication, security
// middleware and request logging.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matkaworks/matka-backend/internal/betting"
	"github.com/matkaworks/matka-backend/internal/database"
	"github.com/matkaworks/matka-backend/internal/game"
	"github.com/matkaworks/matka-backend/internal/handler"
	"github.com/matkaworks/matka-backend/internal/logger"
	"github.com/matkaworks/matka-backend/internal/metrics"
	"github.com/matkaworks/matka-backend/internal/settlement"
	"github.com/matkaworks/matka-backend/internal/wallet"
)

type Server struct {
	httpServer        *http.Server
	dbPool            database.Pool
	gameService       game.Service
	bettingService    betting.Service
	settlementService settlement.Service
	walletService     wallet.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool,
	gameService game.Service, bettingService betting.Service,
	settlementService settlement.Service, walletService wallet.Service) *Server {

	r := chi.NewRouter()

	// Middleware stack, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(gameService)
	betHandler := handler.NewBetHandler(bettingService)
	resultHandler := handler.NewResultHandler(settlementService)
	walletHandler := handler.NewWalletHandler(walletService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Post("/", gameHandler.HandleCreateGame)
			r.Get("/", gameHandler.HandleListGames)

			r.Route("/{gameID}", func(r chi.Router) {
				r.Get("/", gameHandler.HandleGetGame)
				r.Put("/", gameHandler.HandleUpdateGame)
				r.Delete("/", gameHandler.HandleDeleteGame)
				r.Get("/status", gameHandler.HandleGameStatus)
				r.Post("/force-status", gameHandler.HandleForceStatus)

				r.Post("/result", resultHandler.HandleDeclareResult)
				r.Get("/result", resultHandler.HandleGetResult)
				r.Get("/summary", resultHandler.HandleUserSummary)
			})
		})

		r.Post("/bets", betHandler.HandlePlaceBet)

		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", walletHandler.HandleProvisionWallet)
			r.Get("/{userID}", walletHandler.HandleGetWallet)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:            dbPool,
		gameService:       gameService,
		bettingService:    bettingService,
		settlementService: settlementService,
		walletService:     walletService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics endpoints poll constantly; keep them out of the
		// request log.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
