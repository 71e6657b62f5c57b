//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/fulfilld/ordergraph/internal/kafka"
	"github.com/fulfilld/ordergraph/internal/metrics"
)

// QueryExecutor runs a GraphQL query document in-process and returns the
// standard result envelope.
type QueryExecutor interface {
	Execute(ctx context.Context, request string, variables map[string]interface{}, operationName string) *graphql.Result
}

// QueryBridge translates free-form user text into a GraphQL query string.
// An empty result means no query could be produced.
type QueryBridge interface {
	GenerateQuery(ctx context.Context, userInput string) string
}

// HealthChecker reports whether the backing store is reachable. Satisfied by
// *mongo.Client.
type HealthChecker interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type Server struct {
	executor     QueryExecutor
	bridge       QueryBridge
	health       HealthChecker
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(executor QueryExecutor, bridge QueryBridge, health HealthChecker, producer kafka.Producer, auditTopic string, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, producer, auditTopic, logger)
	return &Server{
		executor:     executor,
		bridge:       bridge,
		health:       health,
		logger:       logger,
		AuditManager: auditManager,
	}
}

// Run starts the audit pipeline and serves HTTP until the listener is closed.
func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.auditLogMiddleware)
	api.HandleFunc("/graphql", s.handleGraphQL).Methods(http.MethodPost)
	api.HandleFunc("/generate-query", s.handleGenerateQuery).Methods(http.MethodPost)
	api.HandleFunc("/fetch-orders", s.handleFetchOrders).Methods(http.MethodPost)

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Query         string                 `json:"query"`
		Variables     map[string]interface{} `json:"variables"`
		OperationName string                 `json:"operationName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.Query == "" {
		respondError(w, http.StatusBadRequest, "Query is required")
		return
	}

	result := s.executor.Execute(r.Context(), request.Query, request.Variables, request.OperationName)
	metrics.QueriesExecutedTotal.Inc()
	if result.HasErrors() {
		metrics.OperationErrorsTotal.WithLabelValues("graphql").Inc()
	}

	// Errors travel inside the GraphQL envelope, not as HTTP status codes.
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerateQuery(w http.ResponseWriter, r *http.Request) {
	userInput, ok := decodeUserInput(w, r)
	if !ok {
		return
	}

	metrics.BridgeRequestsTotal.Inc()
	generated := s.bridge.GenerateQuery(r.Context(), userInput)
	if generated == "" {
		metrics.BridgeFailuresTotal.Inc()
		respondError(w, http.StatusInternalServerError, "Failed to generate GraphQL query")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"graphqlQuery": generated})
}

func (s *Server) handleFetchOrders(w http.ResponseWriter, r *http.Request) {
	userInput, ok := decodeUserInput(w, r)
	if !ok {
		return
	}

	metrics.BridgeRequestsTotal.Inc()
	generated := s.bridge.GenerateQuery(r.Context(), userInput)
	if generated == "" {
		metrics.BridgeFailuresTotal.Inc()
		respondError(w, http.StatusInternalServerError, "Failed to generate GraphQL query")
		return
	}

	result := s.executor.Execute(r.Context(), generated, nil, "")
	metrics.QueriesExecutedTotal.Inc()
	if result.HasErrors() {
		metrics.OperationErrorsTotal.WithLabelValues("fetch_orders").Inc()
		s.logger.Warn("Generated query failed to execute",
			zap.String("query", generated),
			zap.Any("errors", result.Errors))
		respondError(w, http.StatusInternalServerError, "Query execution failed: "+result.Errors[0].Message)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func decodeUserInput(w http.ResponseWriter, r *http.Request) (string, bool) {
	var request struct {
		UserInput string `json:"userInput"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserInput == "" {
		respondError(w, http.StatusBadRequest, "User input is required")
		return "", false
	}

	return request.UserInput, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.health.Ping(ctx, readpref.Primary()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
