// Package server exposes the rent scenario forecast over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/rental-forecast/internal/config"
	"github.com/iwvelando/rental-forecast/internal/forecast"
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/output"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	workers       int
	version       string
}

type forecastOptions struct {
	Metric simulation.Metric
}

// NewHandler constructs the HTTP handler that serves the forecast API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := constants.DefaultMaxUploadSizeBytes
	workers := constants.DefaultSimulationWorkers
	if cfg != nil {
		if cfg.UploadSizeBytes() > 0 {
			maxUploadSize = cfg.UploadSizeBytes()
		}
		if cfg.Workers > 0 {
			workers = cfg.Workers
		}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, workers: workers, version: trimmedVersion}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		// Forecast from an uploaded YAML configuration
		r.Post("/forecast", h.handleForecast)
		// Forecast from the editor's JSON configuration
		r.Post("/editor/forecast", h.handleForecastEditor)
		r.Post("/editor/export", h.handleConfigExport)
		r.Get("/version", h.handleVersion)
	})

	return router
}

// Server runs the forecast API until its context is cancelled.
type Server struct {
	logger          *zap.Logger
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New prepares a server listening on cfg.Address.
func New(logger *zap.Logger, cfg *Config, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           NewHandler(logger, cfg, version),
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

// Run serves requests until ctx is done, then gives in-flight requests the
// shutdown timeout to complete.
func (s *Server) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("starting server",
			zap.String("op", "server.Run"),
			zap.String("addr", s.httpServer.Addr),
		)
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown initiated", zap.String("op", "server.Run"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("graceful shutdown failed",
				zap.String("op", "server.Run"),
				zap.Error(err),
			)
			if closeErr := s.httpServer.Close(); closeErr != nil {
				return fmt.Errorf("failed to close server: %w", closeErr)
			}
			return err
		}
	}

	return nil
}

type forecastResponse struct {
	Scenarios  []string               `json:"scenarios"`
	Summary    []forecast.Summary     `json:"summary"`
	Ledgers    []scenarioLedger       `json:"ledgers"`
	Series     []forecast.Series      `json:"series,omitempty"`
	CSV        string                 `json:"csv"`
	Warnings   []string               `json:"warnings,omitempty"`
	Duration   string                 `json:"duration"`
	Config     map[string]interface{} `json:"config,omitempty"`
	ConfigYAML string                 `json:"configYaml,omitempty"`
}

type scenarioLedger struct {
	Name       string                  `json:"name"`
	RentPerSqm float64                 `json:"rentPerSqm"`
	Baseline   simulation.YearRecord   `json:"baseline"`
	Years      []simulation.YearRecord `json:"years"`
	Payoff     simulation.Payoff       `json:"payoff"`
	LedgerCSV  string                  `json:"ledgerCsv"`
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleForecast"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err))
		return
	}

	h.runForecast(w, r, configBytes, configMap, start, "server.handleForecast", forecastOptions{})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleForecastEditor(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleForecastEditor"
	start := time.Now()

	payload, ok := h.decodeJSONBody(w, r, op)
	if !ok {
		return
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, "invalid config payload: expected object", op)
			return
		}
		configPayload = cfgMap
	}

	options := forecastOptions{}
	if rawOptions, ok := payload["options"]; ok {
		optsMap, ok := rawOptions.(map[string]interface{})
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, "invalid options payload: expected object", op)
			return
		}
		if rawMetric, ok := optsMap["metric"]; ok {
			name, ok := rawMetric.(string)
			if !ok {
				h.respondErrorWithOp(w, http.StatusBadRequest, "invalid metric option: expected string", op)
				return
			}
			if name = strings.TrimSpace(name); name != "" {
				metric, err := simulation.ParseMetric(name)
				if err != nil {
					h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
					return
				}
				options.Metric = metric
			}
		}
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse configuration: %v", err), op)
		return
	}

	h.runForecast(w, r, configBytes, configMap, start, op, options)
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeJSONBody(w, r, "server.handleConfigExport")
	if !ok {
		return
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleConfigExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// decodeJSONBody decodes a JSON object body no larger than the upload limit.
// It writes the error response itself and reports whether decoding succeeded.
func (h *handler) decodeJSONBody(w http.ResponseWriter, r *http.Request, op string) (map[string]interface{}, bool) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxUploadSize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return nil, false
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	return payload, true
}

// sectionOrder is the order in which exported configurations list their
// top-level sections; unknown sections follow alphabetically.
var sectionOrder = []string{"logging", "output", "property", "financing", "operating", "assumptions"}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range sectionOrder {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	return yaml.Marshal(orderedConfig{items: items})
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) runForecast(w http.ResponseWriter, r *http.Request, configBytes []byte, configMap map[string]interface{}, start time.Time, op string, opts forecastOptions) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	rents, err := cfg.RentList()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	params := cfg.Parameters()
	results, err := forecast.Run(r.Context(), h.logger, params, rents, h.workers)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute forecast: %v", err), op)
		return
	}

	elapsed := time.Since(start)

	if configMap == nil {
		configMap = make(map[string]interface{})
	}

	response := forecastResponse{
		Scenarios:  extractScenarioNames(results),
		Summary:    extractSummaries(results),
		Ledgers:    buildLedgers(results, simulation.Baseline(params)),
		CSV:        output.CsvString(results),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		Config:     configMap,
		ConfigYAML: string(configBytes),
	}
	if opts.Metric != "" {
		response.Series = forecast.BuildSeries(results, opts.Metric)
	}

	h.logger.Info("forecast computed",
		zap.String("op", op),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleForecast")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("forecast request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func extractScenarioNames(results []forecast.Forecast) []string {
	names := make([]string, 0, len(results))
	for _, scenario := range results {
		names = append(names, scenario.Name)
	}
	return names
}

func extractSummaries(results []forecast.Forecast) []forecast.Summary {
	summaries := make([]forecast.Summary, 0, len(results))
	for _, scenario := range results {
		summaries = append(summaries, scenario.Summary)
	}
	return summaries
}

func buildLedgers(results []forecast.Forecast, baseline simulation.YearRecord) []scenarioLedger {
	ledgers := make([]scenarioLedger, 0, len(results))
	for _, scenario := range results {
		years := scenario.Result.Ledger
		if years == nil {
			years = []simulation.YearRecord{}
		}
		ledgers = append(ledgers, scenarioLedger{
			Name:       scenario.Name,
			RentPerSqm: scenario.Result.RentPerSqm,
			Baseline:   baseline,
			Years:      years,
			Payoff:     scenario.Result.Payoff,
			LedgerCSV:  output.LedgerCsvString(scenario),
		})
	}
	return ledgers
}
