package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/eugenenazirov/homestead-calculator/internal/calculator"
	"github.com/eugenenazirov/homestead-calculator/internal/catalog"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const defaultMaxBodyBytes int64 = 1 << 20

// Handler wires the calculator and animal catalog into HTTP handlers.
type Handler struct {
	calculator calculator.Calculator
	catalog    catalog.Catalog

	logger       *zap.Logger
	maxBodyBytes int64
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithLogger sets the logger used to report internal faults.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMaxBodyBytes caps the size of request bodies.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, cat catalog.Catalog, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:   calc,
		catalog:      cat,
		logger:       zap.NewNop(),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Homesteading Calculator API is running",
	})
}

func (h *Handler) handleAnimals(w http.ResponseWriter, r *http.Request) {
	_ = r
	profiles := h.catalog.Profiles()
	animals := make([]animalResponse, 0, len(profiles))
	for _, entry := range profiles {
		animals = append(animals, animalResponse{ID: entry.ID, Profile: entry.Profile})
	}
	writeJSON(w, http.StatusOK, animalsResponse{
		Animals:           animals,
		IsNationalAverage: true,
	})
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	req, err := decodeCalculateRequest(body, h.known)
	if err != nil {
		if errors.Is(err, errMissingAnimals) {
			h.logger.Debug("rejected calculate request",
				zap.String("request_id", requestIDFromContext(r.Context())),
				zap.Error(err),
			)
			writeError(w, http.StatusBadRequest, missingAnimalsMessage)
			return
		}
		h.writeInternalError(w, r, err)
		return
	}

	result, err := h.calculator.Compute(req.Animals)
	if err != nil {
		h.writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewCalculateResponse(result))
}

func (h *Handler) known(id string) bool {
	_, ok := h.catalog.Lookup(id)
	return ok
}

func (h *Handler) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("calculation failed",
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// CalculateResponse is the document returned by POST /calculate.
type CalculateResponse struct {
	AnimalData        map[string]calculator.AnimalResult `json:"animal_data"`
	MinAcreage        float64                            `json:"min_acreage"`
	MaxAcreage        float64                            `json:"max_acreage"`
	TotalWaterDaily   float64                            `json:"total_water_daily"`
	TotalWaterAnnual  float64                            `json:"total_water_annual"`
	IsNationalAverage bool                               `json:"is_national_average"`
	TotalYields       map[calculator.Category]float64    `json:"total_yields"`
	TotalCosts        calculator.CostTotals              `json:"total_costs"`
}

// NewCalculateResponse maps a calculation result to its wire representation.
func NewCalculateResponse(res calculator.Result) CalculateResponse {
	animals := res.Animals
	if animals == nil {
		animals = map[string]calculator.AnimalResult{}
	}
	return CalculateResponse{
		AnimalData:        animals,
		MinAcreage:        res.MinAcreage,
		MaxAcreage:        res.MaxAcreage,
		TotalWaterDaily:   res.TotalWaterDaily,
		TotalWaterAnnual:  res.TotalWaterAnnual,
		IsNationalAverage: true,
		TotalYields:       res.TotalYields,
		TotalCosts:        res.TotalCosts,
	}
}

type animalResponse struct {
	ID string `json:"id"`
	catalog.Profile
}

type animalsResponse struct {
	Animals           []animalResponse `json:"animals"`
	IsNationalAverage bool             `json:"is_national_average"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// writeJSON encodes payload before touching the response, so an encoding
// failure still produces a 500 error document.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(statusResponse{Status: "error", Message: err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, statusResponse{
		Status:  "error",
		Message: message,
	})
}
