package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"finance-toolkit/domain"
	"finance-toolkit/service"
)

type CalculateHandler struct {
	calculator *service.Calculator
}

func NewCalculateHandler(calculator *service.Calculator) *CalculateHandler {
	return &CalculateHandler{calculator: calculator}
}

func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("invalid calculate body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.calculator.Evaluate(input)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, service.ErrUnknownTool) && !errors.Is(err, service.ErrNonFiniteResult) {
			status = http.StatusInternalServerError
		}
		hlog.FromRequest(r).Info().Err(err).Str("tool", string(input.Tool)).Msg("calculation rejected")
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, r, result)
}

type fieldDescriptor struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Default float64  `json:"default"`
	Step    float64  `json:"step,omitempty"`
	Money   bool     `json:"money,omitempty"`
}

type toolDescriptor struct {
	Key    domain.ToolKey    `json:"key"`
	Label  domain.ToolLabel  `json:"label"`
	Fields []fieldDescriptor `json:"fields,omitempty"`
}

type toolsResponse struct {
	Tools      []toolDescriptor `json:"tools"`
	Currencies []string         `json:"currencies"`
}

// ListTools describes every view in sidebar order, including Home, with the
// input declarations of each calculator.
func (h *CalculateHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var resp toolsResponse
	for _, entry := range domain.Tools() {
		d := toolDescriptor{Key: entry.Key, Label: entry.Label}
		if tool, ok := h.calculator.Tool(entry.Key); ok {
			for _, f := range tool.Fields {
				fd := fieldDescriptor{
					Name:    f.Name,
					Label:   f.Label,
					Default: f.Default,
					Step:    f.Step,
					Money:   f.Money,
				}
				if f.Bounded {
					lo := f.Min
					fd.Min = &lo
					if !f.NoMax {
						hi := f.Max
						fd.Max = &hi
					}
				}
				d.Fields = append(d.Fields, fd)
			}
		}
		resp.Tools = append(resp.Tools, d)
	}
	for _, c := range domain.Currencies() {
		resp.Currencies = append(resp.Currencies, c.Code)
	}

	writeJSON(w, r, resp)
}

// writeJSON encodes into a buffer first so an encoding failure can still
// produce a clean 500.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("failed to write response")
	}
}
