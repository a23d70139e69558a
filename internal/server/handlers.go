package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adikari/dailydesk/internal/service"
)

type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type weatherResponse struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Wind        string `json:"wind"`
	Estimated   bool   `json:"estimated,omitempty"`
	Suggestion  string `json:"suggestion,omitempty"`
}

type conversionResponse struct {
	Amount float64 `json:"amount"`
	Target string  `json:"target"`
	Rate   float64 `json:"rate"`
	Result string  `json:"result"`
}

type quoteResponse struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeError(w, http.StatusBadRequest, "missing city parameter")
		return
	}
	reading, err := s.svcs.Weather.Fetch(r.Context(), city)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Status: "success", Data: weatherResponse{
		City:        reading.City,
		Temperature: reading.Temperature,
		Condition:   reading.Condition,
		Wind:        reading.Wind,
		Estimated:   reading.Estimated,
		Suggestion:  reading.Suggestion,
	}})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	conv, err := s.svcs.Currency.Convert(r.Context(), q.Get("amount"), q.Get("to"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Status: "success", Data: conversionResponse{
		Amount: conv.Amount,
		Target: conv.Target,
		Rate:   conv.Rate,
		Result: conv.Result,
	}})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := s.svcs.Quotes.Random(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Status: "success", Data: quoteResponse{
		Text:   quote.Text,
		Author: quote.Author,
	}})
}

// writeServiceError maps the service error taxonomy onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validation  *service.ValidationError
		unsupported *service.UnsupportedOptionError
		unavailable *service.ServiceUnavailableError
	)
	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unsupported):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &unavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Status: "error", Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
