package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
)

type HTTPHandler struct {
	registerService *service.RegisterService
}

type AmountsHTTPRequest struct {
	RequestID string `json:"request_id"`
	Amounts   []int  `json:"amounts"`
}

type ChangeHTTPRequest struct {
	RequestID string `json:"request_id"`
	Target    *int   `json:"target"`
}

type RegisterHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Total   int    `json:"total"`
	Counts  []int  `json:"counts,omitempty"`
	Display string `json:"display,omitempty"`
	Change  []int  `json:"change,omitempty"`
}

func NewHTTPHandler(registerService *service.RegisterService) *HTTPHandler {
	return &HTTPHandler{registerService: registerService}
}

// Routes registers every endpoint on mux.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/register", h.Show)
	mux.HandleFunc("/api/deposit", h.Deposit)
	mux.HandleFunc("/api/withdraw", h.Withdraw)
	mux.HandleFunc("/api/change", h.MakeChange)
}

func (h *HTTPHandler) Show(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse(h.registerService.Show(), "ok"))
}

func (h *HTTPHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAmounts(w, r)
	if !ok {
		return
	}

	snap, err := h.registerService.Deposit(r.Context(), req.RequestID, req.Amounts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse(snap, "deposited"))
}

func (h *HTTPHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAmounts(w, r)
	if !ok {
		return
	}

	snap, err := h.registerService.Withdraw(r.Context(), req.RequestID, req.Amounts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse(snap, "withdrawn"))
}

func (h *HTTPHandler) MakeChange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChangeHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, RegisterHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.Target == nil {
		writeJSON(w, http.StatusBadRequest, RegisterHTTPResponse{
			Success: false,
			Message: "missing required fields",
		})
		return
	}

	change, snap, err := h.registerService.MakeChange(r.Context(), req.RequestID, *req.Target)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := snapshotResponse(snap, domain.FormatAmounts(change))
	resp.Change = change
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeAmounts(w http.ResponseWriter, r *http.Request) (AmountsHTTPRequest, bool) {
	var req AmountsHTTPRequest

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, RegisterHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return req, false
	}

	if req.Amounts == nil {
		writeJSON(w, http.StatusBadRequest, RegisterHTTPResponse{
			Success: false,
			Message: "missing required fields",
		})
		return req, false
	}

	return req, true
}

func snapshotResponse(snap domain.Snapshot, message string) RegisterHTTPResponse {
	return RegisterHTTPResponse{
		Success: true,
		Message: message,
		Total:   snap.Total,
		Counts:  snap.Counts,
		Display: snap.String(),
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, service.ErrDuplicateRequest):
		status = http.StatusConflict
		message = "duplicate request"
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	}

	writeJSON(w, status, RegisterHTTPResponse{
		Success: false,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
