package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"belanja/internal/core"
	"belanja/internal/services"
)

type saveRecordRequest struct {
	ID         int64           `json:"id"`
	Date       string          `json:"date"`
	Name       string          `json:"name"`
	TotalPrice json.RawMessage `json:"totalPrice"`
	Quantity   json.RawMessage `json:"quantity"`
	Unit       string          `json:"unit"`
}

type savedRecordResponse struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Name       string `json:"name"`
	TotalPrice int64  `json:"totalPrice"`
	Quantity   int64  `json:"quantity"`
	Unit       string `json:"unit,omitempty"`
	UnitPrice  *int64 `json:"unitPrice,omitempty"`
}

// handleRecords serves the grouped, paginated list view and accepts
// record saves.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.list.View())
	case http.MethodPost:
		s.handleSaveRecord(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleSaveRecord(w http.ResponseWriter, r *http.Request) {
	var req saveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rec := core.Record{
		ID:         req.ID,
		Date:       strings.TrimSpace(req.Date),
		Name:       strings.TrimSpace(req.Name),
		TotalPrice: parseAmount(req.TotalPrice),
		Quantity:   parseAmount(req.Quantity),
		Unit:       strings.TrimSpace(req.Unit),
	}

	saved, err := s.list.Save(r.Context(), rec)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save record",
			"error", err, "id", rec.ID, "date", rec.Date, "name", rec.Name)
		writeError(w, err)
		return
	}

	resp := savedRecordResponse{
		ID:         saved.ID,
		Date:       saved.Date,
		Name:       saved.Name,
		TotalPrice: saved.TotalPrice,
		Quantity:   saved.Quantity,
		Unit:       saved.Unit,
	}
	if up, ok := saved.UnitPrice(); ok {
		resp.UnitPrice = &up
	}
	status := http.StatusCreated
	if req.ID != 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

// handleRefresh reloads the collection from storage. The UI calls this
// on each return to the list view.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	s.list.Refresh(r.Context())
	writeJSON(w, http.StatusOK, s.list.View())
}

// handleMore advances pagination by one page and returns the grown view.
func (s *Server) handleMore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	s.list.Advance()
	writeJSON(w, http.StatusOK, s.list.View())
}

type filterRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// handleFilter sets or clears the date-range filter; either change
// rewinds pagination.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		var req filterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		from, err := parseDateParam(req.From)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid from date, want YYYY-MM-DD"})
			return
		}
		to, err := parseDateParam(req.To)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid to date, want YYYY-MM-DD"})
			return
		}
		s.list.SetRange(core.DateRange{From: from, To: to})
		writeJSON(w, http.StatusOK, s.list.View())
	case http.MethodDelete:
		s.list.ClearRange()
		writeJSON(w, http.StatusOK, s.list.View())
	default:
		methodNotAllowed(w, "PUT, DELETE")
	}
}

type selectionRequest struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

func (s *Server) decodeSelection(w http.ResponseWriter, r *http.Request) (selectionRequest, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return selectionRequest{}, false
	}
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return selectionRequest{}, false
	}
	return req, true
}

func (s *Server) handleSelectionEnter(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSelection(w, r)
	if !ok {
		return
	}
	s.list.EnterSelection(req.ID)
	writeJSON(w, http.StatusOK, s.list.View())
}

func (s *Server) handleSelectionToggle(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSelection(w, r)
	if !ok {
		return
	}
	s.list.ToggleSelection(req.ID)
	writeJSON(w, http.StatusOK, s.list.View())
}

func (s *Server) handleSelectionToggleGroup(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSelection(w, r)
	if !ok {
		return
	}
	s.list.ToggleDateGroup(req.Date)
	writeJSON(w, http.StatusOK, s.list.View())
}

func (s *Server) handleSelectionExit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	s.list.ExitSelection()
	writeJSON(w, http.StatusOK, s.list.View())
}

type bulkDeleteResponse struct {
	Removed int               `json:"removed"`
	List    services.ListView `json:"list"`
}

// handleSelectionDelete bulk-deletes the selected records.
func (s *Server) handleSelectionDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, "DELETE")
		return
	}
	removed, err := s.list.DeleteSelected(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Bulk delete failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkDeleteResponse{Removed: removed, List: s.list.View()})
}
