package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mrivas/bancario/internal/adapter/http/dto"
	"github.com/mrivas/bancario/internal/domain"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Build(ctx context.Context, customerID string, from, to time.Time) (*domain.Statement, error)
}

// StatementHandler handles statement report HTTP requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get builds a statement for a customer over an inclusive date range. The
// range comes from the fechaInicio and fechaFin query parameters in
// yyyy-mm-dd form.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("cliente")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing cliente parameter", "")
		return
	}

	from, err := parseDateQuery(r, "fechaInicio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fechaInicio", err.Error())
		return
	}

	to, err := parseDateQuery(r, "fechaFin")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fechaFin", err.Error())
		return
	}

	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "invalid date range", "fechaFin must not be before fechaInicio")
		return
	}

	statement, err := h.statementUC.Build(r.Context(), customerID, from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}
