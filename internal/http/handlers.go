package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"saldo/internal/core"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today string
	}{
		Today: time.Now().Format("2006-01-02"),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	// The raw field values go in as-is; the gate only checks presence and
	// the type enum, never amount or date format.
	typ, _ := core.ParseType(r.Form.Get("type"))
	tx := core.Transaction{
		Amount:      sanitizeInput(r.Form.Get("amount")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Description: sanitizeInput(r.Form.Get("description")),
		Date:        sanitizeInput(r.Form.Get("date")),
		Type:        typ,
	}
	if err := tx.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid entry: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	stored, err := s.store.Add(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction add error", "error", err, "category", tx.Category, "amount", tx.Amount)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not save the transaction</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"transaction:created": {"id": `+strconv.FormatInt(stored.ID, 10)+`}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Recorded ` + template.HTMLEscapeString(string(stored.Type)) +
		` of ` + template.HTMLEscapeString(core.FormatAmount(core.ParseAmount(stored.Amount))) +
		` (` + template.HTMLEscapeString(stored.Category) + `)</div>`))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	id, err := strconv.ParseInt(r.Form.Get("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid transaction id</div>`))
		return
	}

	// The confirmation dialog already happened client-side; removing an
	// unknown id is a silent no-op by contract.
	if err := s.store.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Transaction remove error", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not delete the transaction</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"transaction:deleted": {"id": `+strconv.FormatInt(id, 10)+`}}`)
	w.WriteHeader(http.StatusOK)
}

// handleTransactionList renders the transaction list partial, newest date
// first.
func (s *Server) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	type row struct {
		ID          int64
		Date        string
		Category    string
		Description string
		Amount      string
		Type        string
	}
	var data struct {
		Rows []row
	}
	for _, t := range s.store.List() {
		data.Rows = append(data.Rows, row{
			ID:          t.ID,
			Date:        t.Date,
			Category:    t.Category,
			Description: t.Description,
			Amount:      core.FormatAmount(core.ParseAmount(t.Amount)),
			Type:        string(t.Type),
		})
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="transactions"><div class="placeholder">` +
			strconv.Itoa(len(data.Rows)) + ` transactions</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "transactions.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "transactions.html")
		_, _ = w.Write([]byte(`<section id="transactions"><div class="placeholder">Error rendering transactions</div></section>`))
	}
}

// handleSummary renders the income/expense/balance partial. The summary is
// recomputed from the full collection on every request.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	sum := s.store.Summary()
	data := struct {
		Income          string
		Expense         string
		Balance         string
		BalanceNegative bool
	}{
		Income:          core.FormatAmount(sum.Income),
		Expense:         core.FormatAmount(sum.Expense),
		Balance:         core.FormatAmount(sum.Balance),
		BalanceNegative: sum.Balance < 0,
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="summary"><div class="placeholder">Balance: ` + data.Balance + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "summary.html")
		_, _ = w.Write([]byte(`<section id="summary"><div class="placeholder">Error rendering summary</div></section>`))
	}
}
