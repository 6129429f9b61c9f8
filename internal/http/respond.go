package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"hisab/internal/core"
	"hisab/internal/records"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondWriteError maps store and validation failures on the write path:
// missing rows become 404, invalid payloads 422, anything else 500.
func respondWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case isValidationError(err):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Write failed",
			"method", r.Method, "url", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "write failed")
	}
}

func isValidationError(err error) bool {
	for _, v := range []error{
		core.ErrInvalidAmount, core.ErrInvalidDate, core.ErrEmptyName,
		core.ErrEmptyDescription, core.ErrInvalidStatus, core.ErrInvalidType,
		core.ErrInvalidMode, core.ErrMissingProjectRef,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// decodeJSON reads a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// parseAmount accepts a decimal rupee string ("2750.50") and returns paise.
func parseAmount(s string) (core.Money, error) {
	paise, err := core.ParseDecimalToPaise(strings.TrimSpace(s))
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Paise: paise}, nil
}

// parseOptionalDate parses YYYY-MM-DD, empty meaning unset.
func parseOptionalDate(s string) (core.Date, error) {
	if strings.TrimSpace(s) == "" {
		return core.Date{}, nil
	}
	return core.ParseDate(strings.TrimSpace(s))
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// moneyJSON is the wire shape for amounts: raw paise plus the formatted
// display string.
type moneyJSON struct {
	Paise     int64  `json:"paise"`
	Formatted string `json:"formatted"`
}

func money(m core.Money) moneyJSON {
	return moneyJSON{Paise: m.Paise, Formatted: core.FormatINR(m)}
}
