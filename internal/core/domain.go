package core

import (
	"errors"
	"strings"
)

const (
	Income  Type = "income"
	Expense Type = "expense"
)

type (
	// Type discriminates ledger entries. Only income and expense exist.
	Type string

	// Transaction is a single ledger entry. Amount keeps the raw text the
	// user typed and is parsed only when aggregating or rendering.
	Transaction struct {
		ID          int64  `json:"id"`
		Amount      string `json:"amount"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Date        string `json:"date"` // YYYY-MM-DD
		Type        Type   `json:"type"`
	}
)

var (
	ErrEmptyAmount   = errors.New("empty amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyDate     = errors.New("empty date")
	ErrInvalidType   = errors.New("invalid transaction type")
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// ParseType normalizes and parses a raw type value.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Validate is the pre-add gate: amount, category and date must be present
// and the type must be known. Description is optional. Amount and date are
// deliberately not checked for format, only for presence.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Amount) == "" {
		return ErrEmptyAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(t.Date) == "" {
		return ErrEmptyDate
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}
