package grana

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Kind discriminates between the two directions a transaction can take.
type Kind string

const (
	// Income credits the balance.
	Income Kind = "income"
	// Expense debits the balance.
	Expense Kind = "expense"
)

// ParseKind parses a string into a Kind. The original app's Portuguese
// labels are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "receita":
		return Income, nil
	case "expense", "despesa":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

func (k Kind) String() string { return string(k) }

// DefaultCategory is the sentinel used when no category is entered.
const DefaultCategory = "Outros"

// Transaction is a single, immutable ledger record. It is created only
// through Draft validation, never mutated in place, and destroyed only
// by an explicit remove-by-id.
type Transaction struct {
	ID          string    // opaque unique id, assigned at creation
	Kind        Kind      // income or expense
	Description string    // non-empty
	Amount      Amount    // always > 0; direction is carried by Kind
	Date        string    // dd/mm/yyyy as entered, validated at creation
	Category    string    // defaults to DefaultCategory
	CreatedAt   time.Time // set at creation, non-decreasing with id order
}

// Day returns the transaction date as a comparable calendar value.
func (t Transaction) Day() (Date, error) { return ParseDay(t.Date) }

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Kind == o.Kind &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Date == o.Date &&
		t.Category == o.Category &&
		t.CreatedAt.Equal(o.CreatedAt)
}

// MarshalJSON implements the json.Marshaler interface with a stable key
// order, so that persisted blobs are canonical and diffable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("kind", t.Kind)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("date", t.Date)
	// The category is always set by validation, but a hand-built record
	// without one is stored without the key rather than with "".
	w.Optional("category", t.Category)
	w.Append("createdAt", t.CreatedAt.UTC().Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string `json:"id"`
		Kind        Kind   `json:"kind"`
		Description string `json:"description"`
		Amount      Amount `json:"amount"`
		Date        string `json:"date"`
		Category    string `json:"category"`
		CreatedAt   string `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.Kind = temp.Kind
	t.Description = temp.Description
	t.Amount = temp.Amount
	t.Date = temp.Date
	t.Category = temp.Category
	if temp.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339Nano, temp.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid createdAt %q: %w", temp.CreatedAt, err)
		}
		t.CreatedAt = created
	}
	return nil
}

// Draft holds user-entered, not-yet-validated transaction input.
type Draft struct {
	Kind        Kind
	Description string
	Amount      string // raw user input, '.' or ',' decimal separator
	Date        string // dd/mm/yyyy
	Category    string // optional
}

// Validate checks the draft and returns the transaction it describes,
// without an id or creation timestamp (the store assigns those). A
// *ValidationError is returned before anything can be persisted.
func (d Draft) Validate() (Transaction, error) {
	if _, err := ParseKind(string(d.Kind)); err != nil {
		return Transaction{}, &ValidationError{Field: "kind", Reason: err.Error()}
	}
	if strings.TrimSpace(d.Description) == "" {
		return Transaction{}, errMissingField("description")
	}
	if strings.TrimSpace(d.Amount) == "" {
		return Transaction{}, errMissingField("amount")
	}
	if strings.TrimSpace(d.Date) == "" {
		return Transaction{}, errMissingField("date")
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil || !amount.IsPositive() {
		return Transaction{}, errInvalidAmount(d.Amount)
	}

	day, err := ParseDay(d.Date)
	if err != nil {
		return Transaction{}, errInvalidDate(d.Date)
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = DefaultCategory
	}

	return Transaction{
		Kind:        d.Kind,
		Description: strings.TrimSpace(d.Description),
		Amount:      amount,
		Date:        day.String(), // normalized zero-padded form
		Category:    category,
	}, nil
}
