package grana

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeLedger(t *testing.T) {
	l := NewLedger(
		Transaction{
			ID: "b", Kind: Expense, Description: "mercado", Amount: A(59.90),
			Date: "05/01/2024", Category: "Alimentação",
			CreatedAt: time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC),
		},
		Transaction{
			ID: "a", Kind: Income, Description: "salário", Amount: A(3500),
			Date: "01/01/2024", Category: "Outros",
			CreatedAt: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
		},
	)

	var sb strings.Builder
	if err := EncodeLedger(&sb, l); err != nil {
		t.Fatal(err)
	}

	back, err := DecodeLedger(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", back.Len())
	}
	// Stored order is preserved, newest first.
	want := l.Slice()
	for i, got := range back.Slice() {
		if !got.Equal(want[i]) {
			t.Errorf("transaction %d = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestDecodeLedgerEmpty(t *testing.T) {
	for _, input := range []string{"", "  \n\t", "[]"} {
		l, err := DecodeLedger(strings.NewReader(input))
		if err != nil {
			t.Fatalf("DecodeLedger(%q): %v", input, err)
		}
		if l.Len() != 0 {
			t.Errorf("DecodeLedger(%q).Len() = %d, want 0", input, l.Len())
		}
	}
}

func TestDecodeLedgerMalformed(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("{not json")); err == nil {
		t.Error("DecodeLedger on garbage succeeded, want error")
	}
}

func TestEncodeLedgerEmpty(t *testing.T) {
	var sb strings.Builder
	if err := EncodeLedger(&sb, NewLedger()); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "[]" {
		t.Errorf("EncodeLedger(empty) = %q, want %q", sb.String(), "[]")
	}
}
