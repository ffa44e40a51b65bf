package grana

import (
	"errors"
	"reflect"
	"testing"
)

func TestTotals(t *testing.T) {
	l := NewLedger(
		tx("3", Expense, 40, "05/01/2024", "Outros"),
		tx("2", Income, 60, "03/01/2024", "Outros"),
		tx("1", Income, 50, "01/01/2024", "Outros"),
	)
	s := Totals(l)
	if !s.Income.Equal(A(110)) {
		t.Errorf("Income = %v, want 110", s.Income)
	}
	if !s.Expense.Equal(A(40)) {
		t.Errorf("Expense = %v, want 40", s.Expense)
	}
	if !s.Balance.Equal(A(70)) {
		t.Errorf("Balance = %v, want 70", s.Balance)
	}
}

func TestTotalsEmpty(t *testing.T) {
	s := Totals(NewLedger())
	if !s.Income.IsZero() || !s.Expense.IsZero() || !s.Balance.IsZero() {
		t.Errorf("Totals(empty) = %+v, want all zero", s)
	}
}

func TestTotalsNegativeBalance(t *testing.T) {
	l := NewLedger(
		tx("2", Expense, 70, "02/01/2024", "Outros"),
		tx("1", Income, 50, "01/01/2024", "Outros"),
	)
	if s := Totals(l); !s.Balance.Equal(A(-20)) {
		t.Errorf("Balance = %v, want -20", s.Balance)
	}
}

func TestTimeSeries(t *testing.T) {
	// Unpadded and padded spellings of the same day share one bucket,
	// and days sort chronologically rather than textually.
	l := NewLedger(
		tx("4", Expense, 20, "5/1/2024", "Outros"),
		tx("3", Income, 30, "05/01/2024", "Outros"),
		tx("2", Income, 50, "1/1/2024", "Outros"),
		tx("1", Expense, 10, "01/01/2024", "Outros"),
	)
	got, err := TimeSeries(l)
	if err != nil {
		t.Fatal(err)
	}
	want := Series{
		Dates:   []string{"01/01/2024", "05/01/2024"},
		Income:  []Amount{A(50), A(30)},
		Expense: []Amount{A(10), A(20)},
	}
	if !reflect.DeepEqual(got.Dates, want.Dates) {
		t.Errorf("Dates = %v, want %v", got.Dates, want.Dates)
	}
	for i := range want.Dates {
		if !got.Income[i].Equal(want.Income[i]) {
			t.Errorf("Income[%d] = %v, want %v", i, got.Income[i], want.Income[i])
		}
		if !got.Expense[i].Equal(want.Expense[i]) {
			t.Errorf("Expense[%d] = %v, want %v", i, got.Expense[i], want.Expense[i])
		}
	}
}

func TestTimeSeriesOneSidedDays(t *testing.T) {
	l := NewLedger(
		tx("2", Expense, 20, "05/01/2024", "Outros"),
		tx("1", Income, 50, "01/01/2024", "Outros"),
	)
	got, err := TimeSeries(l)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Income[1].IsZero() {
		t.Errorf("Income on expense-only day = %v, want zero", got.Income[1])
	}
	if !got.Expense[0].IsZero() {
		t.Errorf("Expense on income-only day = %v, want zero", got.Expense[0])
	}
}

func TestTimeSeriesBadDate(t *testing.T) {
	l := NewLedger(tx("1", Income, 50, "not a date", "Outros"))
	_, err := TimeSeries(l)
	var derr *DateParseError
	if !errors.As(err, &derr) {
		t.Fatalf("TimeSeries() error = %v, want *DateParseError", err)
	}
	if derr.Input != "not a date" {
		t.Errorf("Input = %q, want %q", derr.Input, "not a date")
	}
}
