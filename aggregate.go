package grana

import "sort"

// Summary holds the three headline figures of a ledger.
type Summary struct {
	Income  Amount
	Expense Amount
	Balance Amount // Income - Expense, may be negative
}

// Totals scans the ledger and computes income, expense and balance.
// Totals are always derived from the full list, never cached, so they
// cannot drift from the ledger contents.
func Totals(l *Ledger) Summary {
	var s Summary
	for _, t := range l.Transactions() {
		switch t.Kind {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expense = s.Expense.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// Series holds per-day income and expense totals in chronological
// order. The three slices are parallel and always the same length.
type Series struct {
	Dates   []string // normalized dd/mm/yyyy labels
	Income  []Amount
	Expense []Amount
}

// TimeSeries groups the ledger by calendar day and returns the daily
// income and expense totals, oldest day first. Days with activity of
// only one kind still get an entry, with a zero for the other kind.
//
// A date that cannot be parsed aborts the whole series with a
// *DateParseError rather than silently misplacing the day.
func TimeSeries(l *Ledger) (Series, error) {
	type bucket struct {
		day     Date
		income  Amount
		expense Amount
	}
	buckets := make(map[string]*bucket)
	for _, t := range l.Transactions() {
		day, err := t.Day()
		if err != nil {
			return Series{}, &DateParseError{Input: t.Date, Err: err}
		}
		key := day.String()
		b := buckets[key]
		if b == nil {
			b = &bucket{day: day}
			buckets[key] = b
		}
		switch t.Kind {
		case Income:
			b.income = b.income.Add(t.Amount)
		case Expense:
			b.expense = b.expense.Add(t.Amount)
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].day.Before(ordered[j].day)
	})

	var s Series
	for _, b := range ordered {
		s.Dates = append(s.Dates, b.day.String())
		s.Income = append(s.Income, b.income)
		s.Expense = append(s.Expense, b.expense)
	}
	return s, nil
}
