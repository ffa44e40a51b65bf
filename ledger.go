package grana

import "iter"

// Ledger is the in-memory list of transactions, newest first. The
// ordering invariant is maintained by construction: Append prepends,
// and decoding preserves the stored order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger returns a ledger holding the given transactions, assumed to
// be newest first already.
func NewLedger(transactions ...Transaction) *Ledger {
	return &Ledger{transactions: transactions}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction with the given id, if any.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, t := range l.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Append prepends transactions to the ledger, so that the most recently
// appended comes first. When several are appended at once their relative
// order is preserved.
func (l *Ledger) Append(transactions ...Transaction) {
	l.transactions = append(transactions, l.transactions...)
}

// Remove deletes the transaction with the given id and reports whether
// anything was removed. Removing an unknown id is a no-op.
func (l *Ledger) Remove(id string) bool {
	for i, t := range l.transactions {
		if t.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Slice returns a copy of the ledger's transactions, newest first.
func (l *Ledger) Slice() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// TransactionFilter is a predicate over transactions.
type TransactionFilter func(t Transaction) bool

// AcceptAll accepts any transaction.
func AcceptAll() TransactionFilter { return func(Transaction) bool { return true } }

// ByKind accepts transactions of the given kind.
func ByKind(k Kind) TransactionFilter {
	return func(t Transaction) bool { return t.Kind == k }
}

// ByCategory accepts transactions with the given category.
func ByCategory(category string) TransactionFilter {
	return func(t Transaction) bool { return t.Category == category }
}

// Transactions iterates over transactions matching any of the filters,
// newest first. With no filter, every transaction is yielded.
func (l *Ledger) Transactions(filters ...TransactionFilter) iter.Seq2[int, Transaction] {
	accept := func(t Transaction) bool {
		if len(filters) == 0 {
			return true
		}
		for _, f := range filters {
			if f(t) {
				return true
			}
		}
		return false
	}
	return func(yield func(int, Transaction) bool) {
		for i, t := range l.transactions {
			if !accept(t) {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}
