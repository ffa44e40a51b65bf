// Package grana implements a single-user personal finance ledger.
//
// The ledger is a flat, ordered list of income and expense transactions
// persisted as a single JSON blob in a local key-value store. All
// dashboard figures (totals, balance, per-date series) are derived from
// the current snapshot on demand; nothing is cached or updated
// incrementally.
package grana
