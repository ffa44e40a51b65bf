package grana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeLedger writes the ledger as a single JSON array, newest
// transaction first, one object per line for readable diffs.
func EncodeLedger(w io.Writer, l *Ledger) error {
	transactions := l.Slice()
	if len(transactions) == 0 {
		_, err := w.Write([]byte("[]"))
		return err
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, t := range transactions {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("cannot encode transaction %q: %w", t.ID, err)
		}
		buf.WriteString("  ")
		buf.Write(data)
		if i < len(transactions)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	_, err := w.Write(buf.Bytes())
	return err
}

// DecodeLedger reads a JSON array of transactions. An empty or
// whitespace-only input decodes to an empty ledger. The stored order is
// preserved as-is (it is written newest first).
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewLedger(), nil
	}
	var transactions []Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("cannot decode ledger: %w", err)
	}
	return &Ledger{transactions: transactions}, nil
}
