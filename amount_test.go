package grana

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "dot separator", input: "59.90", want: A(59.90)},
		{name: "comma separator", input: "59,90", want: A(59.90)},
		{name: "integer", input: "100", want: A(100)},
		{name: "spaces", input: " 12.5 ", want: A(12.5)},
		{name: "negative", input: "-3.14", want: A(-3.14)},
		{name: "letters", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	if got := A(0.1).Add(A(0.2)); !got.Equal(A(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", got)
	}
	if got := A(50).Sub(A(70)); !got.IsNegative() {
		t.Errorf("50 - 70 = %v, want a negative amount", got)
	}
}

func TestAmountDisplay(t *testing.T) {
	if got, want := A(59.90).Display(), "R$59,90"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(A(59.90))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "59.9"; got != want {
		t.Fatalf("Marshal = %s, want %s", got, want)
	}

	// Numbers and quoted strings both decode.
	for _, raw := range []string{`59.9`, `"59.9"`} {
		var a Amount
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			t.Fatalf("Unmarshal(%s): %v", raw, err)
		}
		if !a.Equal(A(59.9)) {
			t.Errorf("Unmarshal(%s) = %v, want 59.9", raw, a)
		}
	}
}
