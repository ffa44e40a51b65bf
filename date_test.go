package grana

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "padded", input: "05/01/2024", want: NewDate(2024, time.January, 5)},
		{name: "unpadded", input: "5/1/2024", want: NewDate(2024, time.January, 5)},
		{name: "end of year", input: "31/12/2023", want: NewDate(2023, time.December, 31)},
		{name: "not a date", input: "hello", wantErr: true},
		{name: "iso format", input: "2024-01-05", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateStringNormalizes(t *testing.T) {
	// The same day written padded or not must print identically.
	a := MustParseDay("5/1/2024")
	b := MustParseDay("05/01/2024")
	if a.String() != b.String() {
		t.Errorf("String() differs: %q vs %q", a.String(), b.String())
	}
	if got, want := a.String(), "05/01/2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	// Without normalization "10/01/2024" would sort before "9/01/2024"
	// as text. Dates compare chronologically.
	earlier := MustParseDay("9/1/2024")
	later := MustParseDay("10/01/2024")
	if !earlier.Before(later) {
		t.Errorf("%v should be before %v", earlier, later)
	}
	if !later.After(earlier) {
		t.Errorf("%v should be after %v", later, earlier)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	day := NewDate(2024, time.March, 7)
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `"07/03/2024"`; got != want {
		t.Fatalf("Marshal = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != day {
		t.Errorf("round trip = %v, want %v", back, day)
	}
}
