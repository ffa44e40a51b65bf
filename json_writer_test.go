package grana

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	tests := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "append keeps order",
			build: func(w *jsonObjectWriter) {
				w.Append("b", 2).Append("a", 1)
			},
			want: `{"b":2,"a":1}`,
		},
		{
			name: "optional skips zero values",
			build: func(w *jsonObjectWriter) {
				w.Append("id", "x").Optional("category", "").Optional("note", "hi")
			},
			want: `{"id":"x","note":"hi"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w jsonObjectWriter
			tt.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJsonObjectWriterError(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {}) // functions cannot marshal
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() on a failed writer succeeded, want error")
	}
}
