package location

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  DefaultLocation,
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  DefaultLocation,
		},
		{
			name:  "newlines only",
			input: "\n\n",
			want:  DefaultLocation,
		},
		{
			name:  "plain city",
			input: "Portland",
			want:  "Portland",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  Boise, ID  ",
			want:  "Boise, ID",
		},
		{
			name:  "interior whitespace preserved",
			input: "New  York",
			want:  "New  York",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
