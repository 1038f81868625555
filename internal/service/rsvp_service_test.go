package service

import "testing"

func TestTrimOptional(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		input *string
		want  *string
	}{
		{"nil stays nil", nil, nil},
		{"blank collapses to nil", str("   "), nil},
		{"empty collapses to nil", str(""), nil},
		{"value is trimmed", str("  Carlos  "), str("Carlos")},
		{"clean value unchanged", str("Carlos"), str("Carlos")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimOptional(tt.input)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("expected nil, got %q", *got)
			case tt.want != nil && got == nil:
				t.Errorf("expected %q, got nil", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("expected %q, got %q", *tt.want, *got)
			}
		})
	}
}
