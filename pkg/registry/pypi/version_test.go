package pypi

import (
	"testing"

	"github.com/pindex-dev/pindex/pkg/errors"
)

func TestPlainVersion(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1.0.0", true},
		{"2.0", true},
		{"1", true},
		{"10.20.30", true},
		{"1.2.3.4", true},

		{"", false},
		{"1.2.0rc1", false},
		{"1.0.0-beta", false},
		{"abc", false},
		{"1.0a1", false},
		{"1_0", false},
		{"v1.0", false},
		{"1.0 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := plainVersion(tt.input); got != tt.want {
				t.Errorf("plainVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectLatest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
		wantErr    bool
	}{
		{
			name:       "mixed plain and noise",
			candidates: []string{"1.0.0", "1.2.0", "1.2.0rc1", "abc", "2.0"},
			want:       "2.0",
		},
		{
			name:       "nothing selectable",
			candidates: []string{"rc1", "beta", ""},
			wantErr:    true,
		},
		{
			name:       "empty input",
			candidates: nil,
			wantErr:    true,
		},
		{
			name:       "original spelling kept",
			candidates: []string{"2.0"},
			want:       "2.0",
		},
		{
			name:       "order does not matter",
			candidates: []string{"2.0", "abc", "1.2.0rc1", "1.2.0", "1.0.0"},
			want:       "2.0",
		},
		{
			name:       "partial beats smaller full",
			candidates: []string{"1.9.9", "1.10"},
			want:       "1.10",
		},
		{
			name:       "four segments dropped",
			candidates: []string{"1.2.3.4", "1.0.0"},
			want:       "1.0.0",
		},
		{
			name:       "only four segments",
			candidates: []string{"1.2.3.4"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectLatest(tt.candidates)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if !errors.Is(err, errors.ErrCodeVersionNotFound) {
					t.Errorf("expected VERSION_NOT_FOUND, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectLatest failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectLatest() = %q, want %q", got, tt.want)
			}
		})
	}
}
