package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNumberedSelect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     int
		want    int
		wantErr bool
	}{
		{"explicit choice", "2\n", 0, 1, false},
		{"enter picks default", "\n", 2, 2, false},
		{"eof picks default", "", 1, 1, false},
		{"choice without newline", "3", 0, 2, false},
		{"out of range", "9\n", 0, 0, true},
		{"not a number", "abc\n", 0, 0, true},
		{"bad default falls back to first", "\n", 7, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewNumbered(strings.NewReader(tt.input), &out)

			got, err := p.Select("Pick a version:", []string{"0.7.10", "0.7.5", "0.7.4"}, tt.def)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got index %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
			if !strings.Contains(out.String(), "Pick a version:") {
				t.Errorf("menu title missing from output:\n%s", out.String())
			}
		})
	}
}

func TestNumberedSelectNoItems(t *testing.T) {
	p := NewNumbered(strings.NewReader("1\n"), &bytes.Buffer{})
	if _, err := p.Select("x", nil, 0); !errors.Is(err, ErrNoChoices) {
		t.Errorf("expected ErrNoChoices, got %v", err)
	}
}

func TestFixed(t *testing.T) {
	got, err := Fixed(1).Select("x", []string{"a", "b"}, 0)
	if err != nil || got != 1 {
		t.Errorf("Fixed(1).Select() = %d, %v", got, err)
	}
	if _, err := Fixed(5).Select("x", []string{"a"}, 0); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := Fixed(0).Select("x", nil, 0); !errors.Is(err, ErrNoChoices) {
		t.Errorf("expected ErrNoChoices, got %v", err)
	}
}
