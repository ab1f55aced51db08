package ezx

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			"allocation",
			&AllocationError{Width: 0, Height: 10},
			[]string{"ezx:", "0x10"},
		},
		{
			"range",
			&RangeError{X: 50, Y: 50, Width: 100, Height: 100, BoundsWidth: 100, BoundsHeight: 100},
			[]string{"ezx:", "(50,50 100x100)", "100x100 bounds"},
		},
		{
			"decode",
			&DecodeError{Kind: 0xBEEF},
			[]string{"ezx:", "0xBEEF"},
		},
		{
			"invalid state",
			&InvalidStateError{Op: "batch end", Reason: "no batch recording"},
			[]string{"ezx:", "batch end", "no batch recording"},
		},
		{
			"encoding",
			&EncodingError{Value: 0xFF000000},
			[]string{"ezx:", "0xFF000000"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("%q does not contain %q", msg, want)
				}
			}
		})
	}
}
