package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no markup",
			in:   "Define entropy.",
			want: "Define entropy.",
		},
		{
			name: "inline math delimiters stripped",
			in:   "Solve $x^2 + 2x + 1 = 0$ for x.",
			want: "Solve x^2 + 2x + 1 = 0 for x.",
		},
		{
			name: "block math keeps separation",
			in:   "Evaluate$$\\frac{a+b}{c}$$fully.",
			want: "Evaluate (a+b)/(c) fully.",
		},
		{
			name: "sqrt and braced superscript",
			in:   "Show $\\sqrt{2}$ is irrational and simplify $e^{2x}$.",
			want: "Show sqrt(2) is irrational and simplify e^2x.",
		},
		{
			name: "text wrapper and symbol commands",
			in:   "$\\text{area} = \\pi r^2$ where $r \\geq 0$",
			want: "area = pi r^2 where r >= 0",
		},
		{
			name: "unknown commands dropped",
			in:   "$\\left( \\Gamma \\right)$ stays readable",
			want: "( ) stays readable",
		},
		{
			name: "whitespace normalized",
			in:   "first   line\n\n   second\tline  ",
			want: "first line\nsecond line",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
