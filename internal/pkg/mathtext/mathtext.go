// Package mathtext reduces question text containing inline ($...$) and block
// ($$...$$) math markup to a plain-text form suitable for text exports.
package mathtext

import (
	"regexp"
	"strings"
)

var (
	blockMathRe  = regexp.MustCompile(`\$\$([\s\S]*?)\$\$`)
	inlineMathRe = regexp.MustCompile(`\$([^$]*)\$`)

	fracRe    = regexp.MustCompile(`\\[dt]?frac\{([^{}]*)\}\{([^{}]*)\}`)
	sqrtRe    = regexp.MustCompile(`\\sqrt\{([^{}]*)\}`)
	wrapperRe = regexp.MustCompile(`\\(?:text|textbf|textit|mathrm|mathbf|mathit)\{([^{}]*)\}`)
	supSubRe  = regexp.MustCompile(`([\^_])\{([^{}]*)\}`)
	commandRe = regexp.MustCompile(`\\[a-zA-Z]+`)
	spaceRe   = regexp.MustCompile(`[ \t]+`)
)

// symbol commands that read better as a literal replacement than as nothing
var symbolReplacer = strings.NewReplacer(
	`\times`, "x",
	`\cdot`, "*",
	`\pm`, "+/-",
	`\leq`, "<=",
	`\geq`, ">=",
	`\neq`, "!=",
	`\infty`, "infinity",
	`\pi`, "pi",
	`\theta`, "theta",
	`\alpha`, "alpha",
	`\beta`, "beta",
	`\lambda`, "lambda",
	`\mu`, "mu",
	`\sigma`, "sigma",
	`\omega`, "omega",
)

// PlainText strips math delimiters and reduces common markup commands to a
// readable plain-text approximation, then normalizes whitespace.
func PlainText(s string) string {
	if s == "" {
		return ""
	}

	// Drop delimiters, keep content. Block math keeps surrounding spaces so
	// it does not fuse with neighboring words.
	s = blockMathRe.ReplaceAllString(s, " $1 ")
	s = inlineMathRe.ReplaceAllString(s, "$1")

	s = symbolReplacer.Replace(s)
	s = fracRe.ReplaceAllString(s, "($1)/($2)")
	s = sqrtRe.ReplaceAllString(s, "sqrt($1)")
	s = wrapperRe.ReplaceAllString(s, "$1")
	s = supSubRe.ReplaceAllString(s, "$1$2")

	// Anything still written as a backslash command carries no plain-text
	// meaning at this point.
	s = commandRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")

	return normalizeWhitespace(s)
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
