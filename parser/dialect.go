package parser

import (
	"strings"
	"unicode"
)

// Dialect selects the surface grammar a string is parsed under, per
// spec §4.3.
type Dialect int

const (
	Auto Dialect = iota
	Simple
	LaTeX
	Wolfram
)

// Detect implements spec §4.3's auto-detection rule: a backslash
// followed by a letter selects LaTeX; a '[' preceded by a capitalized
// identifier selects Wolfram; otherwise Simple.
func Detect(input string) Dialect {
	runes := []rune(input)
	for i, r := range runes {
		if r == '\\' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			return LaTeX
		}
	}
	for i, r := range runes {
		if r != '[' {
			continue
		}
		j := i - 1
		for j >= 0 && isIdentRune(runes[j]) {
			j--
		}
		if j+1 < i && unicode.IsUpper(runes[j+1]) {
			return Wolfram
		}
	}
	return Simple
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// latexFunctionNames maps LaTeX command names to elementary function
// names recognized by core.FunctionArity.
var latexFunctionNames = map[string]string{
	"\\sin": "sin", "\\cos": "cos", "\\tan": "tan",
	"\\arcsin": "asin", "\\arccos": "acos", "\\arctan": "atan",
	"\\sinh": "sinh", "\\cosh": "cosh", "\\tanh": "tanh",
	"\\exp": "exp", "\\log": "log", "\\ln": "log",
}

// wolframHeadNames maps capitalized Wolfram head names to the
// elementary function / operator names this kernel understands.
var wolframHeadNames = map[string]string{
	"Sin": "sin", "Cos": "cos", "Tan": "tan",
	"ArcSin": "asin", "ArcCos": "acos", "ArcTan": "atan",
	"Sinh": "sinh", "Cosh": "cosh", "Tanh": "tanh",
	"Exp": "exp", "Log": "log", "Sqrt": "sqrt", "Abs": "abs",
	"Factorial": "factorial", "Gamma": "gamma", "Binomial": "binomial",
}

func lowerFunctionName(name string) (string, bool) {
	n := strings.ToLower(name)
	_, known := functionArityLookup(n)
	return n, known
}
