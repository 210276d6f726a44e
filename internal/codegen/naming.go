package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FunctionName joins the underscore-separated segments of a tool name in
// lower camel case. The first segment is kept as is.
func FunctionName(toolName string) string {
	parts := strings.Split(toolName, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// TypeName joins the underscore-separated segments of a tool name with every
// segment capitalized.
func TypeName(toolName string) string {
	var b strings.Builder
	for _, p := range strings.Split(toolName, "_") {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
