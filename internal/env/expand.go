package env

import (
	"os"
	"strings"
	"unicode"
)

const prefix = "${env."

// Lookup resolves variable names; tests may replace it.
var Lookup = os.Getenv

// Expand replaces every ${env.KEY} in value with the KEY environment variable
// (empty when unset). KEY may hold letters, digits and '_'; any other
// occurrence of the prefix, or one without a closing brace, is kept verbatim.
func Expand(value string) string {
	if !strings.Contains(value, prefix) {
		return value
	}
	var b strings.Builder
	for {
		idx := strings.Index(value, prefix)
		if idx < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:idx])
		rest := value[idx+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[idx:])
			return b.String()
		}
		key := rest[:end]
		if !isKey(key) {
			b.WriteString(prefix)
			value = rest
			continue
		}
		b.WriteString(Lookup(key))
		value = rest[end+1:]
	}
}

func isKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
