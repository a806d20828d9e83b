package secrets

import (
	"regexp"
	"sort"
	"strings"
)

// envLinePattern matches a `key = value` line. Keys are restricted to
// identifier characters; whitespace around the separator is ignored.
var envLinePattern = regexp.MustCompile(`^([A-Za-z0-9_.-]+)\s*=\s*(.*)$`)

// ParseEnv parses dotenv-style text into a key-value mapping.
//
// Blank lines and lines whose first non-space character is '#' are skipped.
// Lines that do not match `key = value` (no separator, or an empty key) are
// silently discarded rather than aborting the parse. A value wrapped in one
// matching pair of double or single quotes has that outer pair stripped and
// the interior kept verbatim; nothing inside is unescaped. Duplicate keys
// resolve last-write-wins.
func ParseEnv(text string) map[string]string {
	vars := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := envLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		vars[match[1]] = unquote(match[2])
	}

	return vars
}

// unquote strips one outer pair of matching quote characters, if present on
// both ends. The interior is returned exactly as written.
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// SerializeEnv renders a mapping back into `key=value` lines, one per entry,
// sorted by key for stable output. Values containing whitespace, commas, or
// semicolons are double-quoted so the result survives loose downstream
// splitting.
func SerializeEnv(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := vars[key]
		if strings.ContainsAny(value, " \t\n,;") {
			value = `"` + value + `"`
		}
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}
