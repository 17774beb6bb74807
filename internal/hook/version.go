package hook

import "strings"

// ExtractVersion pulls the dotted version number that follows lookbehind in
// a tool's `--version` output. Returns "" when the lookbehind is absent.
func ExtractVersion(output, lookbehind string) string {
	idx := strings.Index(output, lookbehind)
	if idx < 0 {
		return ""
	}
	rest := output[idx+len(lookbehind):]
	end := 0
	for end < len(rest) && (isDigit(rest[end]) || rest[end] == '.') {
		end++
	}
	return strings.Trim(rest[:end], ".")
}

// VersionMatches reports whether expected is a dotted prefix of actual, so
// --version=14 accepts 14.0.6 but --version=14.0.6.1 rejects it.
func VersionMatches(expected, actual string) bool {
	want := strings.Split(expected, ".")
	have := strings.Split(actual, ".")
	if len(want) > len(have) {
		return false
	}
	for i := range want {
		if want[i] != have[i] {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
