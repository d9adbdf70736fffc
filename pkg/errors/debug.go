package errors

import (
	stdErrors "errors"
	"strings"
)

// Dump renders the full wrap chain for log output, one frame per line.
// Never send this to clients; public bodies come from metadataByCode.
func Dump(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	depth := 0
	for err != nil {
		if depth > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- ")
		if typed, ok := err.(*Error); ok {
			sb.WriteString(string(typed.code))
			sb.WriteString(": ")
			sb.WriteString(typed.message)
		} else {
			sb.WriteString(err.Error())
		}
		err = stdErrors.Unwrap(err)
		depth++
	}
	return sb.String()
}
