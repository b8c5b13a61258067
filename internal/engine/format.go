package engine

import (
	"strconv"
	"strings"
)

// Render substitutes %val, %min and %max in template and collapses %% to a
// literal percent sign. Any other %-sequence passes through verbatim.
//
// Substitution is a single pass over the original template, so a substituted
// value can never itself be picked up as a placeholder.
func Render(template string, min, max, val uint32) string {
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] != '%' {
			b.WriteByte(template[i])
			i++
			continue
		}
		rest := template[i+1:]
		switch {
		case strings.HasPrefix(rest, "%"):
			b.WriteByte('%')
			i += 2
		case strings.HasPrefix(rest, "val"):
			b.WriteString(strconv.FormatUint(uint64(val), 10))
			i += len("%val")
		case strings.HasPrefix(rest, "min"):
			b.WriteString(strconv.FormatUint(uint64(min), 10))
			i += len("%min")
		case strings.HasPrefix(rest, "max"):
			b.WriteString(strconv.FormatUint(uint64(max), 10))
			i += len("%max")
		default:
			b.WriteByte('%')
			i++
		}
	}
	return b.String()
}
