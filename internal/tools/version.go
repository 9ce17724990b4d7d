package tools

import (
	"context"
	"regexp"
	"strings"
	"time"
)

var verRe = regexp.MustCompile(`(?i)\bv?(\d+\.\d+\.\d+(?:[\w\.-]+)?)\b`)

// ProbeVersion asks a reachable tool for its version, best effort. An empty
// result means the tool gave no parseable version within the timeout; the
// caller's installation state is unaffected either way.
func ProbeVersion(probe ToolProbe) string {
	for _, args := range probe.VersionArgs {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		out, err := runCmd(ctx, probe.Command, args...)
		cancel()
		if err != nil || strings.TrimSpace(out) == "" {
			continue
		}
		if v := ParseVersion(out); v != "" {
			return v
		}
		return strings.Split(strings.TrimSpace(out), "\n")[0]
	}
	return ""
}

func ParseVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Take first line
	line := strings.Split(s, "\n")[0]
	if m := verRe.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	// Fallback: try on full string
	if m := verRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	return v
}
