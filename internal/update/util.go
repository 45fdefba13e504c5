package update

import "strings"

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func completionRatio(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(done) / float64(total)
	if ratio > 1 {
		return 1
	}
	return ratio
}
