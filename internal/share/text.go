package share

import "strings"

const defaultDigestLimit = 150

// DefaultText assembles a share message without calling the model: header,
// a short digest of the passage, then meditation lines with the numbered
// items filtered out. Used as the instant fallback before (or instead of)
// the AI summary.
func DefaultText(snap Snapshot) string {
	var parts []string

	parts = append(parts, "<QT 나눔>", snap.Reference, "")

	parts = append(parts, "<말씀요약>")
	if digest := passageDigest(snap.Text); digest != "" {
		parts = append(parts, digest)
	}
	parts = append(parts, "")

	if lines := meditationLines(snap); len(lines) > 0 {
		parts = append(parts, strings.Join(lines, "\n"))
	}

	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// passageDigest joins the first two non-empty lines, capped by rune count
// so multi-byte Korean text is never split mid-character.
func passageDigest(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
		if len(lines) == 2 {
			break
		}
	}
	if len(lines) == 0 {
		return ""
	}

	digest := strings.Join(lines, " ")
	runes := []rune(digest)
	if len(runes) > defaultDigestLimit {
		return string(runes[:defaultDigestLimit]) + "..."
	}
	return digest
}

// meditationLines collects up to three content lines across the categories,
// skipping enumerated items so the share text reads as prose.
func meditationLines(snap Snapshot) []string {
	all := strings.Join([]string{snap.Observation, snap.Interpretation, snap.Application}, "\n")

	var lines []string
	for _, line := range strings.Split(all, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isEnumerated(line) {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 3 {
			break
		}
	}
	return lines
}

func isEnumerated(line string) bool {
	for _, marker := range []string{"1.", "2.", "3.", "1)", "2)", "3)"} {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
