package norm

import "strings"

const (
	markerWord = "Norme"

	// noChangesLine is printed by the norminette client's package manager
	// and carries nothing about the checked files.
	noChangesLine = "Found no changes, using resolution from the lockfile"
)

func isMarker(line string) bool {
	return strings.Contains(line, markerWord)
}

// CutEmpty drops every line that carries no finding: blank lines, package
// manager noise and the markers of files that were clean. A marker is clean
// when the next remaining line is another marker, or when nothing follows it.
// The input is not modified. CutEmpty(CutEmpty(x)) equals CutEmpty(x).
func CutEmpty(lines []string) []string {
	candidates := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" || strings.Contains(line, noChangesLine) {
			continue
		}
		candidates = append(candidates, line)
	}

	kept := make([]string, 0, len(candidates))
	for i, line := range candidates {
		// the last candidate has no successor and is handled below
		if i+1 < len(candidates) && isMarker(line) && isMarker(candidates[i+1]) {
			continue
		}
		kept = append(kept, line)
	}

	// kept never holds blank lines or two adjacent markers, so one trim is enough
	if n := len(kept); n > 0 && isMarker(kept[n-1]) {
		kept = kept[:n-1]
	}

	return kept
}
