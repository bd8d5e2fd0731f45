package norm

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/nicenorm/internal/shared"
)

const (
	errorWord   = "Error"
	warningWord = "Warning"
)

var (
	markerPattern        = literal(markerWord)
	errorPattern         = literal(errorWord)
	warningPattern       = literal(warningWord)
	invalidOptionPattern = literal("invalid option")
)

func literal(s string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(s))
}

// colorFirst renders the first match of re in line with style. Later
// matches on the same line are left as they are.
func colorFirst(line string, re *regexp.Regexp, style lipgloss.Style) string {
	loc := re.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + style.Render(line[loc[0]:loc[1]]) + line[loc[1]:]
}

// Format lays out filtered norminette output: a blank line before every file
// section but the first, a tab before each Error and Warning label, and color
// on the first marker, error and warning label of each line.
func Format(palette shared.Palette, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i > 0 {
			line = strings.ReplaceAll(line, markerWord+":", "\n"+markerWord+":")
		}
		line = strings.ReplaceAll(line, errorWord, "\t"+errorWord)
		line = strings.ReplaceAll(line, warningWord, "\t"+warningWord)

		line = colorFirst(line, markerPattern, palette.Marker)
		line = colorFirst(line, errorPattern, palette.Error)
		line = colorFirst(line, warningPattern, palette.Warning)
		out[i] = line
	}
	return out
}
