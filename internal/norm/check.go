package norm

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/nicenorm/internal/shared"
)

const (
	invalidOptionMarker = "invalid option: "
	inputErrorHeader    = "Input errors returned by norminette:"
)

// CheckInput looks for usage errors reported by norminette. When there are
// any, they are written to w and true is returned; the rest of the pipeline
// must not run.
func CheckInput(w io.Writer, palette shared.Palette, lines []string) bool {
	var errs []string
	for _, line := range lines {
		if strings.Contains(line, invalidOptionMarker) {
			errs = append(errs, line)
		}
	}

	if len(errs) == 0 {
		return false
	}

	_, _ = fmt.Fprintf(w, "%s\n\n", inputErrorHeader)
	for _, line := range errs {
		line = colorFirst(line, invalidOptionPattern, palette.InputError)
		_, _ = fmt.Fprintln(w, strings.ReplaceAll(line, "invalid", "Invalid"))
	}
	return true
}
