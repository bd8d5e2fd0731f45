package norm

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Veraticus/nicenorm/internal/shared"
)

func TestCheckInput(t *testing.T) {
	t.Run("no invalid option leaves output alone", func(t *testing.T) {
		var buf bytes.Buffer
		palette := shared.NewPalette(&buf, true)

		if CheckInput(&buf, palette, []string{"Norme: a.c", "Error: invalid indentation", ""}) {
			t.Fatal("Expected no input error")
		}
		if buf.Len() != 0 {
			t.Errorf("Expected nothing written, got %q", buf.String())
		}
	})

	t.Run("reports invalid option without color", func(t *testing.T) {
		var buf bytes.Buffer
		palette := shared.NewPalette(&buf, false)

		if !CheckInput(&buf, palette, []string{"invalid option: --xyz", ""}) {
			t.Fatal("Expected input error")
		}

		want := "Input errors returned by norminette:\n\nInvalid option: --xyz\n"
		if buf.String() != want {
			t.Errorf("Expected %q, got %q", want, buf.String())
		}
	})

	t.Run("reports invalid option with color", func(t *testing.T) {
		var buf bytes.Buffer
		palette := shared.NewPalette(&buf, true)

		if !CheckInput(&buf, palette, []string{"invalid option: --xyz"}) {
			t.Fatal("Expected input error")
		}

		styled := strings.ReplaceAll(palette.InputError.Render("invalid option"), "invalid", "Invalid")
		want := "Input errors returned by norminette:\n\n" + styled + ": --xyz\n"
		if buf.String() != want {
			t.Errorf("Expected %q, got %q", want, buf.String())
		}
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Error("Expected escape sequences in colored output")
		}
	})

	t.Run("only offending lines are printed", func(t *testing.T) {
		var buf bytes.Buffer
		palette := shared.NewPalette(io.Discard, false)

		lines := []string{
			"usage: norminette [-h] [-d] [-o] [-v]",
			"norminette: error: invalid option: -z",
			"norminette: error: invalid option: -y (invalid)",
		}
		if !CheckInput(&buf, palette, lines) {
			t.Fatal("Expected input error")
		}

		want := "Input errors returned by norminette:\n\n" +
			"norminette: error: Invalid option: -z\n" +
			"norminette: error: Invalid option: -y (Invalid)\n"
		if buf.String() != want {
			t.Errorf("Expected %q, got %q", want, buf.String())
		}
	})

	t.Run("marker needs trailing colon and space", func(t *testing.T) {
		var buf bytes.Buffer
		palette := shared.NewPalette(io.Discard, false)

		if CheckInput(&buf, palette, []string{"invalid option:--xyz", "an invalid option"}) {
			t.Fatal("Expected no input error")
		}
	})
}
