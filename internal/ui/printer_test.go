package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fexplore/pkg/testutils"
)

func TestPrinterRoutesOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, WithColor(false))

	p.Println("plain")
	p.Printf("%s-%d\n", "formatted", 7)
	p.Success("File created: a.txt")
	p.Info("info line")
	p.Warning("Invalid choice")
	p.Header("Header")
	p.Prompt("Enter choice: ")
	p.Error("remove failed: no such file or directory")
	p.Errorf("chdir failed: %s", "not a directory")

	assert.Equal(t,
		"plain\nformatted-7\nFile created: a.txt\ninfo line\nInvalid choice\nHeader\nEnter choice: ",
		out.String())
	assert.Equal(t,
		"remove failed: no such file or directory\nchdir failed: not a directory\n",
		errOut.String())
	assert.Same(t, &out, p.Out())
}

func TestPrinterNonTerminalHasNoEscapes(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, WithColor(true), WithTheme(GruvboxTheme))

	p.Success("done")
	p.Error("failed")

	assert.Equal(t, out.String(), testutils.StripANSI(out.String()))
	assert.Contains(t, out.String(), "done")
	assert.Contains(t, errOut.String(), "failed")
}

func TestBanner(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, WithColor(false))

	p.Banner("File Explorer Tool", 38)
	lines := bytes.Split(bytes.TrimRight(out.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 3)
	assert.Equal(t, 38, len(lines[0]))
	assert.Equal(t, "          File Explorer Tool", string(lines[1]))

	out.Reset()
	p.Banner("a very long title that overflows", 4)
	assert.Contains(t, out.String(), "\na very long title that overflows\n")
}

func TestThemes(t *testing.T) {
	theme, ok := ThemeByName("gruvbox")
	assert.True(t, ok)
	assert.Equal(t, GruvboxTheme, theme)

	theme, ok = ThemeByName("nope")
	assert.False(t, ok)
	assert.Equal(t, DefaultTheme, theme)

	assert.Equal(t, []string{"default", "gruvbox", "monochrome"}, ThemeNames())
}
