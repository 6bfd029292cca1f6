package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mawsis/nebula-cli/internal/core/project"
	"github.com/mawsis/nebula-cli/internal/ui"
)

// consoleReporter prints one line per generated directory and file and
// drives the spinner around the installer.
type consoleReporter struct {
	out      io.Writer
	theme    *ui.Theme
	headless *ui.HeadlessManager
	command  string
	spinner  ui.Spinner
}

func newConsoleReporter(out io.Writer, theme *ui.Theme, hm *ui.HeadlessManager, installCommand string) *consoleReporter {
	return &consoleReporter{out: out, theme: theme, headless: hm, command: installCommand}
}

// Report implements project.Reporter.
func (r *consoleReporter) Report(e project.Event) {
	switch e.Kind {
	case project.EventProjectCreated:
		r.printf("%s %s\n", r.theme.Success("✓"), "Project directory "+r.theme.Path(e.Path))
	case project.EventDirectoryCreated:
		r.printf("📂 Created: %s\n", r.theme.Path(e.Path+"/"))
	case project.EventFileWritten:
		r.printf("📝 Created: %s\n", r.theme.Path(e.Path))
	case project.EventInstallStarted:
		r.spinner = ui.NewSpinner(r.theme, r.headless, r.out, "Installing dependencies ("+r.command+")...")
	case project.EventInstallFinished:
		r.stopSpinner()
		r.printf("%s %s\n", r.theme.Success("✓"), "Dependencies installed")
	case project.EventInstallFailed:
		r.stopSpinner()
		r.printf("%s %s\n", r.theme.Warning("!"), "Dependency installation failed")
	case project.EventInstallSkipped:
		r.printf("%s %s\n", r.theme.Muted("○"), r.theme.Muted("Dependency installation skipped"))
	}
}

func (r *consoleReporter) stopSpinner() {
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
}

func (r *consoleReporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// kvPair is one aligned line of a summary card.
type kvPair struct {
	key, value string
}

func renderKeyValueLines(theme *ui.Theme, pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = theme.Muted(fmt.Sprintf("%-*s", width, p.key)) + "  " + p.value
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a success message with optional details inside
// a card.
func renderSuccessCard(theme *ui.Theme, title string, details ...string) string {
	var body strings.Builder
	body.WriteString(theme.Success("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return theme.Card(body.String())
}

// nextSteps returns the markdown shown after a successful run. dir is the
// project path as the user typed it.
func nextSteps(dir string, installFailed bool, installCommand string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	if installFailed {
		fmt.Fprintf(&b, "Finish installing dependencies manually:\n\n    cd %s && %s\n\n", dir, installCommand)
	}
	fmt.Fprintf(&b, "Start the development server:\n\n    cd %s && php -S localhost:8000 -t public\n", dir)
	return b.String()
}

// renderMarkdown renders md with glamour, or returns it unchanged when
// colour is off or rendering fails.
func renderMarkdown(theme *ui.Theme, md string) string {
	if theme.NoColor {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
