// Package ui formats the terminal screens. It holds no business logic.
package ui

import (
	"fmt"
	"io"
	"strings"

	cowsay "github.com/Code-Hex/Neo-cowsay/v2"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"task-logger/internal/model"
)

const (
	barWidth     = 80
	dividerWidth = 82

	// TimestampLayout renders task times as "Monday January 02, 2006 03:04PM".
	TimestampLayout = "Monday January 02, 2006 03:04PM"
)

// Printer writes decorated output. With color off every helper emits plain text.
type Printer struct {
	out   io.Writer
	clear bool

	bar    *color.Color
	notice *color.Color
	key    *color.Color
	label  *color.Color
	field  *color.Color
	stamp  *color.Color
	prompt *color.Color
	title  cases.Caser
}

// NewPrinter returns a Printer for out. clearScreen controls whether ClearScreen
// emits the terminal reset sequence; it should be off when out is not a terminal.
func NewPrinter(out io.Writer, colored, clearScreen bool) *Printer {
	p := &Printer{
		out:    out,
		clear:  clearScreen,
		bar:    color.New(color.FgBlue),
		notice: color.New(color.FgGreen),
		key:    color.New(color.FgHiBlue),
		label:  color.New(color.FgHiWhite),
		field:  color.New(color.FgGreen),
		stamp:  color.New(color.FgRed),
		prompt: color.New(color.FgHiBlue),
		title:  cases.Title(language.English),
	}
	for _, c := range []*color.Color{p.bar, p.notice, p.key, p.label, p.field, p.stamp, p.prompt} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Writer exposes the underlying output.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// ClearScreen resets the terminal and moves the cursor home.
func (p *Printer) ClearScreen() {
	if !p.clear {
		return
	}
	fmt.Fprint(p.out, "\033[H\033[2J")
}

// TitleBar prints name framed by two rows of asterisks.
func (p *Printer) TitleBar(name string) {
	rule := strings.Repeat("*", barWidth)
	p.bar.Fprintln(p.out, rule)
	p.bar.Fprintf(p.out, "\t\t\t\t%s\n", name)
	p.bar.Fprintln(p.out, rule)
}

// SectionDivider prints a blank-padded row of asterisks.
func (p *Printer) SectionDivider() {
	fmt.Fprintf(p.out, "\n%s\n\n", strings.Repeat("*", dividerWidth))
}

// Notice prints an indented highlighted line surrounded by blank lines.
func (p *Printer) Notice(text string) {
	p.notice.Fprintf(p.out, "\n\t%s\n\n", text)
}

// Println prints plain text.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// MenuLine formats one menu entry as "(key) label".
func (p *Printer) MenuLine(key, label string) string {
	return fmt.Sprintf(" %s %s", p.key.Sprintf("(%s)", key), p.label.Sprint(label))
}

// Prompt prints text without a trailing newline, ready for input.
func (p *Printer) Prompt(text string) {
	p.prompt.Fprint(p.out, text)
}

// Printf prints formatted plain text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// InvalidSelection reports an unknown menu key.
func (p *Printer) InvalidSelection(key string) {
	fmt.Fprintf(p.out, "\nSorry, %s is not a valid selection. Please try again.\n", key)
}

// Task prints one task as a labeled block.
func (p *Printer) Task(t model.Task) {
	fmt.Fprintf(p.out, "\n%s%s\n", p.field.Sprint("User: "), p.title.String(t.Username))
	fmt.Fprintf(p.out, "%s%s\n", p.field.Sprint("Task: "), p.title.String(t.Title))
	fmt.Fprintf(p.out, "%s%d minutes\n", p.field.Sprint("Total Time: "), t.TotalTime)
	p.stamp.Fprintf(p.out, "(%s)\n", t.Timestamp.Local().Format(TimestampLayout))
}

// Farewell prints the goodbye dragon, or the bare message if it cannot be drawn.
func (p *Printer) Farewell(message string) {
	art, err := cowsay.Say(message, cowsay.Type("dragon"), cowsay.BallonWidth(40))
	if err != nil {
		fmt.Fprintln(p.out, message)
		return
	}
	fmt.Fprintln(p.out, art)
}
