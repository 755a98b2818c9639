package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-logger/internal/model"
)

func TestTitleBarPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.TitleBar("MAIN MENU")

	rule := strings.Repeat("*", 80)
	assert.Equal(t, rule+"\n\t\t\t\tMAIN MENU\n"+rule+"\n", buf.String())
}

func TestTitleBarColored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.TitleBar("X")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "X")
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).ClearScreen()
	assert.Empty(t, buf.String())

	NewPrinter(&buf, false, true).ClearScreen()
	assert.Equal(t, "\033[H\033[2J", buf.String())
}

func TestSectionDivider(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).SectionDivider()
	assert.Equal(t, "\n"+strings.Repeat("*", 82)+"\n\n", buf.String())
}

func TestMenuLine(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false, false)
	assert.Equal(t, " (1) Add task", p.MenuLine("1", "Add task"))
}

func TestTaskBlock(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Task(model.Task{
		Username:  "alice",
		Title:     "write report",
		TotalTime: 30,
		Timestamp: time.Date(2024, 3, 5, 14, 7, 0, 0, time.Local).UTC(),
	})

	want := "\nUser: Alice\n" +
		"Task: Write Report\n" +
		"Total Time: 30 minutes\n" +
		"(Tuesday March 05, 2024 02:07PM)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true, false).Printf("Giving up after %d attempts\n", 3)
	assert.Equal(t, "Giving up after 3 attempts\n", buf.String())
}

func TestInvalidSelection(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).InvalidSelection("x")
	assert.Equal(t, "\nSorry, x is not a valid selection. Please try again.\n", buf.String())
}

func TestFarewellContainsMessage(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Farewell("Until next time...")
	assert.Contains(t, buf.String(), "Until next time...")
}
