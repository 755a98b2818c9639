// Package app runs the interactive task logging menus.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"task-logger/internal/menu"
	"task-logger/internal/service"
	"task-logger/internal/ui"
)

const (
	latestCount     = 5
	farewellMessage = "Until next time..."
)

// App wires the task service and the printer into the main menu loop.
type App struct {
	tasks       *service.TaskService
	ui          *ui.Printer
	in          *bufio.Reader
	addAttempts int

	mainMenu   *menu.Menu
	searchMenu *menu.Menu
}

// New builds an App reading answers from in. addAttempts bounds how many times
// the add-task prompts restart after a value of the wrong type.
func New(tasks *service.TaskService, printer *ui.Printer, in io.Reader, addAttempts int) *App {
	if addAttempts <= 0 {
		addAttempts = 1
	}
	a := &App{
		tasks:       tasks,
		ui:          printer,
		in:          bufio.NewReader(in),
		addAttempts: addAttempts,
	}
	a.mainMenu = menu.New("MAIN MENU",
		menu.Entry{Key: "1", Label: "Add task", Handler: a.addTask},
		menu.Entry{Key: "2", Label: "Search tasks", Handler: a.searchTasks},
		menu.Entry{Key: "3", Label: "Quit program", Handler: a.quit},
	)
	a.searchMenu = menu.New("SEARCH OPTIONS",
		menu.Entry{Key: "1", Label: "Search by username", Handler: a.searchStub("username")},
		menu.Entry{Key: "2", Label: "Search by task date", Handler: a.searchStub("entry date")},
		menu.Entry{Key: "3", Label: "Search by task length (in minutes)", Handler: a.searchStub("time spent")},
		menu.Entry{Key: "4", Label: "Search by notes regex", Handler: a.searchStub("note regex")},
		menu.Entry{Key: "5", Label: "Return to main menu", Handler: back},
	)
	return a
}

// Run shows the main menu until the user quits or input ends.
// The caller clears the screen before opening storage.
func (a *App) Run(ctx context.Context) error {
	for {
		a.ui.TitleBar(a.mainMenu.Title)
		a.ui.Notice("Welcome to the task logging portal. Please make a selection.")

		res, err := a.choose(ctx, a.mainMenu)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		case res == menu.Quit:
			return nil
		}
	}
}

// choose renders m, reads one key and dispatches it. Unknown keys are
// reported and come back as menu.Stay so the caller shows m again.
func (a *App) choose(ctx context.Context, m *menu.Menu) (menu.Result, error) {
	if err := m.Render(a.ui.Writer(), a.ui.MenuLine); err != nil {
		return menu.Stay, err
	}
	a.ui.Prompt("\nAction: ")
	input, err := a.readLine()
	if err != nil {
		return menu.Stay, err
	}

	res, err := m.Dispatch(ctx, input)
	if errors.Is(err, menu.ErrInvalidSelection) {
		a.ui.ClearScreen()
		a.ui.InvalidSelection(strings.ToLower(strings.TrimSpace(input)))
		return menu.Stay, nil
	}
	return res, err
}

func (a *App) addTask(ctx context.Context) (menu.Result, error) {
	for attempt := 1; attempt <= a.addAttempts; attempt++ {
		a.ui.ClearScreen()
		a.ui.TitleBar("ADDING TASK")

		input, err := a.askTask()
		if err != nil {
			return menu.Stay, err
		}

		_, err = a.tasks.CreateTask(ctx, input)
		switch {
		case err == nil:
			// No recap of the stored task yet; the main menu is shown again.
			return menu.Stay, nil
		case errors.Is(err, service.ErrValidation):
			a.ui.Println("You messed up the task creation, check those value types!")
		case errors.Is(err, service.ErrIntegrity):
			a.ui.Println("You messed up the task creation.")
			return menu.Stay, nil
		default:
			return menu.Stay, err
		}
	}
	a.ui.Printf("Giving up after %d attempts, returning to the main menu.\n", a.addAttempts)
	return menu.Stay, nil
}

func (a *App) askTask() (service.TaskInput, error) {
	var input service.TaskInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Your username: ", &input.Username},
		{"Your task name: ", &input.Title},
		{"Total time (in minutes): ", &input.TotalTime},
		{"Notes: ", &input.Notes},
	}
	for _, f := range fields {
		fmt.Fprint(a.ui.Writer(), f.prompt)
		line, err := a.readLine()
		if err != nil {
			return input, err
		}
		*f.dst = line
	}
	return input, nil
}

func (a *App) searchTasks(ctx context.Context) (menu.Result, error) {
	a.ui.ClearScreen()
	if err := a.showLatest(ctx); err != nil {
		return menu.Stay, err
	}
	a.ui.SectionDivider()

	for {
		a.ui.TitleBar(a.searchMenu.Title)
		a.ui.Notice("\tPlease select a strategy for searching through tasks.")

		res, err := a.choose(ctx, a.searchMenu)
		if err != nil {
			return menu.Stay, err
		}
		if res == menu.Back {
			return menu.Stay, nil
		}
	}
}

func (a *App) showLatest(ctx context.Context) error {
	a.ui.TitleBar("LATEST TASKS")
	tasks, err := a.tasks.Latest(ctx, latestCount)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		a.ui.Println("\nNo tasks logged yet.")
		return nil
	}
	for _, t := range tasks {
		a.ui.Task(t)
	}
	return nil
}

// searchStub stands in for a search strategy that does not filter yet.
func (a *App) searchStub(by string) menu.Handler {
	return func(context.Context) (menu.Result, error) {
		a.ui.Println("Search by..." + by)
		return menu.Back, nil
	}
}

func (a *App) quit(context.Context) (menu.Result, error) {
	a.ui.Farewell(farewellMessage)
	return menu.Quit, nil
}

func back(context.Context) (menu.Result, error) {
	return menu.Back, nil
}

// readLine returns the next input line without its line ending. A final
// line lacking a newline is returned as is; io.EOF comes only once nothing is left.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
