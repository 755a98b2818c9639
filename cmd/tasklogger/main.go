package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"task-logger/internal/app"
	"task-logger/internal/config"
	"task-logger/internal/repository"
	"task-logger/internal/service"
	"task-logger/internal/ui"
)

// stdout translates ANSI colors on Windows consoles and is os.Stdout elsewhere.
var stdout = colorable.NewColorableStdout()

func main() {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("tasklogger: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tasklogger",
		Short:         "Log work entries and browse recent ones",
		Long:          `tasklogger records work entries (username, task, minutes spent, notes) in a local SQLite file and lets you browse the latest ones through an interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return run(cmd.Context(), cmd.InOrStdin(), out, isTerminal(out))
		},
	}
}

// run clears the screen, opens storage and then hands over to the menu loop.
func run(ctx context.Context, in io.Reader, out io.Writer, terminal bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	printer := ui.NewPrinter(out, terminal && !cfg.NoColor && !color.NoColor, terminal)
	printer.ClearScreen()

	db, err := repository.NewDB(cfg.DatabaseURL, cfg.SQLLogLevel)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskSvc := service.NewTaskService(repository.NewTaskRepository(db))

	return app.New(taskSvc, printer, in, cfg.AddAttempts).Run(ctx)
}

// isTerminal reports whether out is an interactive terminal.
func isTerminal(out io.Writer) bool {
	var fd uintptr
	switch {
	case out == stdout:
		fd = os.Stdout.Fd()
	default:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		fd = f.Fd()
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
