// Package cli defines the todo command tree.
//
// Commands
//
//   - todo          Run the interactive widget (prints the list when not on a terminal)
//   - todo ls       Print the initial list
//   - todo apply    Apply a script of operations to the initial list and print the result
//
// Every command shares the same setup: configuration is loaded from files,
// environment and flags, the logger and theme are built from it, and the
// initial list is seeded before the command body runs.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoview/internal/config"
	"github.com/idilsaglam/todoview/internal/logging"
	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/seed"
	"github.com/idilsaglam/todoview/internal/todo"
	"github.com/idilsaglam/todoview/internal/tui"
	"github.com/idilsaglam/todoview/internal/ui"
)

// session is what every command body works with after setup.
type session struct {
	cfg    *config.Config
	theme  ui.Theme
	log    *log.Logger
	closer io.Closer
	view   *todo.View

	stdin          io.Reader
	stdout, stderr io.Writer
}

// Execute runs the command tree on os.Args and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s := &session{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(s)
	root.SetArgs(args)
	err := root.Execute()
	if cerr := s.close(); err == nil {
		err = cerr
	}
	if err == nil {
		return exitOK
	}

	theme := ui.Classic()
	ui.Fail(stderr, theme, err.Error())
	var ee *ExitError
	if errors.As(err, &ee) && ee.Hint != "" {
		fmt.Fprintln(stderr, theme.Muted.Render("Hint: "+ee.Hint))
	}
	return ExitCode(err)
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A small in-memory todo list widget",
		Long: `todo runs an interactive todo list in the terminal.

Type to fill the input and press enter to add a todo. Tab moves to the list,
where space toggles, d deletes and u brings back the last deleted todo.
With the mouse, click a row to toggle it or its ✖ to delete it.

Nothing is saved: the list lives as long as the widget does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &ExitError{
					Code: exitUsage,
					Err:  fmt.Errorf("unknown subcommand: %s", args[0]),
					Hint: "run `todo --help` to see the subcommands",
				}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.interactive()
		},
	}
	root.SetIn(s.stdin)
	root.SetOut(s.stdout)
	root.SetErr(s.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Err: err}
	})
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(lsCmd(s), applyCmd(s))
	return root
}

func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	s.cfg = cfg

	s.theme, err = ui.ThemeByName(cfg.Theme)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	if s.theme.Name == "mono" {
		ui.SetColorMode("never")
	} else {
		ui.SetColorMode(cfg.Color)
	}

	s.log, s.closer, err = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}

	initial, err := initialTodos(cfg)
	if err != nil {
		return err
	}
	s.view = todo.NewView(initial, todo.WithLogger(s.log))
	s.log.Debug("session ready", "command", cmd.Name(), "config", cfg.Source, "todos", s.view.Len())
	return nil
}

func (s *session) close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

func (s *session) interactive() error {
	in, inOK := s.stdin.(*os.File)
	out, outOK := s.stdout.(*os.File)
	if !inOK || !outOK || !ui.IsTerminal(in) || !ui.IsTerminal(out) {
		return s.render(s.view.Snapshot(), renderOptions{format: formatPanel})
	}

	err := tui.Run(s.view, tui.RunOptions{
		Options:   tui.Options{Theme: s.theme, Logger: s.log},
		AltScreen: s.cfg.AltScreen,
		Mouse:     s.cfg.Mouse,
		Input:     in,
		Output:    out,
	})
	if err != nil {
		return err
	}
	snap := s.view.Snapshot()
	ui.OK(s.stdout, s.theme, fmt.Sprintf("%d done, %d pending", snap.Done, snap.Pending))
	return nil
}

// initialTodos picks the starting list: none, a seed file, the config's
// inline todos, or the built-in default, in that order.
func initialTodos(cfg *config.Config) ([]model.Todo, error) {
	switch {
	case cfg.NoSeed:
		return nil, nil
	case cfg.SeedFile != "":
		todos, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.SeedFile, err)
		}
		return todos, nil
	case len(cfg.Todos) > 0:
		todos := make([]model.Todo, 0, len(cfg.Todos))
		for _, st := range cfg.Todos {
			t := model.New(strings.TrimSpace(st.Text))
			t.Completed = st.Completed
			todos = append(todos, t)
		}
		return todos, nil
	}
	return todo.DefaultTodos(), nil
}
