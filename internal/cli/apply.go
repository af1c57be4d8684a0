package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoview/internal/todo"
)

func applyCmd(s *session) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "apply OP...",
		Short: "Apply operations to the initial list and print the result",
		Long: `Apply a script of operations to the initial list, in memory, then print it.

Each operation is a single argument:

  add <text>      add a todo (leading and trailing spaces are trimmed)
  input <text>    set the input buffer
  submit          add the input buffer as a todo and clear it
  done <n>        toggle todo n (1-based)
  rm <n>          delete todo n (1-based)
  undo            bring back the last deleted todo
  filter <glob>   only show matching rows

Operations run in order and stop at the first failure.`,
		Example: `  todo apply "add Buy milk" "done 1"
  todo apply "rm 2" undo --format json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &ExitError{
					Code: exitUsage,
					Err:  errors.New("apply: at least one operation is required"),
					Hint: `todo apply "add Buy milk"`,
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ops, err := parseScript(args)
			if err != nil {
				return err
			}
			for _, o := range ops {
				if err := o.apply(s.view); err != nil {
					return err
				}
				s.log.Debug("applied", "op", o.name, "arg", o.arg)
			}
			if err := applyMatch(s, opts.match); err != nil {
				return err
			}
			return s.render(s.view.Snapshot(), opts)
		},
	}
	opts.register(cmd.Flags())
	return cmd
}

// op is one parsed script step.
type op struct {
	name string
	arg  string
	n    int // 1-based index for done and rm
}

var opAliases = map[string]string{
	"toggle": "done",
	"delete": "rm",
	"remove": "rm",
}

func parseScript(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, a := range args {
		o, err := parseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func parseOp(s string) (op, error) {
	name, arg, _ := strings.Cut(strings.TrimLeft(s, " \t"), " ")
	name = strings.ToLower(name)
	if alias, ok := opAliases[name]; ok {
		name = alias
	}
	o := op{name: name, arg: arg}

	switch name {
	case "add", "input", "filter":
		return o, nil
	case "submit", "undo":
		if strings.TrimSpace(arg) != "" {
			return op{}, usageError("%s: takes no argument, got %q", name, arg)
		}
		return o, nil
	case "done", "rm":
		arg = strings.TrimSpace(arg)
		n, err := strconv.Atoi(arg)
		if err != nil {
			return op{}, &ExitError{
				Code: exitUsage,
				Err:  fmt.Errorf("%s: invalid index: %q", name, arg),
				Hint: "indexes are the numbers shown by `todo ls`",
			}
		}
		o.arg, o.n = arg, n
		return o, nil
	case "":
		return op{}, usageError("empty operation")
	}
	return op{}, &ExitError{
		Code: exitUsage,
		Err:  fmt.Errorf("unknown operation: %s", name),
		Hint: "run `todo apply --help` to see the operations",
	}
}

func (o op) apply(v *todo.View) error {
	var err error
	switch o.name {
	case "add":
		v.SubmitNewTodo(o.arg)
	case "input":
		v.SetInput(o.arg)
	case "submit":
		v.Submit()
	case "undo":
		v.Undo()
	case "filter":
		err = v.SetFilter(o.arg)
	case "done":
		err = v.ToggleCompleted(o.n - 1)
	case "rm":
		err = v.DeleteTodo(o.n - 1)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, todo.ErrOutOfRange):
		return &ExitError{
			Code: exitUsage,
			Err:  fmt.Errorf("%s: index out of range: have %d, got %d", o.name, v.Len(), o.n),
			Hint: "run `todo ls` to see valid indexes",
		}
	case errors.Is(err, todo.ErrBadPattern):
		return &ExitError{Code: exitUsage, Err: err}
	}
	return err
}
