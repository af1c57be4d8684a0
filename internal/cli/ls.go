package cli

import (
	"github.com/spf13/cobra"
)

func lsCmd(s *session) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the initial list",
		Example: `  todo ls
  todo ls --group
  todo ls --match "walk*" --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
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

func applyMatch(s *session, pattern string) error {
	if pattern == "" {
		return nil
	}
	if err := s.view.SetFilter(pattern); err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	return nil
}
