package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/commands/options"
	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/runner/add"
)

func addTaskCmd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
chronograma add task buy groceries --priority=high --folder=home
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			priority := record.Priority(to.Priority)
			if to.Priority != "" && !priority.IsValid() {
				return fmt.Errorf("unknown priority %q", to.Priority)
			}

			s := add.Task{
				Service:  svc,
				Title:    title,
				Due:      to.Due,
				Priority: priority,
				Folder:   to.Folder,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
