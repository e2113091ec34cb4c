package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done"},
		Short:   "Toggle a task's completed state",
		Example: `
chronograma complete <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("task id must be a number")
			}

			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := complete.Complete{
				Service: svc,
				ID:      id,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
