package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	id := ""
	day := 0

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle a habit's slot for a weekday",
		Example: `
chronograma toggle <habit id> <weekday 0-6>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a habit id and a weekday")
			}
			id = args[0]
			var err error
			day, err = strconv.Atoi(args[1])
			if err != nil || day < 0 || day >= record.WeekSlots {
				return errors.New("weekday must be a number between 0 and 6")
			}

			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := toggle.Toggle{
				Service: svc,
				HabitID: id,
				Day:     day,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
