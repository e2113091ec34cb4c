package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
chronograma add planned "Deep work" --at=9:00 --for=90
chronograma add task buy groceries
chronograma add habit Read --time=21:00
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSchedule(cmd)
	addTaskCmd(cmd)
	addHabitCmd(cmd)

	topLevel.AddCommand(cmd)
}
