package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/commands/options"
	"tableflip.dev/chronograma/pkg/runner/add"
)

func addHabitCmd(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Add a habit",
		Example: `
chronograma add habit Read --icon=book --time=21:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			s := add.Habit{
				Service: svc,
				Name:    name,
				Icon:    ho.Icon,
				Time:    ho.Time,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
