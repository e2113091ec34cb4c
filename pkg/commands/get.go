package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/commands/options"
	"tableflip.dev/chronograma/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get the day, tasks or habits",
		Example: `
chronograma get day
chronograma get day --on=2026-3-1
chronograma get tasks --folder=home
chronograma get habits
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetDay(cmd)
	addGetTasks(cmd)
	addGetHabits(cmd)

	topLevel.AddCommand(cmd)
}

func addGetDay(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"today", "schedule"},
		Short:   "Show the planned and actual timeline for a day",
		Example: `
chronograma get day
chronograma get day --on=2/28
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			day, err := oo.GetDay()
			if err != nil {
				return err
			}

			s := get.Day{
				Service: svc,
				Day:     day,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGetTasks(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	folder := ""

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task", "todo", "todos"},
		Short:   "Show the task list",
		Example: `
chronograma get tasks
chronograma get tasks --folder=home
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			s := get.Tasks{
				Service: svc,
				Folder:  folder,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "",
		"Filter tasks by folder.")
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGetHabits(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "habits",
		Aliases: []string{"habit"},
		Short:   "Show the habit week view",
		Example: `
chronograma get habits
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			s := get.Habits{
				Service: svc,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
