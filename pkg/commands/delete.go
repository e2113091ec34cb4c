package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"del", "rm"},
		Short:   "Delete a record",
		Example: `
chronograma delete planned <item id>
chronograma delete task <task id>
chronograma delete habit <habit id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeleteSchedule(cmd, record.TrackPlanned, "planned")
	addDeleteSchedule(cmd, record.TrackActual, "actual")
	addDeleteTask(cmd)
	addDeleteHabit(cmd)

	topLevel.AddCommand(cmd)
}

func numericIDArg(id *int64, what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires a " + what + " id")
		}
		var err error
		*id, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New(what + " id must be a number")
		}
		return nil
	}
}

func addDeleteSchedule(topLevel *cobra.Command, track record.Track, use string) {
	var id int64

	cmd := &cobra.Command{
		Use:   use,
		Short: "Delete an item from the " + use + " schedule",
		Args:  numericIDArg(&id, "schedule item"),
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := remove.ScheduleItem{
				Service: svc,
				Track:   track,
				ID:      id,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDeleteTask(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Delete a task",
		Args:  numericIDArg(&id, "task"),
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := remove.Task{
				Service: svc,
				ID:      id,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDeleteHabit(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Delete a habit",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit id")
			}
			id = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := remove.Habit{
				Service: svc,
				ID:      id,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
