package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/commands/options"
	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/runner/add"
)

func addSchedule(topLevel *cobra.Command) {
	addScheduleTrack(topLevel, record.TrackPlanned, "planned", "Add an item to the planned schedule")
	addScheduleTrack(topLevel, record.TrackActual, "actual", "Add an item to the actual schedule")
}

func addScheduleTrack(topLevel *cobra.Command, track record.Track, use, short string) {
	so := &options.ScheduleOptions{}
	oo := &options.OnOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: `
chronograma add ` + use + ` "Deep work" --at=9:00 --for=90 --on=2026-3-1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
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
			day, err := oo.GetDay()
			if err != nil {
				return err
			}

			s := add.Schedule{
				Service:     svc,
				Track:       track,
				Title:       title,
				Type:        so.Type,
				Day:         day,
				At:          so.At,
				DurationMin: so.Duration,
				Completed:   so.Done,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddScheduleArgs(cmd, so)
	options.AddOnArgs(cmd, oo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
