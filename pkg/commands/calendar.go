package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/runner/calendar"
	"tableflip.dev/chronograma/pkg/timeutil"
)

func addCalendar(topLevel *cobra.Command) {
	month := ""

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the monthly activity calendar",
		Example: `
chronograma calendar
chronograma calendar --month=2026-03
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			then := time.Now()
			if month != "" {
				then, err = timeutil.ParseMonthKey(month)
				if err != nil {
					return err
				}
			}

			s := calendar.Calendar{
				Service: svc,
				Month:   then,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "",
		`Specify the month, example: --month="2026-03".`)

	topLevel.AddCommand(cmd)
}
