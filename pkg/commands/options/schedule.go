// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions captures the timing flags shared by the schedule commands.
type ScheduleOptions struct {
	At       string
	Duration int
	Type     string
	Done     bool
}

// AddScheduleArgs wires schedule timing flags on the provided command.
func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.At, "at", "9:00",
		`Specify the start time, example: --at="9:30".`)
	cmd.Flags().IntVar(&o.Duration, "for", 60,
		"Specify the duration in minutes.")
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Specify the item type, example: work, break, exercise.")
	cmd.Flags().BoolVar(&o.Done, "done", false,
		"Mark the item completed on creation.")
}
