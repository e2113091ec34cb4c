package options

import (
	"github.com/spf13/cobra"
)

// HabitOptions captures the habit flags.
type HabitOptions struct {
	Icon string
	Time string
}

// AddHabitArgs wires habit flags on the provided command.
func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		"Specify an icon for the habit.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Specify the reminder time, example: --time="07:30".`)
}
