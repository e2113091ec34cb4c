package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the to-do flags.
type TaskOptions struct {
	Due      string
	Priority string
	Folder   string
}

// AddTaskArgs wires task flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		`Specify the due day, example: --due="2026-03-01".`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Specify the priority. One of 'high', 'medium' or 'low'.")
	cmd.Flags().StringVarP(&o.Folder, "folder", "f", "",
		"Specify the folder.")
}
