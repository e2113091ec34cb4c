package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "chronograma",
		Short: base.Wrap80("Schedules, to-dos and habits on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addDelete(topLevel)
	addToggle(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
}

// loadService opens the store with the ambient config and wraps it in the
// application service.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.NewService(p), nil
}
