package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/commands/options"
	teaui "tableflip.dev/chronograma/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
chronograma ui
chronograma ui --on=2026-3-1
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			day, err := oo.GetDay()
			if err != nil {
				return err
			}
			return teaui.Run(svc, day)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
