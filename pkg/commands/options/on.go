package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/chronograma/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2026-2-28" or --on="2/28".`)
}

// GetDay resolves the flag to a day key. Empty flag means today is implied
// and the empty string is returned. The flag names a local calendar day, so
// it is parsed in the local zone; parsing in UTC would shift the key to the
// previous day for anyone west of UTC.
func (o *OnOptions) GetDay() (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return "", err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// Assume 1/3 said on 12/5 means next year, not 11 months ago.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return timeutil.DayKey(t), nil
}
