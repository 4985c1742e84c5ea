package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/notebook/internal/config"
	"github.com/aidanlsb/notebook/internal/dates"
)

// dateFlag is a -d/--date value. Set accepts any known keyword; keywords
// disabled by configuration are rejected when the command runs, once the
// feature set is known.
type dateFlag struct {
	spec dates.Spec
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	return f.spec.String()
}

func (f *dateFlag) Set(value string) error {
	s, err := dates.ParseSpec(value)
	if err != nil {
		return err
	}
	f.spec = s
	return nil
}

func (f *dateFlag) Type() string {
	return "DATE"
}

func dateFlagUsage() string {
	names := make([]string, 0, len(dates.All()))
	for _, s := range dates.All() {
		names = append(names, s.String())
	}
	return "Date prefix, one of: " + strings.Join(names, ", ")
}

func (a *app) addDateFlag(cmd *cobra.Command, f *dateFlag) {
	cmd.Flags().VarP(f, "date", "d", dateFlagUsage())
	_ = cmd.RegisterFlagCompletionFunc("date", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		features := dates.DefaultFeatures()
		if cfg, err := config.Load(a.configPath); err == nil {
			features = cfg.Dates
		}
		return dates.NewResolver(features).ChoiceNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// resolveDate checks the flag against the configured feature set.
func (a *app) resolveDate(f *dateFlag) (dates.Spec, error) {
	return a.dates.Parse(f.String())
}
