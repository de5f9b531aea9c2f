package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finkit/finkit/internal/logging"
)

func RegisterRootFlags(cmd *cobra.Command) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
}

// DefaultPreRunE sets up zerolog flag handling for a command.
func DefaultPreRunE(programName string) cobrautil.CobraRunFunc {
	return cobrautil.CommandStack(
		cobrazerolog.New(
			cobrazerolog.WithTarget(func(logger zerolog.Logger) {
				logging.SetGlobalLogger(logger.With().Str("program", programName).Logger())
			}),
		).RunE(),
	)
}

// PropsetExample creates an example usage string with the provided program
// name.
func PropsetExample(programName string) string {
	return fmt.Sprintf(`	%[1]s:
		%[4]s combine --layer 'db.host=localhost,db.port=5432' --layer 'db.host=prod.internal'

	%[2]s:
		PROPSET_DB_HOST=env.internal %[4]s get db.host --env-prefix PROPSET_ --layer 'db.port=5432'

	%[3]s:
		%[4]s roll 2014-01-03 --layer 'roll.convention=IMM'
`,
		color.YellowString("Layered property sets"),
		color.GreenString("Environment as the lowest layer"),
		color.CyanString("Roll a date with a configured convention"),
		programName,
	)
}

func NewRootCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:           programName,
		Short:         "Layer and query multi-valued property sets",
		Long:          "A tool that builds property sets from layered key-value sources, where a later layer takes precedence over the earlier ones",
		Example:       PropsetExample(programName),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}
