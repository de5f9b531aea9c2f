package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	log "github.com/finkit/finkit/internal/logging"
	"github.com/finkit/finkit/pkg/schedule"
)

// RollConventionKey is the property holding the roll convention when the
// --convention flag is not given.
const RollConventionKey = "roll.convention"

// RollConfig is the configuration for the roll command.
type RollConfig struct {
	LayerConfig

	// Convention overrides the roll convention found in the layers.
	Convention string
}

func RegisterRollFlags(cmd *cobra.Command, config *RollConfig) {
	RegisterLayerFlags(cmd.Flags(), &config.LayerConfig)
	cmd.Flags().StringVar(&config.Convention, "convention", "", fmt.Sprintf("roll convention name, overriding the %q property", RollConventionKey))
}

func NewRollCommand(programName string, config *RollConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "roll DATE",
		Short:   "adjust a date (YYYY-MM-DD) to the roll day of its month",
		PreRunE: DefaultPreRunE(programName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			ps, err := config.Complete()
			if err != nil {
				return err
			}

			name := config.Convention
			if name == "" {
				name, err = ps.GetValueOrDefault(RollConventionKey, schedule.None.Name())
				if err != nil {
					return err
				}
			}

			var convention schedule.RollConvention
			if err := convention.UnmarshalText([]byte(name)); err != nil {
				return err
			}

			adjusted := convention.Adjust(date)
			log.Debug().EmbedObject(convention).Time("date", date).Time("adjusted", adjusted).Msg("rolled date")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), adjusted.Format(time.DateOnly))
			return err
		},
	}
}
