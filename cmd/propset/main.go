package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	log "github.com/finkit/finkit/internal/logging"
	"github.com/finkit/finkit/pkg/cmd"
	"github.com/finkit/finkit/pkg/propertyset"
)

const programName = "propset"

func main() {
	// Errors before the logging flags are applied still need a destination.
	log.SetGlobalLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

	rootCmd := cmd.NewRootCommand(programName)
	cmd.RegisterRootFlags(rootCmd)

	var combineConfig cmd.CombineConfig
	combineCmd := cmd.NewCombineCommand(rootCmd.Use, &combineConfig)
	cmd.RegisterCombineFlags(combineCmd, &combineConfig)
	rootCmd.AddCommand(combineCmd)

	var getConfig cmd.GetConfig
	getCmd := cmd.NewGetCommand(rootCmd.Use, &getConfig)
	cmd.RegisterGetFlags(getCmd, &getConfig)
	rootCmd.AddCommand(getCmd)

	var rollConfig cmd.RollConfig
	rollCmd := cmd.NewRollCommand(rootCmd.Use, &rollConfig)
	cmd.RegisterRollFlags(rollCmd, &rollConfig)
	rootCmd.AddCommand(rollCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, propertyset.ErrInvalidArgument) {
			log.Error().Err(err).Msg("property lookup failed")
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("terminated with errors")
	}
}
