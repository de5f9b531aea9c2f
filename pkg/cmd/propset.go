package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/stringz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	log "github.com/finkit/finkit/internal/logging"
	"github.com/finkit/finkit/pkg/finerrors"
	"github.com/finkit/finkit/pkg/propertyset"
	"github.com/finkit/finkit/pkg/propertyset/koanfprovider"
)

const (
	layerFlag     = "layer"
	envPrefixFlag = "env-prefix"
	envDelimFlag  = "env-delim"
	outputFlag    = "output"
)

// ErrMalformedPair is returned for a layer entry that is not of the form
// key=value.
var ErrMalformedPair = errors.New("malformed key=value pair")

// LayerConfig is the configuration shared by the commands that build a
// property set out of layers.
type LayerConfig struct {
	// Layers are the sources in increasing order of precedence, each a
	// comma-separated list of key=value pairs. A key repeated within a layer
	// collects all of its values.
	Layers []string

	// EnvPrefix, when set, loads the environment variables with this prefix
	// as the lowest layer.
	EnvPrefix string

	// EnvDelim is the key path delimiter for environment variables.
	EnvDelim string
}

// RegisterLayerFlags adds the following flags for use with
// LayerConfig.Complete:
// - "layer"
// - "env-prefix"
// - "env-delim"
func RegisterLayerFlags(flags *pflag.FlagSet, config *LayerConfig) {
	flags.StringArrayVar(&config.Layers, layerFlag, []string{}, "comma-separated key=value pairs forming a layer; later layers take precedence")
	flags.StringVar(&config.EnvPrefix, envPrefixFlag, "", "load environment variables with this prefix as the lowest layer")
	flags.StringVar(&config.EnvDelim, envDelimFlag, koanfprovider.DefaultDelim, "delimiter replacing underscores in environment variable names")
}

// Complete builds the property set described by the configuration.
func (c *LayerConfig) Complete() (*propertyset.PropertySet, error) {
	sets := make([]*propertyset.PropertySet, 0, len(c.Layers)+1)
	if c.EnvPrefix != "" {
		fromEnv, err := koanfprovider.FromEnv(c.EnvPrefix, c.EnvDelim)
		if err != nil {
			return nil, err
		}
		sets = append(sets, fromEnv)
	}

	for i, layer := range c.Layers {
		ps, err := ParseLayer(layer)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		log.Debug().Int("layer", i).Object("properties", ps).Msg("parsed layer")
		sets = append(sets, ps)
	}

	return propertyset.Combine(sets...)
}

// ParseLayer parses a comma-separated list of key=value pairs. Whitespace
// around keys is ignored and empty entries are skipped.
//
// A malformed entry is reported as a finerrors.WithSourceError pointing at
// the column where the entry starts.
func ParseLayer(layer string) (*propertyset.PropertySet, error) {
	var pairs []propertyset.Pair
	offset := 0
	for _, entry := range strings.Split(layer, ",") {
		column := offset + 1
		offset += len(entry) + 1
		if strings.TrimSpace(entry) == "" {
			continue
		}

		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, finerrors.NewWithSourceError(fmt.Errorf("%w: %q", ErrMalformedPair, entry), layer, column)
		}
		pairs = append(pairs, propertyset.Pair{Key: key, Value: value})
	}
	return propertyset.OfPairs(pairs...), nil
}

// CombineConfig is the configuration for the combine command.
type CombineConfig struct {
	LayerConfig

	// Output is the format used to print the property set.
	Output string
}

func RegisterCombineFlags(cmd *cobra.Command, config *CombineConfig) {
	RegisterLayerFlags(cmd.Flags(), &config.LayerConfig)
	cmd.Flags().StringVarP(&config.Output, outputFlag, "o", string(OutputText), fmt.Sprintf("output format (%q, %q, %q)", OutputText, OutputJSON, OutputYAML))
}

func NewCombineCommand(programName string, config *CombineConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "combine",
		Short:   "combine layers into one property set and print it",
		PreRunE: DefaultPreRunE(programName),
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := OutputFormat(cobrautil.MustGetString(cmd, outputFlag))
			if !stringz.SliceContains(outputFormats, string(format)) {
				return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
			}

			ps, err := config.Complete()
			if err != nil {
				return err
			}
			return Print(cmd.OutOrStdout(), ps, format)
		},
	}
}

// GetConfig is the configuration for the get command.
type GetConfig struct {
	LayerConfig

	// Default is printed when the key has no value, if set.
	Default string
}

const defaultFlag = "default"

func RegisterGetFlags(cmd *cobra.Command, config *GetConfig) {
	RegisterLayerFlags(cmd.Flags(), &config.LayerConfig)
	cmd.Flags().StringVar(&config.Default, defaultFlag, "", "value printed when the key is unknown")
}

func NewGetCommand(programName string, config *GetConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "get KEY",
		Short:   "print the single value of a key",
		PreRunE: DefaultPreRunE(programName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := config.Complete()
			if err != nil {
				return err
			}

			var value string
			if cmd.Flags().Changed(defaultFlag) {
				value, err = ps.GetValueOrDefault(args[0], config.Default)
			} else {
				value, err = ps.GetValue(args[0])
			}
			if err != nil {
				if iaerr, ok := propertyset.AsInvalidArgumentError(err); ok {
					event := log.Debug()
					for k, v := range finerrors.CombineMetadata(iaerr, map[string]string{"command": "get"}) {
						event = event.Str(k, v)
					}
					event.Msg("lookup failed")
				}
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), value+"\n")
			return err
		},
	}
}
