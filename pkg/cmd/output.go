package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/finkit/finkit/pkg/propertyset"
)

// OutputFormat is a format in which a property set can be printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var outputFormats = []string{string(OutputText), string(OutputJSON), string(OutputYAML)}

// ErrUnknownOutputFormat is returned for an output format that is not
// supported.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// Print writes the property set to w in the given format.
//
// The text format prints one key=value line per value, in the order of the
// property set, which can be fed back as a layer.
func Print(w io.Writer, ps *propertyset.PropertySet, format OutputFormat) error {
	switch format {
	case OutputText:
		for key, values := range ps.All() {
			for _, value := range values {
				if _, err := fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
					return err
				}
			}
		}
		return nil

	case OutputJSON:
		encoded, err := ps.MarshalJSON()
		if err != nil {
			return err
		}

		var indented bytes.Buffer
		if err := json.Indent(&indented, encoded, "", "  "); err != nil {
			return err
		}
		indented.WriteByte('\n')
		_, err = indented.WriteTo(w)
		return err

	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(ps); err != nil {
			return err
		}
		return encoder.Close()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
}
