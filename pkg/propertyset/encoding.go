package propertyset

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// String returns the content of the property set in the form
// {key1=[value1, value2], key2=[value3]}. It is meant for diagnostics and
// cannot be parsed back.
func (ps *PropertySet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for key, values := range ps.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false

		sb.WriteString(key)
		sb.WriteString("=[")
		sb.WriteString(strings.Join(values, ", "))
		sb.WriteByte(']')
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON encodes the property set as an object of string arrays, keeping
// the key order.
func (ps *PropertySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, values := range ps.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		encodedValues, err := json.Marshal(values)
		if err != nil {
			return nil, err
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedValues)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the property set as a mapping of sequences, keeping the
// key order.
func (ps *PropertySet) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, values := range ps.All() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, value := range values {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			seq,
		)
	}
	return node, nil
}

// MarshalZerologObject implements zerolog object marshalling.
func (ps *PropertySet) MarshalZerologObject(e *zerolog.Event) {
	for key, values := range ps.All() {
		e.Strs(key, values)
	}
}
