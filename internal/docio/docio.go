// Package docio reads and writes docstring documents as JSON or YAML. The
// wire form is a flat, snake_case projection of the docstring model with a
// "kind" discriminator on each fragment, so documents survive a decode and
// re-encode without loss.
package docio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/docfmt/pkg/docstring"
)

// Format selects the interchange encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format token case-insensitively. "yml" is accepted
// as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
	}
}

// document is the wire form of docstring.Docstring.
type document struct {
	Style                      string     `json:"style,omitempty" yaml:"style,omitempty"`
	ShortDescription           string     `json:"short_description,omitempty" yaml:"short_description,omitempty"`
	LongDescription            string     `json:"long_description,omitempty" yaml:"long_description,omitempty"`
	BlankAfterShortDescription bool       `json:"blank_after_short_description,omitempty" yaml:"blank_after_short_description,omitempty"`
	BlankAfterLongDescription  bool       `json:"blank_after_long_description,omitempty" yaml:"blank_after_long_description,omitempty"`
	Meta                       []fragment `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// fragment is the wire form of one metadata fragment. All variants share
// this shape; Kind says which of the optional fields are meaningful.
type fragment struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Args        []string `json:"args,omitempty" yaml:"args,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	ArgName     string   `json:"arg_name,omitempty" yaml:"arg_name,omitempty"`
	TypeName    string   `json:"type_name,omitempty" yaml:"type_name,omitempty"`
	IsOptional  *bool    `json:"is_optional,omitempty" yaml:"is_optional,omitempty"`
	Default     string   `json:"default,omitempty" yaml:"default,omitempty"`
	IsGenerator bool     `json:"is_generator,omitempty" yaml:"is_generator,omitempty"`
	ReturnName  string   `json:"return_name,omitempty" yaml:"return_name,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Snippet     string   `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// Encode writes d to w in the given format.
func Encode(w io.Writer, d *docstring.Docstring, f Format) error {
	doc := toWire(d)

	switch f {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode document to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode document to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("flush YAML document: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (expected json or yaml)", f)
	}
	return nil
}

// Decode reads one document from r in the given format.
func Decode(r io.Reader, f Format) (*docstring.Docstring, error) {
	var doc document

	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode JSON document: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q (expected json or yaml)", f)
	}

	return fromWire(doc)
}

func toWire(d *docstring.Docstring) document {
	doc := document{
		ShortDescription:           d.ShortDescription,
		LongDescription:            d.LongDescription,
		BlankAfterShortDescription: d.BlankAfterShortDescription,
		BlankAfterLongDescription:  d.BlankAfterLongDescription,
	}
	if s := d.Style.String(); s != "unknown" {
		doc.Style = s
	}
	for _, m := range d.Meta {
		doc.Meta = append(doc.Meta, fragmentToWire(m))
	}
	return doc
}

func fragmentToWire(m docstring.Meta) fragment {
	base := m.Base()
	fr := fragment{
		Kind:        string(m.Kind()),
		Args:        base.Args,
		Description: base.Description,
	}

	switch v := m.(type) {
	case *docstring.Param:
		fr.ArgName = v.ArgName
		fr.TypeName = v.TypeName
		fr.IsOptional = v.IsOptional
		fr.Default = v.Default
	case *docstring.Returns:
		fr.TypeName = v.TypeName
		fr.IsGenerator = v.IsGenerator
		fr.ReturnName = v.ReturnName
	case *docstring.Raises:
		fr.TypeName = v.TypeName
	case *docstring.Deprecated:
		fr.Version = v.Version
	case *docstring.Example:
		fr.Snippet = v.Snippet
	case *docstring.Note:
		fr.Snippet = v.Snippet
	}
	return fr
}

func fromWire(doc document) (*docstring.Docstring, error) {
	d := &docstring.Docstring{
		ShortDescription:           doc.ShortDescription,
		LongDescription:            doc.LongDescription,
		BlankAfterShortDescription: doc.BlankAfterShortDescription,
		BlankAfterLongDescription:  doc.BlankAfterLongDescription,
	}

	if doc.Style != "" {
		style, err := docstring.ParseStyle(doc.Style)
		if err != nil {
			return nil, err
		}
		d.Style = style
	}

	for i, fr := range doc.Meta {
		m, err := fragmentFromWire(fr)
		if err != nil {
			return nil, fmt.Errorf("meta[%d]: %w", i, err)
		}
		d.Add(m)
	}
	return d, nil
}

func fragmentFromWire(fr fragment) (docstring.Meta, error) {
	base := docstring.MetaBase{Args: fr.Args, Description: fr.Description}

	switch docstring.Kind(fr.Kind) {
	case docstring.KindParam:
		return &docstring.Param{
			MetaBase:   base,
			ArgName:    fr.ArgName,
			TypeName:   fr.TypeName,
			IsOptional: fr.IsOptional,
			Default:    fr.Default,
		}, nil
	case docstring.KindReturns:
		return &docstring.Returns{
			MetaBase:    base,
			TypeName:    fr.TypeName,
			IsGenerator: fr.IsGenerator,
			ReturnName:  fr.ReturnName,
		}, nil
	case docstring.KindRaises:
		return &docstring.Raises{MetaBase: base, TypeName: fr.TypeName}, nil
	case docstring.KindDeprecated:
		return &docstring.Deprecated{MetaBase: base, Version: fr.Version}, nil
	case docstring.KindExample:
		return &docstring.Example{MetaBase: base, Snippet: fr.Snippet}, nil
	case docstring.KindNote:
		return &docstring.Note{MetaBase: base, Snippet: fr.Snippet}, nil
	default:
		return nil, fmt.Errorf("unknown fragment kind %q", fr.Kind)
	}
}
