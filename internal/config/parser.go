package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported document formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// unmarshalParser decodes a document straight into a generic mapping. Keys
// are kept exactly as written.
type unmarshalParser struct {
	format    string
	unmarshal func(data []byte, v interface{}) error
}

// NewParser returns a Parser for the given format (yaml, json or toml).
// Unknown formats fall back to YAML.
func NewParser(format string) Parser {
	switch format {
	case FormatJSON:
		return &unmarshalParser{format: FormatJSON, unmarshal: json.Unmarshal}
	case FormatTOML:
		return &unmarshalParser{format: FormatTOML, unmarshal: toml.Unmarshal}
	default:
		return &unmarshalParser{format: FormatYAML, unmarshal: yaml.Unmarshal}
	}
}

func (p *unmarshalParser) Format() string {
	return p.format
}

func (p *unmarshalParser) Parse(data []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := p.unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// parserFor picks a parser from the file extension, falling back to YAML
func parserFor(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewParser(FormatJSON)
	case ".toml":
		return NewParser(FormatTOML)
	default:
		return NewParser(FormatYAML)
	}
}
