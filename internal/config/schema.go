package config

import (
	"math"
	"reflect"
	"sort"
	"strings"

	apperrors "github.com/consensuslabs/model-builder/internal/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Kind is the value shape a Field accepts
type Kind int

const (
	// KindText accepts strings and scalars that read as text
	KindText Kind = iota
	// KindInteger accepts integers, integral floats and numeric strings
	KindInteger
	// KindObject accepts a mapping (or a Mapper) evaluated against Nested
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Field is one declarative rule of a Schema
type Field struct {
	Key      string
	Kind     Kind
	Required bool
	Default  interface{}
	Nested   *Schema
}

// Schema describes the fields of one configuration model
type Schema struct {
	Model  string
	Fields []Field
}

// SchemaOption adjusts how a Schema is evaluated
type SchemaOption func(*schemaOptions)

type schemaOptions struct {
	strict bool
}

// WithStrictFields rejects keys the schema does not declare. By default they
// are ignored.
func WithStrictFields() SchemaOption {
	return func(o *schemaOptions) {
		o.strict = true
	}
}

func newSchemaOptions(opts []SchemaOption) schemaOptions {
	var o schemaOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var baseSchema = &Schema{
	Model: "BaseConfig",
	Fields: []Field{
		{Key: "name", Kind: KindText, Required: true},
		{Key: "seed", Kind: KindInteger, Default: DefaultSeed},
		{Key: "output_dir", Kind: KindText, Default: DefaultOutputDir},
	},
}

var pipelineSchema = &Schema{
	Model: "PipelineConfig",
	Fields: []Field{
		{Key: "base", Kind: KindObject, Required: true, Nested: baseSchema},
	},
}

// apply evaluates raw against the schema and returns a normalized mapping that
// holds exactly the declared fields, coerced and defaulted.
func (s *Schema) apply(raw map[string]interface{}, opts schemaOptions) (map[string]interface{}, error) {
	errs := apperrors.NewValidationErrors(s.Model)
	normalized := s.evaluate(raw, "", opts, errs)
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *Schema) evaluate(raw map[string]interface{}, prefix string, opts schemaOptions, errs *apperrors.ValidationErrors) map[string]interface{} {
	out := make(map[string]interface{}, len(s.Fields))

	for _, f := range s.Fields {
		path := fieldPath(prefix, f.Key)
		value, ok := raw[f.Key]
		if !ok {
			if f.Required {
				errs.Add(path, apperrors.ErrMsgFieldRequired)
			} else {
				out[f.Key] = f.Default
			}
			continue
		}
		if value == nil {
			errs.Add(path, apperrors.ErrMsgNotNull)
			continue
		}

		switch f.Kind {
		case KindText:
			text, ok := coerceText(value)
			if !ok {
				errs.Add(path, apperrors.ErrMsgInvalidText)
				continue
			}
			out[f.Key] = text
		case KindInteger:
			n, ok := coerceInteger(value)
			if !ok {
				errs.Add(path, apperrors.ErrMsgInvalidInteger)
				continue
			}
			out[f.Key] = n
		case KindObject:
			m, ok := coerceMapping(value)
			if !ok {
				errs.Add(path, apperrors.ErrMsgInvalidMapping)
				continue
			}
			if f.Nested != nil {
				m = f.Nested.evaluate(m, path, opts, errs)
			}
			out[f.Key] = m
		}
	}

	if opts.strict {
		var extras []string
		for key := range raw {
			if !s.declares(key) {
				extras = append(extras, key)
			}
		}
		sort.Strings(extras)
		for _, key := range extras {
			errs.Add(fieldPath(prefix, key), apperrors.ErrMsgExtraField)
		}
	}

	return out
}

func (s *Schema) declares(key string) bool {
	for _, f := range s.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

func fieldPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// coerceText accepts strings and numeric scalars. Structures and booleans are
// never turned into text.
func coerceText(value interface{}) (string, bool) {
	switch value.(type) {
	case bool, map[string]interface{}, map[interface{}]interface{}, []interface{}, Mapper:
		return "", false
	}
	text, err := cast.ToStringE(value)
	return text, err == nil
}

func coerceInteger(value interface{}) (int, bool) {
	switch v := value.(type) {
	case bool:
		return 0, false
	case float64:
		return integralFloat(v)
	case float32:
		return integralFloat(float64(v))
	case string:
		value = strings.TrimSpace(v)
	}
	n, err := cast.ToIntE(value)
	return n, err == nil
}

func integralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

func coerceMapping(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, val := range v {
			k, err := cast.ToStringE(key)
			if err != nil {
				return nil, false
			}
			m[k] = val
		}
		return m, true
	case Mapper:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		return v.ToMap(), true
	}
	return nil, false
}

// decode copies a normalized mapping into its struct
func decode(normalized map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(normalized)
}
