package config

// Service defines the interface for configuration operations
type Service interface {
	Load(path string) (*PipelineConfig, error)
}

// Parser turns the raw bytes of a configuration document into a generic
// nested mapping. It knows nothing about the schema.
type Parser interface {
	Parse(data []byte) (map[string]interface{}, error)
	Format() string
}

// Mapper is implemented by already-built values that can stand in for a raw
// mapping wherever a nested schema is expected.
type Mapper interface {
	ToMap() map[string]interface{}
}
