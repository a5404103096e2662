package errors

// ValidationError represents a validation error with a field and message
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every field failure of one schema evaluation
type ValidationErrors struct {
	Model  string
	Errors []*ValidationError
}

// ParseError represents a configuration document that is not well-formed
type ParseError struct {
	Path   string
	Format string
	Cause  error
}

// ProvisionError represents a failure to create an output directory
type ProvisionError struct {
	Path  string
	Cause error
}
