package errors

// Error message constants
const (
	ErrMsgFieldRequired  = "field required"
	ErrMsgInvalidText    = "input should be a valid string"
	ErrMsgInvalidInteger = "input should be a valid integer"
	ErrMsgInvalidMapping = "input should be a valid mapping"
	ErrMsgExtraField     = "extra inputs are not permitted"
	ErrMsgNotNull        = "input should not be null"
)
