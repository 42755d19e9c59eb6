package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidShare       = errors.New("share must be a whole non-negative number")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrEmptyWillReference = errors.New("will reference is empty")
)
