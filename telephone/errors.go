package telephone

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShape is returned by FromAny for host values of a type the
// field does not understand.
var ErrUnsupportedShape = errors.New("telephone: unsupported value shape")

// DecodeError reports stored data that is not a valid serialized value. It
// signals corrupt storage, not bad user input.
type DecodeError struct {
	Stored string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("telephone: decode stored value: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
