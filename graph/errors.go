package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for out-of-range node ids and self-loop
// Connect calls. Callers should branch with errors.Is(err, ErrInvalidArgument);
// the module never returns a distinct out-of-memory error (see DESIGN.md) -
// Go has no portable way to distinguish an allocation failure from any other
// fatal condition, so Build follows host convention and panics on allocation
// failure instead.
var ErrInvalidArgument = errors.New("graph: invalid argument")

// builderErrorf wraps err with method and parameter context so the message
// carries what was actually rejected, while errors.Is(result, err) still
// holds for callers that branch on the sentinel.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
