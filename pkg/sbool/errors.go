package sbool

import (
	"errors"
	"fmt"
)

// ErrNotFlavored is returned when a value that is neither a Truth nor a Lie
// is asked for its flavor. It signals a programming misuse, not a runtime
// condition to recover from, and wraps errors.ErrUnsupported.
var ErrNotFlavored = fmt.Errorf("value is not a flavored boolean: %w", errors.ErrUnsupported)
