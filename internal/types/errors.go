package types

import "errors"

// ErrUnknownSeverity is returned when a finding carries a severity
// outside the four canonical values.
var ErrUnknownSeverity = errors.New("unknown severity")
