package native

import "errors"

// errUnavailable is returned by the unavailable Capability's SIMD methods;
// callers are expected to check Loaded() first and never reach these.
var errUnavailable = errors.New("native: no acceleration library loaded")
