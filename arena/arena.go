// Package arena provides backing memory for frame pools: concrete
// implementations of the frame-number-to-bytes mapping that a pool's
// platform layer must supply. Frame numbers index the arena's flat space
// starting at 0.
package arena

import "errors"

// ErrUnsupported ...
var ErrUnsupported = errors.New("arena: anonymous mappings not supported on this platform")
