package gradient

import "errors"

// errNonInvertible is returned by SetTransformation when the caller
// supplies a singular matrix (spec §7: "invalid matrix for
// set_transformation (non-invertible); propagated up to the caller").
var errNonInvertible = errors.New("gradient: transformation matrix is not invertible")
