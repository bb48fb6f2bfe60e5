package expr

import "errors"

// ErrZeroScale is returned by Div when dividing an Expr by the zero
// fraction.
var ErrZeroScale = errors.New("expr: division by zero scale factor")
