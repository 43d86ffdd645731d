package eval

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when the right operand of an integer
// division evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// UndefinedVariableError is returned when a variable referenced by
// the expression has no binding in the evaluation context.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %s is not defined", e.Name)
}
