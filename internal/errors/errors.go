// Package errors is the single import for error construction and inspection.
// Wrapping goes through pkg/errors so every annotated error carries a stack;
// inspection goes through the standard library.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

//nolint:gochecknoglobals
var (
	New       = stderrors.New
	Is        = stderrors.Is
	As        = stderrors.As
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
	Cause     = pkgerrors.Cause
)

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// StackTrace renders err with the frames recorded by Wrap, WithStack or Errorf,
// or "" for nil.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
