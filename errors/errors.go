// Package errors provides a printf-style error constructor that keeps its
// args available for unwrapping.
package errors

import (
	"fmt"
)

type err struct {
	msg  string
	args []interface{}
}

func (err err) Error() string {
	return fmt.Sprintf(err.msg, err.args...)
}

func (err err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New returns an error whose message is built from a format string. If any
// arg is itself an error, it is exposed via Unwrap.
func New(msg string, args ...interface{}) error {
	return err{msg, args}
}
