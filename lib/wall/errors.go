package wall

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when the wall declarations are invalid.
	ErrConfiguration = errors.New("wall: invalid configuration")
	// ErrUnknownVariable is returned when a wall names a variable which does
	// not exist.
	ErrUnknownVariable = errors.New("wall: variable does not exist")
	// ErrInvalidVariableStyle is returned when a wall names a variable which
	// is not equal-style.
	ErrInvalidVariableStyle = errors.New("wall: variable is invalid style")
	// ErrUnbound is returned by Step if BindVariables has not succeeded.
	ErrUnbound = errors.New("wall: variables have not been bound")
)

// ConfigError describes a problem with the wall declarations. It wraps
// ErrConfiguration.
type ConfigError struct {
	// Arg is the index of the offending token, or -1 if the problem is not
	// tied to a single token.
	Arg int
	Msg string
}

func (e *ConfigError) Error() string {
	if e.Arg < 0 {
		return fmt.Sprintf("Illegal wall command: %s", e.Msg)
	}
	return fmt.Sprintf("Illegal wall command (argument %d): %s", e.Arg+1, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

func configErrorf(arg int, format string, a ...interface{}) error {
	return &ConfigError{arg, fmt.Sprintf(format, a...)}
}

// VariableError describes a wall whose variable could not be bound. It wraps
// ErrUnknownVariable or ErrInvalidVariableStyle.
type VariableError struct {
	Wall, Name string
	Err        error
}

func (e *VariableError) Error() string {
	switch e.Err {
	case ErrUnknownVariable:
		return fmt.Sprintf("Variable name '%s' for wall %s does not exist.",
			e.Name, e.Wall)
	case ErrInvalidVariableStyle:
		return fmt.Sprintf("Variable '%s' for wall %s is invalid style: "+
			"only equal-style variables can be used.", e.Name, e.Wall)
	}
	return fmt.Sprintf("Variable '%s' for wall %s: %s",
		e.Name, e.Wall, e.Err.Error())
}

func (e *VariableError) Unwrap() error { return e.Err }
