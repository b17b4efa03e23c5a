package engine

import "fmt"

// UsageError indicates a command was given too few arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// ArgError indicates an argument could not be read.
type ArgError struct {
	Arg  string
	Want string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("can't read %q, expected %s", e.Arg, e.Want)
}
