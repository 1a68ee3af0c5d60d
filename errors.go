package glboot

import (
	"errors"
	"fmt"
)

// ErrHandleUnavailable is returned when the device hands out a zero identifier.
var ErrHandleUnavailable = errors.New("glboot: graphics object unavailable")

// SourceError reports a shader source file that could not be read.
type SourceError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read %s shader %q: %v", e.Stage, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// CompileError carries the driver's diagnostic for a failed compilation.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the driver's diagnostic for a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking failed: " + e.Log
}

// emptyLog stands in for a diagnostic the driver left blank.
const emptyLog = "(driver returned no info log)"
