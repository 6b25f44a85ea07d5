/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"fmt"
	"strings"
)

//
// The Error interface
//

// Error is an fls error.
type Error interface {
	error
	ExitCode() int
}

//
// CompileTime
//

// CompileTime is an error used to represent any compile-time (lex or parse)
// error.
type CompileTime struct {
	// Message contains a user-friendly error message.
	Message string

	// FileName is the name of the file where the error was detected.
	FileName string

	// Line contains the line number where the error was detected.
	Line int

	// Lexeme contains the lexeme where the error was detected.
	Lexeme string
}

// NewCompileTime is a handy way to create a CompileTime error at some
// specific line of code.
func NewCompileTime(fileName string, line int, format string, a ...any) *CompileTime {
	return &CompileTime{
		Message:  fmt.Sprintf(format, a...),
		FileName: fileName,
		Line:     line,
	}
}

// NewCompileTimeWithoutLine is a handy way to create a CompileTime error that
// is not related with a specific line of code.
func NewCompileTimeWithoutLine(fileName, format string, a ...any) *CompileTime {
	return &CompileTime{
		Message:  fmt.Sprintf(format, a...),
		FileName: fileName,
		Line:     -1,
	}
}

// Error converts the CompileTime to a string. Fulfills the error interface.
func (e *CompileTime) Error() string {
	line := ""
	if e.Line > 0 {
		line = fmt.Sprintf(":%v", e.Line)
	}
	at := ""
	if e.Lexeme != "" {
		if e.Lexeme == "end of file" {
			at = fmt.Sprintf(" at %v", e.Lexeme)
		} else {
			at = fmt.Sprintf(" at `%v`", e.Lexeme)
		}
	}
	return fmt.Sprintf("%v%v%v: %v", e.FileName, line, at, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *CompileTime) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// CompileTimeCollection
//

// CompileTimeCollection is a collection of CompileTime errors, gathered by
// panic-mode recovery so a single compile catches more than one mistake.
type CompileTimeCollection struct {
	// Errors is the collection of CompileTime errors.
	Errors []*CompileTime
}

// Add adds a new error to the collection of errors. A no-op if err is nil.
func (e *CompileTimeCollection) Add(err *CompileTime) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

// AddMany adds all the errors in errs to e.
func (e *CompileTimeCollection) AddMany(errs *CompileTimeCollection) {
	e.Errors = append(e.Errors, errs.Errors...)
}

// IsEmpty checks if this CompileTimeCollection is empty (i.e., if it is a
// collection of errors without any errors inside it).
func (e *CompileTimeCollection) IsEmpty() bool {
	return len(e.Errors) == 0
}

// Error converts the CompileTimeCollection to a string -- a multiline string
// at that, with one error per line. Fulfills the error interface.
func (e *CompileTimeCollection) Error() string {
	s := strings.Builder{}
	s.WriteString("Compile-time errors:\n")
	for _, err := range e.Errors {
		s.WriteString(err.Error())
		s.WriteByte('\n')
	}
	return s.String()
}

// ExitCode fulfills the Error interface.
func (e *CompileTimeCollection) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// BadUsage
//

// BadUsage is an error that happened because the fls tool was called in the
// wrong way (like incorrect command-line arguments, or a nonexistent source
// file).
type BadUsage struct {
	// Message contains a message explaining what happened.
	Message string
}

// NewBadUsage is a handy way to create a BadUsage error.
func NewBadUsage(format string, a ...any) *BadUsage {
	return &BadUsage{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the BadUsage to a string. Fulfills the error interface.
func (e *BadUsage) Error() string {
	return "Usage error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *BadUsage) ExitCode() int {
	return StatusCodeBadUsage
}

//
// Runtime
//

// Runtime is an error that happened while running compiled FLS code: an
// uncaught fault such as a type mismatch, division by zero, undefined
// variable, or an out-of-range subscript.
type Runtime struct {
	// Message contains a message explaining what happened.
	Message string

	// Trace holds one line per active call frame, innermost first, in the
	// style produced by the VM's call-stack unwind.
	Trace []string
}

// NewRuntime is a handy way to create a Runtime error.
func NewRuntime(format string, a ...any) *Runtime {
	return &Runtime{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the Runtime to a string. Fulfills the error interface.
func (e *Runtime) Error() string {
	s := "Runtime error: " + e.Message
	for _, line := range e.Trace {
		s += "\n    " + line
	}
	return s
}

// ExitCode fulfills the Error interface.
func (e *Runtime) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// PreflightAbort
//

// PreflightAbort is a Runtime error raised by the preflight profiler instead
// of by the program itself: a suspected infinite loop, a timeout, or a
// recursion depth that looks runaway. It carries the same exit code as any
// other Runtime error -- preflight is a diagnostic lens on execution, not a
// different kind of failure -- but keeps a distinct type so callers can tell
// the two apart.
type PreflightAbort struct {
	Runtime

	// Reason names which preflight heuristic fired: "potential infinite
	// loop", "timeout exceeded" or "excessive recursion depth".
	Reason string
}

// NewPreflightAbort is a handy way to create a PreflightAbort error.
func NewPreflightAbort(reason, format string, a ...any) *PreflightAbort {
	return &PreflightAbort{
		Runtime: Runtime{Message: fmt.Sprintf(format, a...)},
		Reason:  reason,
	}
}

// Error converts the PreflightAbort to a string. Fulfills the error
// interface.
func (e *PreflightAbort) Error() string {
	return "Preflight abort (" + e.Reason + "): " + e.Message
}

//
// ICE
//

// ICE is an Internal Compiler Error. Used to report some unexpected issue
// with the compiler or VM -- like when we find it is on a state it wasn't
// expected to be. It's always a bug.
type ICE struct {
	// Message contains some message to contextualize the situation in which
	// the error happened. Hopefully will be good enough to help fixing the
	// bug.
	Message string
}

// NewICE is a handy way to create an ICE.
func NewICE(format string, a ...any) *ICE {
	return &ICE{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ICE to a string. Fulfills the error interface.
func (e *ICE) Error() string {
	return "Internal Error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *ICE) ExitCode() int {
	return StatusCodeICE
}
