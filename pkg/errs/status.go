/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeCompileTimeError indicates a compile-time (lex or parse)
	// error.
	StatusCodeCompileTimeError = 65

	// StatusCodeRuntimeError indicates an uncaught runtime error, including a
	// preflight abort.
	StatusCodeRuntimeError = 70

	// StatusCodeBadUsage indicates some user error in the usage of the fls
	// tool (e.g., passing the wrong number of arguments, or a source file
	// that doesn't exist).
	StatusCodeBadUsage = 64

	// StatusCodeICE indicates an Internal Compiler Error.
	StatusCodeICE = 125
)
