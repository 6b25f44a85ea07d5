/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"errors"
	"fmt"
	"os"
)

// ReportAndExit reports the error err to the end user and exits with the
// appropriate status code. It's fine if err is nil, we handle this case
// here.
func ReportAndExit(err error) {
	badUsageError := &BadUsage{}
	compTimeError := &CompileTime{}
	compTimeColl := &CompileTimeCollection{}
	preflightError := &PreflightAbort{}
	runtimeError := &Runtime{}
	iceErr := &ICE{}
	switch {
	case err == nil:
		os.Exit(StatusCodeSuccess)

	case errors.As(err, &badUsageError):
		fmt.Fprintf(os.Stderr, "%v\n", badUsageError)
		os.Exit(StatusCodeBadUsage)

	case errors.As(err, &compTimeColl):
		fmt.Fprintf(os.Stderr, "%v", compTimeColl)
		os.Exit(StatusCodeCompileTimeError)

	case errors.As(err, &compTimeError):
		fmt.Fprintf(os.Stderr, "%v\n", compTimeError)
		os.Exit(StatusCodeCompileTimeError)

	case errors.As(err, &preflightError):
		fmt.Fprintf(os.Stderr, "%v\n", preflightError)
		os.Exit(StatusCodeRuntimeError)

	case errors.As(err, &runtimeError):
		fmt.Fprintf(os.Stderr, "%v\n", runtimeError)
		os.Exit(StatusCodeRuntimeError)

	case errors.As(err, &iceErr):
		fmt.Fprintf(os.Stderr, "%v\n", iceErr)
		os.Exit(StatusCodeICE)

	default:
		fmt.Fprintf(os.Stderr, "Internal Error: unexpected error of type %T: %v\n", err, err)
		os.Exit(StatusCodeICE)
	}
}
