/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package report prints the source-level diagnostics shown to the end user
// for both compile-time and runtime errors: a colored header, a module:line
// locator, the offending source line, and a caret-and-tildes underline
// spanning the offending token.
package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	colorReset    = "\033[0m"
	colorBoldRed  = "\033[1;31m"
	colorBlue     = "\033[34m"
	colorBoldCyan = "\033[1;36m"
)

// CompileError prints a compile-time diagnostic to out: module, line,
// lexeme (for the underline width) and message.
func CompileError(out io.Writer, source, module string, line int, lexeme, message string) {
	header(out, "Compile Error", message)
	locator(out, module, line)
	underline(out, source, line, lexeme)
}

// RuntimeError prints a runtime diagnostic to out, followed by the
// call-frame trace (innermost frame first). source may be empty if the
// original file could not be re-read, in which case a plain fallback line
// is printed instead of the underlined excerpt.
func RuntimeError(out io.Writer, source, module string, line int, message string, trace []string) {
	header(out, "Runtime Error", message)
	locator(out, module, line)
	if source == "" {
		fmt.Fprintf(out, "    (source unavailable)\n")
	} else {
		underline(out, source, line, "")
	}
	for _, frame := range trace {
		fmt.Fprintf(out, "    %s%s%s\n", colorBoldCyan, frame, colorReset)
	}
}

func header(out io.Writer, kind, message string) {
	fmt.Fprintf(out, "%s%s%s: %s\n", colorBoldRed, kind, colorReset, message)
}

func locator(out io.Writer, module string, line int) {
	fmt.Fprintf(out, "%s--> %s:%d%s\n", colorBlue, module, line, colorReset)
}

// underline prints the numbered source line, followed by a line of spaces
// and a caret-and-tildes marker under lexeme (or just a single caret if
// lexeme is empty), terminated by " Here".
func underline(out io.Writer, source string, line int, lexeme string) {
	text, col := sourceLine(source, line, lexeme)
	lineNo := fmt.Sprintf("%d", line)
	fmt.Fprintf(out, " %s | %s\n", lineNo, text)

	pad := strings.Repeat(" ", len(lineNo)+4+col)
	mark := "^"
	if n := len(lexeme); n > 1 {
		mark = "^" + strings.Repeat("~", n-1)
	}
	fmt.Fprintf(out, "%s%s%s%s Here\n", pad, colorBoldRed, mark, colorReset)
}

// sourceLine returns the text of the given 1-based line number of source,
// and the 0-based column at which lexeme starts on that line (0 if lexeme
// is empty or not found).
func sourceLine(source string, line int, lexeme string) (string, int) {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return "", 0
	}
	text := strings.TrimRight(lines[line-1], "\r")
	col := 0
	if lexeme != "" {
		if idx := strings.Index(text, lexeme); idx >= 0 {
			col = idx
		}
	}
	return text, col
}
