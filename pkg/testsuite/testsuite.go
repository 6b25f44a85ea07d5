/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package testsuite runs fls's end-to-end test suite: a directory tree of
// TOML fixture files, each pairing a source script with its expected
// stdout, exit code and (for failure cases) expected error message pattern
// -- run through the real Interpret entry point, the same one cmd/fls uses.
package testsuite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/flslang/fls/pkg/natives"
	"github.com/flslang/fls/pkg/vm"
)

// config mirrors one test case's test.toml file.
type config struct {
	// Source is the script file to run, relative to the test case's own
	// directory.
	Source string `toml:"source"`

	// Preflight runs the case with the preflight profiler enabled.
	Preflight bool `toml:"preflight"`

	// Output lists the expected stdout lines, in order.
	Output []string `toml:"output"`

	// ExitCode is the expected process exit code: 0, 65, 70 or 64.
	ExitCode int `toml:"exit_code"`

	// ErrorMessage, if set, is a regexp the error's text must match,
	// whatever ExitCode is; a case that sets it does not have its Output
	// checked.
	ErrorMessage string `toml:"error_message"`
}

// ExecuteSuite walks suitePath for test.toml fixture files and runs each
// one, returning the first failure encountered.
func ExecuteSuite(suitePath string) error {
	return filepath.WalkDir(suitePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(path) != "test.toml" {
			return nil
		}
		return runCase(path)
	})
}

func runCase(configPath string) error {
	caseDir := filepath.Dir(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}
	if cfg.Source == "" {
		cfg.Source = "main.fls"
	}

	sourcePath := filepath.Join(caseDir, cfg.Source)
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	var out bytes.Buffer
	runErr := vm.Interpret(sourcePath, string(source), &out, nil, cfg.Preflight, natives.Register)

	gotExitCode := 0
	if runErr != nil {
		type exitCoder interface{ ExitCode() int }
		if ec, ok := runErr.(exitCoder); ok {
			gotExitCode = ec.ExitCode()
		} else {
			gotExitCode = -1
		}
	}
	if gotExitCode != cfg.ExitCode {
		return fmt.Errorf("%s: expected exit code %d, got %d (error: %v)", caseDir, cfg.ExitCode, gotExitCode, runErr)
	}

	if cfg.ErrorMessage != "" {
		if runErr == nil {
			return fmt.Errorf("%s: expected an error matching %q, got none", caseDir, cfg.ErrorMessage)
		}
		re, err := regexp.Compile(cfg.ErrorMessage)
		if err != nil {
			return fmt.Errorf("%s: bad ErrorMessage regexp: %w", caseDir, err)
		}
		if !re.MatchString(runErr.Error()) {
			return fmt.Errorf("%s: error %q does not match %q", caseDir, runErr.Error(), cfg.ErrorMessage)
		}
		return nil
	}

	gotLines := splitLines(out.String())
	if len(gotLines) != len(cfg.Output) {
		return fmt.Errorf("%s: expected %d output lines, got %d (%q)", caseDir, len(cfg.Output), len(gotLines), out.String())
	}
	for i, want := range cfg.Output {
		if gotLines[i] != want {
			return fmt.Errorf("%s: output line %d: expected %q, got %q", caseDir, i, want, gotLines[i])
		}
	}
	return nil
}

// splitLines splits s on newlines, dropping a single trailing empty element
// caused by a final newline -- so a program that prints exactly N lines
// produces an N-element slice, not N+1.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
