// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

var errNoSubcommand = errors.New(
	"you must specify a subcommand (convert, hash, address or types)",
)

type globalFlags struct {
	flagset *pflag.FlagSet
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: pflag.NewFlagSet("plutus-ledger", pflag.ContinueOnError),
	}
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	// Flags after the subcommand belong to the subcommand
	f.flagset.SetInterspersed(false)
	return f
}

// cmdEnv is what a subcommand reads from and writes to
type cmdEnv struct {
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	f := newGlobalFlags()
	f.flagset.SetOutput(stderr)
	if err := f.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse command args: %w", err)
	}
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	env := &cmdEnv{
		logger: slog.New(
			slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
		),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	if f.flagset.NArg() == 0 {
		return errNoSubcommand
	}
	subArgs := f.flagset.Args()[1:]
	switch f.flagset.Arg(0) {
	case "convert":
		return runConvert(env, subArgs)
	case "hash":
		return runHash(env, subArgs)
	case "address":
		return runAddress(env, subArgs)
	case "types":
		return runTypes(env, subArgs)
	default:
		return fmt.Errorf("unknown subcommand: %s", f.flagset.Arg(0))
	}
}
