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
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/blinklabs-io/plutus-ledger-api/registry"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/encoding/protojson"
)

type convertFlags struct {
	flagset  *pflag.FlagSet
	typeName string
	from     string
	to       string
	input    string
	maxDepth int
	strict   bool
}

func newConvertFlags() *convertFlags {
	f := &convertFlags{
		flagset: pflag.NewFlagSet("convert", pflag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.typeName,
		"type",
		"PlutusData",
		"registered type to decode the input as (see the types subcommand)",
	)
	f.flagset.StringVar(&f.from, "from", formatCbor, "input format: cbor, json or yaml")
	f.flagset.StringVar(
		&f.to,
		"to",
		formatJSON,
		"output format: cbor, json, yaml, diag, tree or utxorpc",
	)
	f.flagset.StringVar(&f.input, "input", "", "input file (defaults to stdin)")
	f.flagset.IntVar(&f.maxDepth, "max-depth", 0, "maximum nesting depth of CBOR input")
	f.flagset.BoolVar(&f.strict, "strict", false, "reject non-canonical CBOR input")
	return f
}

func (f *convertFlags) decodeOptions() []plutusdata.DecodeOption {
	opts := []plutusdata.DecodeOption{plutusdata.WithStrict(f.strict)}
	if f.maxDepth > 0 {
		opts = append(opts, plutusdata.WithMaxDepth(f.maxDepth))
	}
	return opts
}

func runConvert(env *cmdEnv, args []string) error {
	f := newConvertFlags()
	f.flagset.SetOutput(env.stderr)
	if err := f.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	schema, ok := registry.Lookup(f.typeName)
	if !ok {
		return fmt.Errorf("unknown type: %s", f.typeName)
	}
	input, err := readInput(env, f.input)
	if err != nil {
		return err
	}
	env.logger.Debug(
		"decoding input",
		"type", f.typeName,
		"from", f.from,
		"bytes", len(input),
	)
	value, err := decodeValue(schema, f.from, input, f.decodeOptions()...)
	if err != nil {
		return err
	}
	env.logger.Debug("encoding output", "type", f.typeName, "to", f.to)
	return writeValue(env, schema, f.to, value)
}

func writeValue(env *cmdEnv, schema registry.Schema, format string, value any) error {
	switch format {
	case formatJSON, formatYAML:
		tree, err := schema.ToJSON(value)
		if err != nil {
			return err
		}
		if format == formatJSON {
			return writeJSON(env.stdout, tree)
		}
		return writeYAML(env.stdout, tree)
	}
	d, err := schema.ToData(value)
	if err != nil {
		return err
	}
	switch format {
	case formatCbor:
		cborData, err := plutusdata.Encode(d)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.stdout, hex.EncodeToString(cborData))
		return err
	case formatDiag:
		_, err := fmt.Fprintln(env.stdout, d.String())
		return err
	case formatTree:
		_, err := fmt.Fprint(env.stdout, dataTree(d).String())
		return err
	case formatUtxorpc:
		pd, err := plutusdata.ToUtxorpc(d)
		if err != nil {
			return err
		}
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(pd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.stdout, string(out))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
