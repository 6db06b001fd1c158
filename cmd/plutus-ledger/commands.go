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
	"strings"

	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/blinklabs-io/plutus-ledger-api/registry"
	"github.com/spf13/pflag"
)

type hashFlags struct {
	flagset  *pflag.FlagSet
	typeName string
	from     string
	input    string
}

func newHashFlags() *hashFlags {
	f := &hashFlags{
		flagset: pflag.NewFlagSet("hash", pflag.ContinueOnError),
	}
	f.flagset.StringVar(&f.typeName, "type", "PlutusData", "registered type of the input")
	f.flagset.StringVar(&f.from, "from", formatCbor, "input format: cbor, json or yaml")
	f.flagset.StringVar(&f.input, "input", "", "input file (defaults to stdin)")
	return f
}

// runHash prints the datum hash of the input
func runHash(env *cmdEnv, args []string) error {
	f := newHashFlags()
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
	value, err := decodeValue(schema, f.from, input)
	if err != nil {
		return err
	}
	d, err := schema.ToData(value)
	if err != nil {
		return err
	}
	hash, err := plutusdata.Hash(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.stdout, hex.EncodeToString(hash))
	return err
}

type addressFlags struct {
	flagset *pflag.FlagSet
	network string
	from    string
	input   string
}

func newAddressFlags() *addressFlags {
	f := &addressFlags{
		flagset: pflag.NewFlagSet("address", pflag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.network,
		"network",
		common.NetworkMainnet.Name,
		"network to encode the address for",
	)
	f.flagset.StringVar(&f.from, "from", formatJSON, "input format: json, yaml or bech32")
	f.flagset.StringVar(&f.input, "input", "", "input file (defaults to stdin)")
	return f
}

// runAddress converts an address between its JSON form and bech32
func runAddress(env *cmdEnv, args []string) error {
	f := newAddressFlags()
	f.flagset.SetOutput(env.stderr)
	if err := f.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	input, err := readInput(env, f.input)
	if err != nil {
		return err
	}
	if f.from == formatBech32 {
		addr, networkId, err := common.AddressFromBech32(strings.TrimSpace(string(input)))
		if err != nil {
			return fmt.Errorf("invalid bech32 address: %w", err)
		}
		env.logger.Debug("decoded address", "network_id", networkId)
		return writeJSON(env.stdout, addr.ToJSON())
	}
	network, ok := common.NetworkByName(f.network)
	if !ok {
		return fmt.Errorf("invalid network specified: %s", f.network)
	}
	schema, _ := registry.Lookup("common.Address")
	value, err := decodeValue(schema, f.from, input)
	if err != nil {
		return err
	}
	encoded, err := network.Bech32(value.(common.Address))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.stdout, encoded)
	return err
}

// runTypes lists the registered type names
func runTypes(env *cmdEnv, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	for _, name := range registry.Names() {
		if _, err := fmt.Fprintln(env.stdout, name); err != nil {
			return err
		}
	}
	return nil
}
