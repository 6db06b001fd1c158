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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/blinklabs-io/plutus-ledger-api/registry"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	formatCbor    = "cbor"
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatDiag    = "diag"
	formatTree    = "tree"
	formatUtxorpc = "utxorpc"
	formatBech32  = "bech32"
)

// readInput reads the whole input file, or stdin if the path is empty or "-"
func readInput(env *cmdEnv, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(env.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// decodeHex accepts hex split over several lines
func decodeHex(data []byte) ([]byte, error) {
	tmp := strings.Join(strings.Fields(string(data)), "")
	ret, err := hex.DecodeString(tmp)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return ret, nil
}

// parseJSONTree parses JSON input, which may carry comments and trailing commas
func parseJSONTree(data []byte) (any, error) {
	return codec.ParseJSON(jsonc.ToJSON(data))
}

func parseYAMLTree(data []byte) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return yamlToJSONTree(&node)
}

// decodeValue decodes the input as a value of the schema type
func decodeValue(
	schema registry.Schema,
	format string,
	data []byte,
	opts ...plutusdata.DecodeOption,
) (any, error) {
	switch format {
	case formatCbor:
		cborData, err := decodeHex(data)
		if err != nil {
			return nil, err
		}
		return schema.DecodeCbor(cborData, opts...)
	case formatJSON:
		tree, err := parseJSONTree(data)
		if err != nil {
			return nil, err
		}
		return schema.FromJSON(tree)
	case formatYAML:
		tree, err := parseYAMLTree(data)
		if err != nil {
			return nil, err
		}
		return schema.FromJSON(tree)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func writeJSON(w io.Writer, tree any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeYAML(w io.Writer, tree any) error {
	node, err := jsonTreeToYAML(tree)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}
