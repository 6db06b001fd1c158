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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/internal/test/fakeledger"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v3 "github.com/blinklabs-io/plutus-ledger-api/ledger/v3"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Constr 0 [I 42]
const constrCborHex = "d8799f182aff"

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestSubcommandErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		args     []string
		errorMsg string
	}{
		{name: "NoSubcommand", args: nil, errorMsg: "you must specify a subcommand"},
		{name: "Unknown", args: []string{"frobnicate"}, errorMsg: "unknown subcommand: frobnicate"},
		{name: "BadGlobalFlag", args: []string{"--nope"}, errorMsg: "failed to parse command args"},
		{name: "UnknownType", args: []string{"convert", "--type", "v9.Foo"}, errorMsg: "unknown type: v9.Foo"},
		{name: "TypesArgs", args: []string{"types", "extra"}, errorMsg: "unexpected argument: extra"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := runCommand(t, "", testDef.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), testDef.errorMsg)
		})
	}
}

func TestTypes(t *testing.T) {
	out, err := runCommand(t, "", "types")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "PlutusData")
	assert.Contains(t, lines, "v3.TxCert")
	assert.IsNonDecreasing(t, lines)
}

func TestConvertFormats(t *testing.T) {
	testDefs := []struct {
		name   string
		args   []string
		input  string
		output string
	}{
		{
			name:   "CborToDiag",
			args:   []string{"--from", "cbor", "--to", "diag"},
			input:  constrCborHex + "\n",
			output: "Constr 0 [I 42]\n",
		},
		{
			name:   "JSONWithCommentsToCbor",
			args:   []string{"--from", "json", "--to", "cbor"},
			input:  "// the answer\n{\"Constr\": [{\"index\": 0, \"fields\": [{\"Integer\": [42]},]}]}",
			output: constrCborHex + "\n",
		},
		{
			name:   "YAMLToCbor",
			args:   []string{"--from", "yaml", "--to", "cbor"},
			input:  "Constr:\n  - index: 0\n    fields:\n      - Integer: [42]\n",
			output: constrCborHex + "\n",
		},
		{
			name:   "BigIntegerFromYAML",
			args:   []string{"--from", "yaml", "--to", "diag"},
			input:  "Integer: [18446744073709551616]\n",
			output: "I 18446744073709551616\n",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			args := append([]string{"convert"}, testDef.args...)
			out, err := runCommand(t, testDef.input, args...)
			require.NoError(t, err)
			assert.Equal(t, testDef.output, out)
		})
	}
}

func TestConvertCborToJSON(t *testing.T) {
	out, err := runCommand(t, constrCborHex, "convert", "--from", "cbor", "--to", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Constr": [{"index": 0, "fields": [{"Integer": [42]}]}]}`, out)
}

func TestConvertTree(t *testing.T) {
	// Constr 0 [List [I 1], B #cafe]
	d := plutusdata.NewConstr(
		0,
		plutusdata.NewList(plutusdata.NewIntegerFromInt64(1)),
		plutusdata.NewBytes([]byte{0xca, 0xfe}),
	)
	cborData, err := plutusdata.Encode(d)
	require.NoError(t, err)
	out, err := runCommand(t, hex.EncodeToString(cborData), "convert", "--to", "tree")
	require.NoError(t, err)
	for _, label := range []string{"Constr 0", "List (1)", "I 1", "B #cafe"} {
		assert.Contains(t, out, label)
	}
}

func TestConvertUtxorpc(t *testing.T) {
	out, err := runCommand(t, constrCborHex, "convert", "--to", "utxorpc")
	require.NoError(t, err)
	assert.Contains(t, out, `"constr"`)
	assert.Contains(t, out, "42")
}

func TestConvertScriptContext(t *testing.T) {
	g := fakeledger.New(22)
	ctx := g.V3ScriptContext()
	cborData, err := v3.ScriptContextCodec.EncodeCbor(ctx)
	require.NoError(t, err)
	cborHex := hex.EncodeToString(cborData)

	jsonOut, err := runCommand(t, cborHex, "convert", "--type", "v3.ScriptContext", "--to", "json")
	require.NoError(t, err)
	decoded, err := v3.ScriptContextCodec.DecodeJSON([]byte(jsonOut))
	require.NoError(t, err)
	assert.True(t, ctx.Equal(decoded))

	yamlOut, err := runCommand(t, cborHex, "convert", "--type", "v3.ScriptContext", "--to", "yaml")
	require.NoError(t, err)
	cborOut, err := runCommand(
		t,
		yamlOut,
		"convert", "--type", "v3.ScriptContext", "--from", "yaml", "--to", "cbor",
	)
	require.NoError(t, err)
	assert.Equal(t, cborHex+"\n", cborOut)
}

func TestConvertInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datum.cbor")
	require.NoError(t, os.WriteFile(path, []byte(constrCborHex), 0o600))
	out, err := runCommand(t, "", "convert", "--input", path, "--to", "diag")
	require.NoError(t, err)
	assert.Equal(t, "Constr 0 [I 42]\n", out)
	_, err = runCommand(t, "", "convert", "--input", path+".missing")
	require.Error(t, err)
}

func TestConvertSchemaErrors(t *testing.T) {
	_, err := runCommand(t, constrCborHex, "convert", "--type", "common.Credential", "--to", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, plutusdata.ErrDecode)
	_, err = runCommand(t, "zz", "convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex input")
	_, err = runCommand(t, `{"Integer": [1.5]}`, "convert", "--from", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrJSON)
}

func TestHash(t *testing.T) {
	raw, err := hex.DecodeString(constrCborHex)
	require.NoError(t, err)
	d, err := plutusdata.Decode(raw)
	require.NoError(t, err)
	expected, err := plutusdata.Hash(d)
	require.NoError(t, err)
	out, err := runCommand(t, constrCborHex, "hash")
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(expected)+"\n", out)
	out, err = runCommand(
		t,
		`{"Constr": [{"index": 0, "fields": [{"Integer": [42]}]}]}`,
		"hash", "--from", "json",
	)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(expected)+"\n", out)
}

func TestAddress(t *testing.T) {
	addr := common.Address{
		Credential: common.PubKeyCredential{Hash: common.PubKeyHash(bytes.Repeat([]byte{0x11}, 28))},
	}
	jsonData, err := addr.MarshalJSON()
	require.NoError(t, err)

	out, err := runCommand(t, string(jsonData), "address")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "addr1"))

	testOut, err := runCommand(t, string(jsonData), "address", "--network", "preview")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(testOut, "addr_test1"))

	back, err := runCommand(t, out, "address", "--from", "bech32")
	require.NoError(t, err)
	decoded, err := common.AddressCodec.DecodeJSON([]byte(back))
	require.NoError(t, err)
	assert.True(t, addr.Equal(decoded))

	_, err = runCommand(t, string(jsonData), "address", "--network", "nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid network specified: nowhere")
}
