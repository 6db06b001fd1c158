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

package common_test

import (
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/internal/test"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatumHashOf(t *testing.T) {
	hash, err := common.DatumHashOf(plutusdata.NewConstr(0))
	require.NoError(t, err)
	assert.Equal(
		t,
		"923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec",
		hash.String(),
	)
	redeemerHash, err := common.RedeemerHashOf(plutusdata.NewConstr(0))
	require.NoError(t, err)
	assert.Equal(t, hash.String(), redeemerHash.String())
	_, err = common.DatumHashOf(nil)
	assert.Error(t, err)
}

func TestScriptHashOf(t *testing.T) {
	hash := common.ScriptHashOf(
		common.ScriptLanguagePlutusV3,
		test.DecodeHexString("4e4d01000033222220051200120011"),
	)
	assert.Equal(t, "13bb6c9c8030b09fc4e85ccdf07aa7bf640d3259e9d4f661c892bfa3", hash.String())
	_, ok := common.ScriptHashFromBytes(hash)
	assert.True(t, ok)
}

func TestPubKeyHashFromVerificationKey(t *testing.T) {
	// ed25519 base point
	vkey := test.DecodeHexString("5866666666666666666666666666666666666666666666666666666666666666")
	pkh, err := common.PubKeyHashFromVerificationKey(vkey)
	require.NoError(t, err)
	assert.Equal(t, "8f7e0b60191264ea993a75b66807f632a5dd304054f0a0bacf626a97", pkh.String())
	_, err = common.PubKeyHashFromVerificationKey(vkey[:31])
	assert.ErrorContains(t, err, "should be 32 bytes")
	// y = 2 has no matching x coordinate
	notOnCurve := make([]byte, 32)
	notOnCurve[0] = 0x02
	_, err = common.PubKeyHashFromVerificationKey(notOnCurve)
	assert.ErrorContains(t, err, "not a valid ed25519 point")
}
