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

	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/stretchr/testify/assert"
)

func TestNetworkByName(t *testing.T) {
	testDefs := []struct {
		name    string
		id      uint8
		invalid bool
	}{
		{name: "mainnet", id: common.AddressNetworkMainnet},
		{name: "testnet", id: common.AddressNetworkTestnet},
		{name: "preprod", id: common.AddressNetworkTestnet},
		{name: "preview", id: common.AddressNetworkTestnet},
		{name: "sanchonet", id: common.AddressNetworkTestnet},
		{name: "nonexistent", invalid: true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			network, ok := common.NetworkByName(testDef.name)
			if testDef.invalid {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, testDef.name, network.Name)
			assert.Equal(t, testDef.id, network.Id)
		})
	}
}
