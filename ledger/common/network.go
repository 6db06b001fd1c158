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

package common

// Network names a chain and the network ID carried in its address headers
type Network struct {
	Id   uint8
	Name string
}

// Network definitions
var (
	NetworkTestnet = Network{
		Id:   AddressNetworkTestnet,
		Name: "testnet",
	}
	NetworkMainnet = Network{
		Id:   AddressNetworkMainnet,
		Name: "mainnet",
	}
	NetworkPreprod = Network{
		Id:   AddressNetworkTestnet,
		Name: "preprod",
	}
	NetworkPreview = Network{
		Id:   AddressNetworkTestnet,
		Name: "preview",
	}
	NetworkSancho = Network{
		Id:   AddressNetworkTestnet,
		Name: "sanchonet",
	}
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkTestnet,
	NetworkMainnet,
	NetworkPreprod,
	NetworkPreview,
	NetworkSancho,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) (Network, bool) {
	for _, network := range networks {
		if network.Name == name {
			return network, true
		}
	}
	return Network{}, false
}

// Bech32 returns the bech32 encoding of the address on this network
func (n Network) Bech32(a Address) (string, error) {
	return a.Bech32(n.Id)
}
