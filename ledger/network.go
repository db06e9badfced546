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

package ledger

import "fmt"

// NetworkType identifies the network an entity belongs to
type NetworkType uint8

const (
	NetworkTypeMijin       NetworkType = 0x60
	NetworkTypeMainnet     NetworkType = 0x68
	NetworkTypePrivate     NetworkType = 0x78
	NetworkTypeMijinTest   NetworkType = 0x90
	NetworkTypeTestnet     NetworkType = 0x98
	NetworkTypePrivateTest NetworkType = 0xa8
)

// Network describes a known network
type Network struct {
	Type NetworkType
	Name string
}

// Network definitions
var (
	NetworkMijin       = Network{Type: NetworkTypeMijin, Name: "mijin"}
	NetworkMainnet     = Network{Type: NetworkTypeMainnet, Name: "mainnet"}
	NetworkPrivate     = Network{Type: NetworkTypePrivate, Name: "private"}
	NetworkMijinTest   = Network{Type: NetworkTypeMijinTest, Name: "mijin-test"}
	NetworkTestnet     = Network{Type: NetworkTypeTestnet, Name: "testnet"}
	NetworkPrivateTest = Network{Type: NetworkTypePrivateTest, Name: "private-test"}

	NetworkInvalid = Network{Type: 0, Name: "invalid"} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMijin,
	NetworkMainnet,
	NetworkPrivate,
	NetworkMijinTest,
	NetworkTestnet,
	NetworkPrivateTest,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByType returns a predefined network by its type byte
func NetworkByType(networkType NetworkType) Network {
	for _, network := range networks {
		if network.Type == networkType {
			return network
		}
	}
	return NetworkInvalid
}

func (n Network) String() string {
	return n.Name
}

func (t NetworkType) Valid() bool {
	return NetworkByType(t) != NetworkInvalid
}

func (t NetworkType) String() string {
	if network := NetworkByType(t); network != NetworkInvalid {
		return network.Name
	}
	return fmt.Sprintf("NetworkType(0x%02x)", uint8(t))
}

func (t NetworkType) Size() int {
	return 1
}

func (t NetworkType) Serialize() []byte {
	return []byte{byte(t)}
}
