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
	"github.com/xlab/treeprint"
)

// dataTree renders a data value as an indented tree, one node per value
func dataTree(d plutusdata.Data) treeprint.Tree {
	tree := treeprint.NewWithRoot(dataLabel(d))
	addDataChildren(tree, d)
	return tree
}

func dataLabel(d plutusdata.Data) string {
	switch v := d.(type) {
	case plutusdata.Constr:
		return fmt.Sprintf("Constr %d", v.Index)
	case plutusdata.Map:
		return fmt.Sprintf("Map (%d)", len(v.Pairs))
	case plutusdata.List:
		return fmt.Sprintf("List (%d)", len(v.Items))
	case plutusdata.Bytes:
		return "B #" + hex.EncodeToString(v.Value)
	case plutusdata.Integer:
		return "I " + v.Int().String()
	}
	return "?"
}

func addDataChildren(tree treeprint.Tree, d plutusdata.Data) {
	switch v := d.(type) {
	case plutusdata.Constr:
		addDataItems(tree, v.Fields)
	case plutusdata.List:
		addDataItems(tree, v.Items)
	case plutusdata.Map:
		for _, pair := range v.Pairs {
			branch := tree.AddBranch("Pair")
			addDataItems(branch, []plutusdata.Data{pair.Key, pair.Value})
		}
	}
}

func addDataItems(tree treeprint.Tree, items []plutusdata.Data) {
	for _, item := range items {
		switch item.(type) {
		case plutusdata.Constr, plutusdata.Map, plutusdata.List:
			addDataChildren(tree.AddBranch(dataLabel(item)), item)
		default:
			tree.AddNode(dataLabel(item))
		}
	}
}
