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
	"encoding/json"
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlToJSONTree converts a YAML document into the value tree produced by JSON
// parsing. Integers become json.Number so that they keep full precision
func yamlToJSONTree(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlToJSONTree(node.Content[0])
	case yaml.AliasNode:
		return yamlToJSONTree(node.Alias)
	case yaml.MappingNode:
		ret := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := yamlToJSONTree(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			ret[key.Value] = value
		}
		return ret, nil
	case yaml.SequenceNode:
		ret := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := yamlToJSONTree(item)
			if err != nil {
				return nil, err
			}
			ret = append(ret, value)
		}
		return ret, nil
	case yaml.ScalarNode:
		return yamlScalar(node)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

func yamlScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var ret bool
		if err := node.Decode(&ret); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return ret, nil
	case "!!int":
		// Base prefixes and underscores are accepted by YAML
		tmp, ok := new(big.Int).SetString(node.Value, 0)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid integer %q", node.Line, node.Value)
		}
		return json.Number(tmp.String()), nil
	case "!!float":
		// Left for the schema to reject
		return json.Number(node.Value), nil
	default:
		return node.Value, nil
	}
}

// jsonTreeToYAML builds a YAML node from a JSON value tree. Object keys are sorted
func jsonTreeToYAML(v any) (*yaml.Node, error) {
	switch tmp := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(tmp)}, nil
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: tmp.String()}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tmp}, nil
	case []any:
		ret := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range tmp {
			child, err := jsonTreeToYAML(item)
			if err != nil {
				return nil, err
			}
			ret.Content = append(ret.Content, child)
		}
		return ret, nil
	case map[string]any:
		ret := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		keys := make([]string, 0, len(tmp))
		for k := range tmp {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			child, err := jsonTreeToYAML(tmp[k])
			if err != nil {
				return nil, err
			}
			ret.Content = append(
				ret.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}
