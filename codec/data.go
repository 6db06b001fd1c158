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

package codec

import (
	"fmt"

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// ConstrOf checks that the value is a Constr and returns it
func ConstrOf(typeName string, d plutusdata.Data) (plutusdata.Constr, error) {
	c, ok := d.(plutusdata.Constr)
	if !ok {
		return plutusdata.Constr{}, plutusdata.NewDecodeError(
			typeName,
			"expected Constr",
			d,
		)
	}
	return c, nil
}

// ConstrFields checks that the value is a Constr with the given index and number of
// fields, and returns the fields
func ConstrFields(
	typeName string,
	d plutusdata.Data,
	index uint64,
	arity int,
) ([]plutusdata.Data, error) {
	c, err := ConstrOf(typeName, d)
	if err != nil {
		return nil, err
	}
	if c.Index != index {
		return nil, plutusdata.NewDecodeError(
			typeName,
			fmt.Sprintf("expected Constr %d", index),
			d,
		)
	}
	if err := CheckArity(typeName, c, arity); err != nil {
		return nil, err
	}
	return c.Fields, nil
}

// CheckArity checks the number of fields of a Constr
func CheckArity(typeName string, c plutusdata.Constr, arity int) error {
	if len(c.Fields) != arity {
		return plutusdata.NewDecodeError(
			typeName,
			fmt.Sprintf(
				"expected %d fields for Constr %d, found %d",
				arity,
				c.Index,
				len(c.Fields),
			),
			c,
		)
	}
	return nil
}

// UnknownConstr is returned by sum type decoders for an index with no matching variant
func UnknownConstr(typeName string, c plutusdata.Constr) error {
	return plutusdata.NewDecodeError(
		typeName,
		fmt.Sprintf("unknown constructor %d", c.Index),
		c,
	)
}

// DecodeField decodes a single field, adding the field location to any error
func DecodeField[T any](
	typeName string,
	field string,
	d plutusdata.Data,
	c Codec[T],
) (T, error) {
	ret, err := c.FromData(d)
	if err != nil {
		return ret, FieldDecodeError(typeName, field, err)
	}
	return ret, nil
}
