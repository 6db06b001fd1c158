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

package v2

import (
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

const (
	OutputDatumTypeNone   = 0
	OutputDatumTypeHash   = 1
	OutputDatumTypeInline = 2
)

// OutputDatum is the datum attached to an output: none, a hash of a datum supplied by the
// spending transaction, or the datum itself
type OutputDatum interface {
	isOutputDatum()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type NoOutputDatum struct{}

type OutputDatumHash struct {
	Hash common.DatumHash
}

type OutputDatumInline struct {
	Datum common.Datum
}

func (NoOutputDatum) isOutputDatum()     {}
func (OutputDatumHash) isOutputDatum()   {}
func (OutputDatumInline) isOutputDatum() {}

func (NoOutputDatum) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(OutputDatumTypeNone)
}

func (o OutputDatumHash) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(OutputDatumTypeHash, common.DatumHashCodec.ToData(o.Hash))
}

func (o OutputDatumInline) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(OutputDatumTypeInline, common.DatumCodec.ToData(o.Datum))
}

func (NoOutputDatum) ToJSON() any {
	return codec.Constructor("NoOutputDatum")
}

func (o OutputDatumHash) ToJSON() any {
	return codec.Constructor("OutputDatumHash", common.DatumHashCodec.ToJSON(o.Hash))
}

func (o OutputDatumInline) ToJSON() any {
	return codec.Constructor("OutputDatum", common.DatumCodec.ToJSON(o.Datum))
}

func OutputDatumFromData(d plutusdata.Data) (OutputDatum, error) {
	const name = "OutputDatum"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case OutputDatumTypeNone:
		if err := codec.CheckArity(name, c, 0); err != nil {
			return nil, err
		}
		return NoOutputDatum{}, nil
	case OutputDatumTypeHash:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		hash, err := codec.DecodeField(name, "OutputDatumHash", c.Fields[0], common.DatumHashCodec)
		if err != nil {
			return nil, err
		}
		return OutputDatumHash{Hash: hash}, nil
	case OutputDatumTypeInline:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		return OutputDatumInline{Datum: c.Fields[0]}, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func OutputDatumFromJSON(v any) (OutputDatum, error) {
	const name = "OutputDatum"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "NoOutputDatum":
		if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
			return nil, err
		}
		return NoOutputDatum{}, nil
	case "OutputDatumHash":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		hash, err := codec.DecodeJSONValue(name, ctor, fields[0], common.DatumHashCodec)
		if err != nil {
			return nil, err
		}
		return OutputDatumHash{Hash: hash}, nil
	case "OutputDatum":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		datum, err := codec.DecodeJSONValue(name, ctor, fields[0], common.DatumCodec)
		if err != nil {
			return nil, err
		}
		return OutputDatumInline{Datum: datum}, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func OutputDatumEqual(a OutputDatum, b OutputDatum) bool {
	switch tmpA := a.(type) {
	case NoOutputDatum:
		_, ok := b.(NoOutputDatum)
		return ok
	case OutputDatumHash:
		tmpB, ok := b.(OutputDatumHash)
		return ok && common.DatumHashCodec.Equal(tmpA.Hash, tmpB.Hash)
	case OutputDatumInline:
		tmpB, ok := b.(OutputDatumInline)
		return ok && common.DatumCodec.Equal(tmpA.Datum, tmpB.Datum)
	}
	return a == nil && b == nil
}

func OutputDatumNotEqual(a OutputDatum, b OutputDatum) bool {
	switch tmpA := a.(type) {
	case NoOutputDatum:
		_, ok := b.(NoOutputDatum)
		return !ok
	case OutputDatumHash:
		tmpB, ok := b.(OutputDatumHash)
		return !ok || common.DatumHashCodec.NotEqual(tmpA.Hash, tmpB.Hash)
	case OutputDatumInline:
		tmpB, ok := b.(OutputDatumInline)
		return !ok || common.DatumCodec.NotEqual(tmpA.Datum, tmpB.Datum)
	}
	return a != nil || b != nil
}

var OutputDatumCodec = codec.Codec[OutputDatum]{
	Name:     "OutputDatum",
	ToData:   OutputDatum.ToPlutusData,
	FromData: OutputDatumFromData,
	ToJSON:   OutputDatum.ToJSON,
	FromJSON: OutputDatumFromJSON,
	Equal:    OutputDatumEqual,
	NotEqual: OutputDatumNotEqual,
}

func datumOrNone(d OutputDatum) OutputDatum {
	if d == nil {
		return NoOutputDatum{}
	}
	return d
}

var maybeScriptHashCodec = codec.MaybeOf(common.ScriptHashCodec)

// TxOut is a transaction output. A nil Datum is treated as NoOutputDatum
type TxOut struct {
	Address         common.Address
	Value           common.Value
	Datum           OutputDatum
	ReferenceScript codec.Maybe[common.ScriptHash]
}

func (o TxOut) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		o.Address.ToPlutusData(),
		common.ValueCodec.ToData(o.Value),
		datumOrNone(o.Datum).ToPlutusData(),
		maybeScriptHashCodec.ToData(o.ReferenceScript),
	)
}

func (o *TxOut) FromPlutusData(d plutusdata.Data) error {
	const name = "TxOut"
	fields, err := codec.ConstrFields(name, d, 0, 4)
	if err != nil {
		return err
	}
	var tmp TxOut
	if tmp.Address, err = codec.DecodeField(name, "address", fields[0], common.AddressCodec); err != nil {
		return err
	}
	if tmp.Value, err = codec.DecodeField(name, "value", fields[1], common.ValueCodec); err != nil {
		return err
	}
	if tmp.Datum, err = codec.DecodeField(name, "datum", fields[2], OutputDatumCodec); err != nil {
		return err
	}
	if tmp.ReferenceScript, err = codec.DecodeField(name, "reference_script", fields[3], maybeScriptHashCodec); err != nil {
		return err
	}
	*o = tmp
	return nil
}

func (o TxOut) ToJSON() any {
	return map[string]any{
		"address":          o.Address.ToJSON(),
		"value":            common.ValueCodec.ToJSON(o.Value),
		"datum":            datumOrNone(o.Datum).ToJSON(),
		"reference_script": maybeScriptHashCodec.ToJSON(o.ReferenceScript),
	}
}

func (o *TxOut) FromJSON(v any) error {
	const name = "TxOut"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	var tmp TxOut
	if tmp.Address, err = codec.DecodeJSONField(name, obj, "address", common.AddressCodec); err != nil {
		return err
	}
	if tmp.Value, err = codec.DecodeJSONField(name, obj, "value", common.ValueCodec); err != nil {
		return err
	}
	if tmp.Datum, err = codec.DecodeJSONField(name, obj, "datum", OutputDatumCodec); err != nil {
		return err
	}
	if tmp.ReferenceScript, err = codec.DecodeJSONField(name, obj, "reference_script", maybeScriptHashCodec); err != nil {
		return err
	}
	*o = tmp
	return nil
}

func (o TxOut) Equal(b TxOut) bool {
	return o.Address.Equal(b.Address) &&
		common.ValueCodec.Equal(o.Value, b.Value) &&
		OutputDatumEqual(datumOrNone(o.Datum), datumOrNone(b.Datum)) &&
		maybeScriptHashCodec.Equal(o.ReferenceScript, b.ReferenceScript)
}

func (o TxOut) NotEqual(b TxOut) bool {
	return o.Address.NotEqual(b.Address) ||
		common.ValueCodec.NotEqual(o.Value, b.Value) ||
		OutputDatumNotEqual(datumOrNone(o.Datum), datumOrNone(b.Datum)) ||
		maybeScriptHashCodec.NotEqual(o.ReferenceScript, b.ReferenceScript)
}

func (o TxOut) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(o.ToJSON())
}

func (o *TxOut) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, o.FromJSON)
}

var TxOutCodec = codec.Record[TxOut]("TxOut")

// TxInInfo is a transaction input together with the output it spends
type TxInInfo struct {
	OutRef   v1.TxOutRef
	Resolved TxOut
}

func (i TxInInfo) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, i.OutRef.ToPlutusData(), i.Resolved.ToPlutusData())
}

func (i *TxInInfo) FromPlutusData(d plutusdata.Data) error {
	const name = "TxInInfo"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	ref, err := codec.DecodeField(name, "reference", fields[0], v1.TxOutRefCodec)
	if err != nil {
		return err
	}
	out, err := codec.DecodeField(name, "output", fields[1], TxOutCodec)
	if err != nil {
		return err
	}
	i.OutRef = ref
	i.Resolved = out
	return nil
}

func (i TxInInfo) ToJSON() any {
	return map[string]any{
		"reference": i.OutRef.ToJSON(),
		"output":    i.Resolved.ToJSON(),
	}
}

func (i *TxInInfo) FromJSON(v any) error {
	const name = "TxInInfo"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	ref, err := codec.DecodeJSONField(name, obj, "reference", v1.TxOutRefCodec)
	if err != nil {
		return err
	}
	out, err := codec.DecodeJSONField(name, obj, "output", TxOutCodec)
	if err != nil {
		return err
	}
	i.OutRef = ref
	i.Resolved = out
	return nil
}

func (i TxInInfo) Equal(o TxInInfo) bool {
	return i.OutRef.Equal(o.OutRef) && i.Resolved.Equal(o.Resolved)
}

func (i TxInInfo) NotEqual(o TxInInfo) bool {
	return i.OutRef.NotEqual(o.OutRef) || i.Resolved.NotEqual(o.Resolved)
}

func (i TxInInfo) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(i.ToJSON())
}

func (i *TxInInfo) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, i.FromJSON)
}

var TxInInfoCodec = codec.Record[TxInInfo]("TxInInfo")
