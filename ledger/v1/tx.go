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

package v1

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// TxId is the hash of a transaction body. In this version of the ledger API its data
// form is wrapped in Constr 0
type TxId = common.TxId

var TxIdCodec = codec.Codec[TxId]{
	Name: "TxId",
	ToData: func(v TxId) plutusdata.Data {
		return plutusdata.NewConstr(0, common.TxIdCodec.ToData(v))
	},
	FromData: func(d plutusdata.Data) (TxId, error) {
		const name = "TxId"
		fields, err := codec.ConstrFields(name, d, 0, 1)
		if err != nil {
			return nil, err
		}
		return common.TxIdCodec.FromData(fields[0])
	},
	ToJSON:   common.TxIdCodec.ToJSON,
	FromJSON: common.TxIdCodec.FromJSON,
	Equal:    common.TxIdCodec.Equal,
	NotEqual: common.TxIdCodec.NotEqual,
}

// TxOutRef references an output of a transaction
type TxOutRef struct {
	Id    TxId
	Index *big.Int
}

func (r TxOutRef) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		TxIdCodec.ToData(r.Id),
		codec.Integer.ToData(r.Index),
	)
}

func (r *TxOutRef) FromPlutusData(d plutusdata.Data) error {
	const name = "TxOutRef"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	id, err := codec.DecodeField(name, "transaction_id", fields[0], TxIdCodec)
	if err != nil {
		return err
	}
	idx, err := codec.DecodeField(name, "index", fields[1], codec.Integer)
	if err != nil {
		return err
	}
	r.Id = id
	r.Index = idx
	return nil
}

func (r TxOutRef) ToJSON() any {
	return map[string]any{
		"transaction_id": TxIdCodec.ToJSON(r.Id),
		"index":          codec.Integer.ToJSON(r.Index),
	}
}

func (r *TxOutRef) FromJSON(v any) error {
	const name = "TxOutRef"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	id, err := codec.DecodeJSONField(name, obj, "transaction_id", TxIdCodec)
	if err != nil {
		return err
	}
	idx, err := codec.DecodeJSONField(name, obj, "index", codec.Integer)
	if err != nil {
		return err
	}
	r.Id = id
	r.Index = idx
	return nil
}

func (r TxOutRef) Equal(o TxOutRef) bool {
	return TxIdCodec.Equal(r.Id, o.Id) && codec.Integer.Equal(r.Index, o.Index)
}

func (r TxOutRef) NotEqual(o TxOutRef) bool {
	return TxIdCodec.NotEqual(r.Id, o.Id) || codec.Integer.NotEqual(r.Index, o.Index)
}

func (r TxOutRef) String() string {
	return fmt.Sprintf("%s#%s", r.Id.String(), r.Index.String())
}

func (r TxOutRef) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(r.ToJSON())
}

func (r *TxOutRef) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, r.FromJSON)
}

var TxOutRefCodec = codec.Record[TxOutRef]("TxOutRef")

var maybeDatumHashCodec = codec.MaybeOf(common.DatumHashCodec)

// TxOut is a transaction output
type TxOut struct {
	Address   common.Address
	Value     common.Value
	DatumHash codec.Maybe[common.DatumHash]
}

func (o TxOut) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		o.Address.ToPlutusData(),
		common.ValueCodec.ToData(o.Value),
		maybeDatumHashCodec.ToData(o.DatumHash),
	)
}

func (o *TxOut) FromPlutusData(d plutusdata.Data) error {
	const name = "TxOut"
	fields, err := codec.ConstrFields(name, d, 0, 3)
	if err != nil {
		return err
	}
	addr, err := codec.DecodeField(name, "address", fields[0], common.AddressCodec)
	if err != nil {
		return err
	}
	value, err := codec.DecodeField(name, "value", fields[1], common.ValueCodec)
	if err != nil {
		return err
	}
	datumHash, err := codec.DecodeField(name, "datum_hash", fields[2], maybeDatumHashCodec)
	if err != nil {
		return err
	}
	o.Address = addr
	o.Value = value
	o.DatumHash = datumHash
	return nil
}

func (o TxOut) ToJSON() any {
	return map[string]any{
		"address":    o.Address.ToJSON(),
		"value":      common.ValueCodec.ToJSON(o.Value),
		"datum_hash": maybeDatumHashCodec.ToJSON(o.DatumHash),
	}
}

func (o *TxOut) FromJSON(v any) error {
	const name = "TxOut"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	addr, err := codec.DecodeJSONField(name, obj, "address", common.AddressCodec)
	if err != nil {
		return err
	}
	value, err := codec.DecodeJSONField(name, obj, "value", common.ValueCodec)
	if err != nil {
		return err
	}
	datumHash, err := codec.DecodeJSONField(name, obj, "datum_hash", maybeDatumHashCodec)
	if err != nil {
		return err
	}
	o.Address = addr
	o.Value = value
	o.DatumHash = datumHash
	return nil
}

func (o TxOut) Equal(b TxOut) bool {
	return o.Address.Equal(b.Address) &&
		common.ValueCodec.Equal(o.Value, b.Value) &&
		maybeDatumHashCodec.Equal(o.DatumHash, b.DatumHash)
}

func (o TxOut) NotEqual(b TxOut) bool {
	return o.Address.NotEqual(b.Address) ||
		common.ValueCodec.NotEqual(o.Value, b.Value) ||
		maybeDatumHashCodec.NotEqual(o.DatumHash, b.DatumHash)
}

func (o TxOut) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(o.ToJSON())
}

func (o *TxOut) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, o.FromJSON)
}

var TxOutCodec = codec.Record[TxOut]("TxOut")
