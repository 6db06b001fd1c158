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

package v3

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v2 "github.com/blinklabs-io/plutus-ledger-api/ledger/v2"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// TxId is the hash of a transaction body. Unlike earlier versions its data form is the
// bare byte string
type TxId = common.TxId

var TxIdCodec = common.TxIdCodec

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

// TxInInfo is a transaction input together with the output it spends
type TxInInfo struct {
	OutRef   TxOutRef
	Resolved v2.TxOut
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
	ref, err := codec.DecodeField(name, "reference", fields[0], TxOutRefCodec)
	if err != nil {
		return err
	}
	out, err := codec.DecodeField(name, "output", fields[1], v2.TxOutCodec)
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
	ref, err := codec.DecodeJSONField(name, obj, "reference", TxOutRefCodec)
	if err != nil {
		return err
	}
	out, err := codec.DecodeJSONField(name, obj, "output", v2.TxOutCodec)
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
