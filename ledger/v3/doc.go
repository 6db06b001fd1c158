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

// Package v3 holds the script context types of the third version of the Plutus ledger
// API. It adds the governance types (DReps, votes, proposals), replaces DCert with
// TxCert and passes the redeemer and datum to the script inside the ScriptContext.
//
// TxId is encoded as a bare byte string here, unlike in v1 and v2 where it is wrapped
// in a constructor.
package v3
