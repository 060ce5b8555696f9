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

package nativescript

import (
	"encoding/hex"
	"encoding/json"

	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

// jsonScript is the wire shape of the human-authored JSON ingestion form:
// a type discriminator plus whichever fields that type uses.
type jsonScript struct {
	Type     string       `json:"type"`
	KeyHash  string       `json:"keyHash,omitempty"`
	Scripts  []jsonScript `json:"scripts,omitempty"`
	Required uint64       `json:"required,omitempty"`
	Slot     uint64       `json:"slot,omitempty"`
}

// MarshalJSON renders s in the human-authored ingestion form.
func (s *Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONScript(s))
}

func toJSONScript(s *Script) jsonScript {
	switch s.Kind {
	case KindPubkey:
		return jsonScript{Type: "sig", KeyHash: hex.EncodeToString(s.KeyHash.Bytes())}
	case KindAll:
		return jsonScript{Type: "all", Scripts: toJSONScripts(s.Scripts)}
	case KindAny:
		return jsonScript{Type: "any", Scripts: toJSONScripts(s.Scripts)}
	case KindNOfK:
		return jsonScript{Type: "atLeast", Required: s.N, Scripts: toJSONScripts(s.Scripts)}
	case KindInvalidBefore:
		return jsonScript{Type: "before", Slot: s.Slot}
	case KindInvalidAfter:
		return jsonScript{Type: "after", Slot: s.Slot}
	default:
		return jsonScript{}
	}
}

func toJSONScripts(scripts []*Script) []jsonScript {
	out := make([]jsonScript, len(scripts))
	for i, s := range scripts {
		out[i] = toJSONScript(s)
	}
	return out
}

// UnmarshalJSON parses the human-authored ingestion form into s.
func (s *Script) UnmarshalJSON(data []byte) error {
	var js jsonScript
	if err := json.Unmarshal(data, &js); err != nil {
		return cborerr.Wrap(cborerr.KindDecoding, "malformed native script JSON", err)
	}
	parsed, err := fromJSONScript(js)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func fromJSONScript(js jsonScript) (*Script, error) {
	switch js.Type {
	case "sig":
		raw, err := hex.DecodeString(js.KeyHash)
		if err != nil {
			return nil, cborerr.Wrap(cborerr.KindDecoding, "malformed sig keyHash hex", err)
		}
		h, err := hashing.NewHash28(raw)
		if err != nil {
			return nil, err
		}
		return Pubkey(h), nil
	case "all":
		scripts, err := fromJSONScripts(js.Scripts)
		if err != nil {
			return nil, err
		}
		return All(scripts), nil
	case "any":
		scripts, err := fromJSONScripts(js.Scripts)
		if err != nil {
			return nil, err
		}
		return Any(scripts), nil
	case "atLeast":
		scripts, err := fromJSONScripts(js.Scripts)
		if err != nil {
			return nil, err
		}
		return NOfK(js.Required, scripts), nil
	case "before":
		return InvalidBefore(js.Slot), nil
	case "after":
		return InvalidAfter(js.Slot), nil
	default:
		return nil, cborerr.New(cborerr.KindDecoding, "unrecognized native script JSON type: "+js.Type)
	}
}

func fromJSONScripts(jss []jsonScript) ([]*Script, error) {
	out := make([]*Script, len(jss))
	for i, js := range jss {
		s, err := fromJSONScript(js)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
