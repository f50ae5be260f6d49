// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ParseHash parses a txid or block hash in display (byte-reversed) order.
// Shorter strings are rejected instead of being zero padded.
func ParseHash(s string) (chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, decodeErr(KindHash, s, ErrHashLength)
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, decodeErr(KindHash, s, err)
	}
	return *h, nil
}

// DecodeHash decodes a JSON string holding a hash.
func DecodeHash(data []byte) (chainhash.Hash, error) {
	s, err := jsonString(data, KindHash)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return ParseHash(s)
}

func jsonString(data []byte, kind DecodeKind) (string, error) {
	var s string
	if len(data) == 0 || data[0] != '"' {
		return "", decodeErr(kind, string(data), ErrNotString)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return "", decodeErr(kind, string(data), err)
	}
	return s, nil
}

// Hash is a JSON field holding a txid or block hash.
type Hash chainhash.Hash

func (h Hash) Hash() chainhash.Hash { return chainhash.Hash(h) }

func (h Hash) String() string { return chainhash.Hash(h).String() }

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(chainhash.Hash(h).String())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	v, err := DecodeHash(data)
	if err != nil {
		return err
	}
	*h = Hash(v)
	return nil
}
