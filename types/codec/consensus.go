// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/wire"
)

func hexBytes(s string, kind DecodeKind) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, decodeErr(kind, s, err)
	}
	return b, nil
}

// DecodeTransaction decodes a consensus-encoded transaction from hex.
//
// The witness encoding is tried first. A legacy transaction with zero
// inputs starts with the same marker byte as a witness one, so when the
// witness decode fails or leaves bytes behind the legacy encoding is tried.
func DecodeTransaction(s string) (*wire.MsgTx, error) {
	raw, err := hexBytes(s, KindTransaction)
	if err != nil {
		return nil, err
	}

	tx := new(wire.MsgTx)
	r := bytes.NewReader(raw)
	werr := tx.Deserialize(r)
	if werr == nil && r.Len() == 0 {
		return tx, nil
	}

	tx = new(wire.MsgTx)
	r = bytes.NewReader(raw)
	if err = tx.DeserializeNoWitness(r); err != nil {
		if werr != nil {
			err = werr
		}
		return nil, decodeErr(KindTransaction, s, err)
	}
	if r.Len() != 0 {
		return nil, decodeErr(KindTransaction, s, ErrTrailingBytes)
	}
	return tx, nil
}

// EncodeTransaction returns the witness serialization of tx as hex.
func EncodeTransaction(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// DecodeBlockHeader decodes an 80 byte block header from hex.
func DecodeBlockHeader(s string) (*wire.BlockHeader, error) {
	raw, err := hexBytes(s, KindBlockHeader)
	if err != nil {
		return nil, err
	}

	header := new(wire.BlockHeader)
	r := bytes.NewReader(raw)
	if err = header.Deserialize(r); err != nil {
		return nil, decodeErr(KindBlockHeader, s, err)
	}
	if r.Len() != 0 {
		return nil, decodeErr(KindBlockHeader, s, ErrTrailingBytes)
	}
	return header, nil
}

// DecodeBlock decodes a full block from hex.
func DecodeBlock(s string) (*wire.MsgBlock, error) {
	raw, err := hexBytes(s, KindBlock)
	if err != nil {
		return nil, err
	}

	block := new(wire.MsgBlock)
	r := bytes.NewReader(raw)
	if err = block.Deserialize(r); err != nil {
		return nil, decodeErr(KindBlock, s, err)
	}
	if r.Len() != 0 {
		return nil, decodeErr(KindBlock, s, ErrTrailingBytes)
	}
	return block, nil
}

// Tx is a JSON field holding a hex encoded transaction.
type Tx struct {
	*wire.MsgTx
}

func (t Tx) MarshalJSON() ([]byte, error) {
	if t.MsgTx == nil {
		return []byte("null"), nil
	}
	s, err := EncodeTransaction(t.MsgTx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

func (t *Tx) UnmarshalJSON(data []byte) error {
	s, err := jsonString(data, KindTransaction)
	if err != nil {
		return err
	}
	tx, err := DecodeTransaction(s)
	if err != nil {
		return err
	}
	t.MsgTx = tx
	return nil
}
