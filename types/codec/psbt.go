// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/btcutil/psbt"
)

// DecodePSBT parses a base64 encoded BIP-174 packet.
func DecodePSBT(s string) (*psbt.Packet, error) {
	if s == "" {
		return nil, decodeErr(KindPSBT, s, psbt.ErrInvalidPsbtFormat)
	}
	packet, err := psbt.NewFromRawBytes(strings.NewReader(s), true)
	if err != nil {
		return nil, decodeErr(KindPSBT, s, err)
	}
	return packet, nil
}

// EncodePSBT returns the base64 serialization of the packet.
func EncodePSBT(p *psbt.Packet) (string, error) {
	return p.B64Encode()
}

// PSBT is a JSON field holding a base64 encoded packet.
type PSBT struct {
	*psbt.Packet
}

func (p PSBT) MarshalJSON() ([]byte, error) {
	if p.Packet == nil {
		return []byte("null"), nil
	}
	s, err := EncodePSBT(p.Packet)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

func (p *PSBT) UnmarshalJSON(data []byte) error {
	s, err := jsonString(data, KindPSBT)
	if err != nil {
		return err
	}
	packet, err := DecodePSBT(s)
	if err != nil {
		return err
	}
	p.Packet = packet
	return nil
}

// OptionalPSBT is a PSBT field that the node may leave out, set to null or
// send as an empty string. All three leave Packet nil.
type OptionalPSBT struct {
	Packet *psbt.Packet
}

func (p OptionalPSBT) Present() bool { return p.Packet != nil }

func (p OptionalPSBT) MarshalJSON() ([]byte, error) {
	return PSBT{Packet: p.Packet}.MarshalJSON()
}

func (p *OptionalPSBT) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		p.Packet = nil
		return nil
	}

	var v PSBT
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	p.Packet = v.Packet
	return nil
}
