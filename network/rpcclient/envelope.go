// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

// rpcVersion is the protocol version tag bitcoind expects.
const rpcVersion = "1.0"

// Request is a JSON-RPC request object. Params are already encoded.
type Request struct {
	Jsonrpc string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// NewRequest returns a request envelope. A nil params slice is sent as [].
func NewRequest(id uint64, method string, params []json.RawMessage) *Request {
	if params == nil {
		params = []json.RawMessage{}
	}
	return &Request{
		Jsonrpc: rpcVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Response is the JSON-RPC response envelope.
type Response struct {
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
	ID     *uint64           `json:"id"`
}

// hasResult reports whether the envelope carries a non-null result.
func (r *Response) hasResult() bool {
	result := bytes.TrimSpace(r.Result)
	return len(result) != 0 && !bytes.Equal(result, []byte("null"))
}

// decodeResponse parses a response body and returns its raw result.
func decodeResponse(body []byte) (json.RawMessage, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, newError(KindParse, err)
	}

	if resp.Error != nil {
		return nil, &Error{
			Kind:    KindServer,
			Code:    resp.Error.Code,
			Message: resp.Error.Message,
		}
	}
	if !resp.hasResult() {
		return nil, &Error{Kind: KindEmptyResponse}
	}
	return resp.Result, nil
}

// marshalParams encodes positional parameters. Failures surface as
// KindParam before anything is sent.
func marshalParams(params []interface{}) ([]json.RawMessage, error) {
	raw := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, &Error{Kind: KindParam, Err: errors.Wrapf(err, "encode param %d", i)}
		}
		raw = append(raw, b)
	}
	return raw, nil
}
