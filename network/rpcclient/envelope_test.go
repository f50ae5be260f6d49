// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

func TestNewRequestMarshal(t *testing.T) {
	data, err := json.Marshal(NewRequest(7, "getblockcount", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"1.0","id":7,"method":"getblockcount","params":[]}`, string(data))

	params, err := marshalParams([]interface{}{"00ff", 1, true})
	require.NoError(t, err)
	data, err = json.Marshal(NewRequest(8, "gettxout", params))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"1.0","id":8,"method":"gettxout","params":["00ff",1,true]}`, string(data))
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind ErrorKind
		wantRaw  string
	}{
		{name: "result", body: `{"result":{"a":1},"error":null,"id":1}`, wantRaw: `{"a":1}`},
		{name: "zero result", body: `{"result":0,"error":null,"id":1}`, wantRaw: `0`},
		{name: "empty list", body: `{"result":[],"error":null,"id":1}`, wantRaw: `[]`},
		{name: "error", body: `{"result":null,"error":{"code":-5,"message":"No such tx"},"id":1}`, wantKind: KindServer},
		{name: "null both", body: `{"result":null,"error":null,"id":1}`, wantKind: KindEmptyResponse},
		{name: "missing both", body: `{"id":1}`, wantKind: KindEmptyResponse},
		{name: "not json", body: `Unauthorized`, wantKind: KindParse},
		{name: "truncated", body: `{"result":`, wantKind: KindParse},
	}

	for _, test := range tests {
		raw, err := decodeResponse([]byte(test.body))
		if test.wantRaw != "" {
			require.NoError(t, err, test.name)
			assert.JSONEq(t, test.wantRaw, string(raw), test.name)
			continue
		}
		kind, ok := KindOf(err)
		require.True(t, ok, test.name)
		assert.Equal(t, test.wantKind, kind, test.name)
	}

	_, err := decodeResponse([]byte(`{"result":null,"error":{"code":-5,"message":"No such tx"},"id":1}`))
	assert.True(t, IsServerError(err, btcjson.ErrRPCInvalidAddressOrKey))
}

func TestMarshalParamsError(t *testing.T) {
	_, err := marshalParams([]interface{}{1, func() {}})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindParam, kind)
	assert.Contains(t, err.Error(), "encode param 1")
}
