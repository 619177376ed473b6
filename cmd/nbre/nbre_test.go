/*
 *  Copyright (C) 2017 gyee authors
 *
 *  This file is part of the gyee library.
 *
 *  The gyee library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The gyee library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/common/address"
	"github.com/yeeco/nbre/common/codec"
	"github.com/yeeco/nbre/core"
	"github.com/yeeco/nbre/core/txdb"
	"github.com/yeeco/nbre/persistent"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		text, from, to, want string
	}{
		{"00010203", "hex", "base64", "AAECAw=="},
		{"AAECAw==", "base64", "hex", "00010203"},
		{"0000ff", "hex", "base58", "115Q"},
		{"115Q", "Base58", " HEX ", "0000ff"},
		{"", "hex", "base58", ""},
	}
	for _, tt := range tests {
		got, err := convert(tt.text, tt.from, tt.to)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}

	_, err := convert("abc", "hex", "base64")
	assert.True(t, errors.Is(err, codec.ErrInvalidInput))
	_, err = convert("00", "hex", "base32")
	assert.True(t, errors.Is(err, codec.ErrUnknownCodec))
}

// testAddresses derives two accounts and a contract of the first.
func testAddresses(t *testing.T) (alice, bob, contract *address.Address) {
	var err error
	pubkey := make([]byte, address.PublicKeyLength)
	pubkey[0] = 0x04
	alice, err = address.NewAddressFromPublicKey(pubkey)
	require.NoError(t, err)
	pubkey[1] = 0x01
	bob, err = address.NewAddressFromPublicKey(pubkey)
	require.NoError(t, err)
	contract, err = address.NewContractAddress(alice, 0)
	require.NoError(t, err)
	return alice, bob, contract
}

func importJSON(t *testing.T) string {
	alice, bob, contract := testAddresses(t)
	a, b, c := alice.Bytes().Hex(), bob.Bytes().Hex(), contract.Bytes().Hex()
	return `{
  "blocks": [
    {"height": 1, "transactions": [
      {"from": "` + a + `", "to": "` + b + `", "value": 10, "hash": "0101"},
      {"height": 1, "from": "` + b + `", "to": "` + c + `", "value": 5, "hash": "0102"}
    ]},
    {"height": 3, "transactions": [
      {"from": "` + b + `", "to": "` + a + `", "value": 1, "hash": "0301"}
    ]}
  ],
  "accounts": [
    {"address": "` + a + `", "type": 1, "balance": 100, "height": 0},
    {"address": "` + b + `", "type": 1, "balance": 100, "height": 0},
    {"address": "` + c + `", "type": 2, "balance": 0, "height": 0}
  ]
}`
}

func newTestStore(t *testing.T) *core.ChainStore {
	store, err := core.NewChainStore(persistent.NewMemoryStorage(), 16, 1)
	require.NoError(t, err)
	return store
}

func TestImportAndRead(t *testing.T) {
	store := newTestStore(t)
	alice, _, _ := testAddresses(t)

	blocks, accounts, err := importChain(store, strings.NewReader(importJSON(t)))
	require.NoError(t, err)
	assert.Equal(t, 2, blocks)
	assert.Equal(t, 3, accounts)

	height, err := store.LastBlockHeight()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), height)

	db := txdb.NewTransactionDB(store)
	txs, err := db.ReadTransactionsFromDBWithDuration(0, 3)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, uint64(1), txs[0].Height)
	assert.Equal(t, big.NewInt(10), txs[0].Value)

	inter, err := db.ReadAccountInterTransactions(0, 3)
	require.NoError(t, err)
	require.Len(t, inter, 2)
	assert.Equal(t, "0101", inter[0].Hash.Hex())
	assert.Equal(t, "0301", inter[1].Hash.Hex())

	var buf bytes.Buffer
	require.NoError(t, writeTransactions(&buf, inter))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first core.TransactionInfo
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.True(t, first.Hash.Equals(common.NewBytes(0x01, 0x01)))
	assert.True(t, first.From.Equals(alice.Bytes()))
}

func TestImportRejectsBadInput(t *testing.T) {
	alice, _, contract := testAddresses(t)
	tests := []struct {
		name string
		json string
		want error
	}{
		{"truncated", "{", nil},
		{"height mismatch", `{"blocks":[{"height":2,"transactions":[{"height":5}]}]}`, core.ErrTxHeightMismatch},
		{"bad hash", `{"blocks":[{"height":2,"transactions":[{"hash":"0g"}]}]}`, nil},
		{"null transaction", `{"blocks":[{"height":1,"transactions":[null]}]}`, core.ErrInvalidTransaction},
		{"null account", `{"accounts":[null]}`, core.ErrInvalidAccount},
		{"short address", `{"accounts":[{"address":"01aa","type":1}]}`, core.ErrInvalidAccount},
		{"type mismatch", `{"accounts":[{"address":"` + contract.Bytes().Hex() + `","type":1}]}`, core.ErrInvalidAccount},
		{"type mismatch account", `{"accounts":[{"address":"` + alice.Bytes().Hex() + `","type":2}]}`, core.ErrInvalidAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			_, _, err := importChain(store, strings.NewReader(tt.json))
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), err.Error())
			}
			// nothing of a refused account list is stored
			_, err = store.Account(alice.Bytes(), 10)
			assert.Equal(t, core.ErrAccountNotFound, err)
		})
	}
}

func TestAddressHelpers(t *testing.T) {
	alice, _, contract := testAddresses(t)

	derived, err := contractAddress(alice.String(), "0")
	require.NoError(t, err)
	assert.True(t, derived.Equals(contract))
	assert.Equal(t, address.AddressTypeContract, derived.Type())

	desc := describeAddress(alice)
	assert.Equal(t, alice.String()+" account "+alice.Bytes().Hex(), desc)

	_, err = contractAddress(alice.String(), "-1")
	assert.Error(t, err)
	_, err = contractAddress("not-base58", "0")
	assert.True(t, errors.Is(err, address.ErrInvalidAddressFormat))
}

func TestAppCommands(t *testing.T) {
	app := newApp()
	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"encode", "decode", "convert", "tx", "import", "address", "config"}, names)
}
