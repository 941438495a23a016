// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/keypair"
	"github.com/bitmark-inc/ontkit/transactionrecord"
)

// m/44'/1024'/0'/0/{0,1,2} of the test mnemonic
var testKeys = []struct {
	privateKey string
	publicKey  string
}{
	{
		"5d27617550727b07625a05c0acf1e0a22ab4ce6055eeb9e906f4fbf946311a2c",
		"03a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c",
	},
	{
		"36c6c332960598807a9ab197501b883b583f1270e7acc9f98075a7f37ed8b479",
		"0281bfed65dac125cacd98be68cf35602f63174c956e24408459b39b3ed8b4a095",
	},
	{
		"",
		"02ebb7468da06b1cf2ef7e7560e2dfaeae41bf50248b9037fa945afdd6798ec09e",
	},
}

// 2 of 3 multisig account transferring 100 ONT to key 0's account,
// signed by keys 1 and 0
const (
	testNonce    = 0x5b64094b
	testGasPrice = 500
	testGasLimit = 20000

	testPayer = "AN59e4ZGTRm3RYdpKKXEmvFNcnVj8fECrG"
	testTo    = "ARXRQog4iZazp5YfXRyDZvU6ahrt3c2bb7"

	testCode = "00c66b" +
		"1445152d07f3bff61aa85f75d62e116a8c297cffd2" + "6a7cc8" +
		"146af588999ae59fe3e436a165c6ce475306be4b6f" + "6a7cc8" +
		"0164" + "6a7cc8" +
		"6c" + "51c1" +
		"087472616e73666572" +
		"140000000000000000000000000000000000000001" +
		"00" +
		"68" + "164f6e746f6c6f67792e4e61746976652e496e766f6b65"

	testUnsigned = "00d1" + "4b09645b" + "f401000000000000" + "204e000000000000" +
		"45152d07f3bff61aa85f75d62e116a8c297cffd2" +
		"72" + testCode +
		"00"

	testSig1 = "01ebb85d57d1bc8460d353c77f180e1546ab7a41960d618df7e6fd66d166d51c78" +
		"c6bec1ffbd6624fd304c069ce581a5785c471e5d9aa1923918acf069c93d74fe"
	testSig0 = "014be2a77365095063dccbb831a746d30deb9c3eee937669e1214d33f494a704ce" +
		"3374755f95256307c1dbb2e6ed0e35c3b4c762a524d599ddcdef7cd9b8d4bf18"

	testMultiProgram = "52" +
		"210281bfed65dac125cacd98be68cf35602f63174c956e24408459b39b3ed8b4a095" +
		"2103a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c" +
		"2102ebb7468da06b1cf2ef7e7560e2dfaeae41bf50248b9037fa945afdd6798ec09e" +
		"53ae"

	testPacked = testUnsigned +
		"01" +
		"84" + "41" + testSig1 + "41" + testSig0 +
		"69" + testMultiProgram

	testCompact = testUnsigned +
		"01" +
		"03" +
		"21" + "0281bfed65dac125cacd98be68cf35602f63174c956e24408459b39b3ed8b4a095" +
		"21" + "03a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c" +
		"21" + "02ebb7468da06b1cf2ef7e7560e2dfaeae41bf50248b9037fa945afdd6798ec09e" +
		"02" +
		"02" + "41" + testSig1 + "41" + testSig0

	testTxId = "b3589b4c5ac8a48b465f1431dd2dccc6dbdfa14913cdbecace59a21527d3ecbf"
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func decodeAddress(s string) address.Address {
	a, err := address.FromBase58(s)
	if nil != err {
		panic(err)
	}
	return a
}

func privateKey(i int) *keypair.PrivateKey {
	k, err := keypair.PrivateKeyFromBytes(decodeHex(testKeys[i].privateKey))
	if nil != err {
		panic(err)
	}
	return k
}

func publicKeys() [][]byte {
	keys := make([][]byte, len(testKeys))
	for i, k := range testKeys {
		keys[i] = decodeHex(k.publicKey)
	}
	return keys
}

// the unsigned vector transaction
func vectorTransaction(t *testing.T) *transactionrecord.Transaction {
	tx, err := transactionrecord.NewTransferTransaction(
		testGasPrice,
		testGasLimit,
		address.ONT,
		decodeAddress(testPayer),
		decodeAddress(testTo),
		100,
	)
	require.Nil(t, err, "build transfer")
	tx.Nonce = testNonce
	return tx
}

func TestKnownVectorUnpack(t *testing.T) {
	packed := transactionrecord.Packed(decodeHex(testPacked))
	assert.Equal(t, transactionrecord.Invoke, packed.Type(), "packed type")

	tx, err := packed.Unpack()
	require.Nil(t, err, "unpack")

	assert.Equal(t, uint8(0), tx.Version, "version")
	assert.Equal(t, transactionrecord.Invoke, tx.TxType, "type")
	assert.Equal(t, uint32(testNonce), tx.Nonce, "nonce")
	assert.Equal(t, uint64(testGasPrice), tx.GasPrice, "gas price")
	assert.Equal(t, uint64(testGasLimit), tx.GasLimit, "gas limit")
	assert.Equal(t, testPayer, tx.Payer.Base58(), "payer")
	assert.Equal(t, &transactionrecord.InvokeCode{Code: decodeHex(testCode)}, tx.Payload, "payload")

	require.Equal(t, 1, len(tx.Sigs), "signature records")
	sig := tx.Sigs[0]
	assert.Equal(t, uint8(2), sig.M, "threshold")
	keys := publicKeys()
	assert.Equal(t, [][]byte{keys[1], keys[0], keys[2]}, sig.PublicKeys, "sorted keys")
	assert.Equal(t, [][]byte{decodeHex(testSig1), decodeHex(testSig0)}, sig.SigData, "signatures")

	a, err := sig.Address()
	require.Nil(t, err, "signature address")
	assert.Equal(t, tx.Payer, a, "multisig controls payer")

	id, err := tx.TxId()
	require.Nil(t, err, "txid")
	assert.Equal(t, testTxId, id, "txid")

	assert.Nil(t, tx.VerifySignatures(), "signatures do not verify")

	repacked, err := tx.Pack()
	require.Nil(t, err, "repack")
	assert.Equal(t, testPacked, hex.EncodeToString(repacked), "repack")
}

func TestBuildTransfer(t *testing.T) {
	tx := vectorTransaction(t)

	unsigned, err := tx.PackUnsigned()
	require.Nil(t, err, "pack unsigned")
	assert.Equal(t, testUnsigned, hex.EncodeToString(unsigned), "unsigned bytes")

	id, err := tx.TxId()
	require.Nil(t, err, "txid")
	assert.Equal(t, testTxId, id, "txid")

	// unsigned transactions still pack, with zero signature records
	packed, err := tx.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, testUnsigned+"00", hex.EncodeToString(packed), "packed bytes")

	back, err := packed.Unpack()
	require.Nil(t, err, "unpack")
	assert.Equal(t, tx, back, "round trip")

	assert.Equal(t, fault.ErrMissingPayerSignature, tx.VerifySignatures(), "unsigned verifies")
}

func TestCompactLayout(t *testing.T) {
	compact, err := transactionrecord.Packed(decodeHex(testCompact)).UnpackWithLayout(transactionrecord.CompactLayout)
	require.Nil(t, err, "compact unpack")

	program, err := transactionrecord.Packed(decodeHex(testPacked)).Unpack()
	require.Nil(t, err, "program unpack")

	assert.Equal(t, program, compact, "layouts disagree")

	repacked, err := compact.PackWithLayout(transactionrecord.CompactLayout)
	require.Nil(t, err, "compact pack")
	assert.Equal(t, testCompact, hex.EncodeToString(repacked), "compact repack")

	_, err = compact.PackWithLayout(transactionrecord.Layout(7))
	assert.Equal(t, fault.ErrInvalidLayout, err, "unknown layout")
}

func TestUnpackTruncated(t *testing.T) {
	for _, s := range []string{testPacked, testCompact} {
		layout := transactionrecord.ProgramLayout
		if testCompact == s {
			layout = transactionrecord.CompactLayout
		}
		packed := decodeHex(s)
		for i := 0; i < len(packed); i += 1 {
			tx, err := transactionrecord.Packed(packed[:i]).UnpackWithLayout(layout)
			assert.Nil(t, tx, "%d: partial transaction", i)
			if assert.NotNil(t, err, "%d: truncation accepted", i) {
				assert.True(t, fault.IsErrFormat(err), "%d: error class of: %s", i, err)
			}
		}
	}
}

func TestUnpackInvalid(t *testing.T) {
	tests := []struct {
		packed string
		err    error
	}{
		{testPacked + "00", fault.ErrTrailingBytes},
		{"00d2" + testUnsigned[4:] + "00", fault.ErrUnknownTxType},
		{testUnsigned[:len(testUnsigned)-2] + "01" + "00", fault.ErrAttributesNotEmpty},
		{testUnsigned + "11", fault.ErrVarIntExceedsMaximum},
		{testUnsigned + "fd0100", fault.ErrNonCanonicalVarInt},
		// verification program without CHECKMULTISIG
		{testUnsigned + "01" + "84" + "41" + testSig1 + "41" + testSig0 + "68" + testMultiProgram[:len(testMultiProgram)-2], fault.ErrInvalidProgram},
	}

	for i, item := range tests {
		tx, err := transactionrecord.Packed(decodeHex(item.packed)).Unpack()
		assert.Nil(t, tx, "%d: partial transaction", i)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.True(t, fault.IsErrFormat(err), "%d: error class of: %s", i, err)
	}

	_, err := transactionrecord.Packed(decodeHex(testPacked)).UnpackWithLayout(transactionrecord.Layout(-1))
	assert.Equal(t, fault.ErrInvalidLayout, err, "unknown layout")
}

func TestPackInvariants(t *testing.T) {
	keys := publicKeys()

	tests := []struct {
		sig transactionrecord.Sig
		err error
	}{
		{transactionrecord.Sig{M: 1}, fault.ErrEmptyPublicKeys},
		{transactionrecord.Sig{PublicKeys: keys, M: 0}, fault.ErrInvalidMultiSignature},
		{transactionrecord.Sig{PublicKeys: keys, M: 4}, fault.ErrInvalidMultiSignature},
		{transactionrecord.Sig{PublicKeys: make([][]byte, 17), M: 1}, fault.ErrTooManyPublicKeys},
		{transactionrecord.Sig{PublicKeys: keys[:1], M: 1, SigData: [][]byte{make([]byte, 1025)}}, fault.ErrSignatureTooLong},
	}

	for i, item := range tests {
		tx := vectorTransaction(t)
		tx.Sigs = []transactionrecord.Sig{item.sig}

		for _, layout := range []transactionrecord.Layout{transactionrecord.ProgramLayout, transactionrecord.CompactLayout} {
			packed, err := tx.PackWithLayout(layout)
			assert.Nil(t, packed, "%d: packed despite error", i)
			assert.Equal(t, item.err, err, "%d: wrong error", i)
			assert.True(t, fault.IsErrInvalid(err), "%d: error class of: %s", i, err)
		}
	}

	tx := vectorTransaction(t)
	tx.Sigs = make([]transactionrecord.Sig, 17)
	_, err := tx.Pack()
	assert.Equal(t, fault.ErrTooManySignatures, err, "too many signature records")

	tx = vectorTransaction(t)
	tx.TxType = transactionrecord.Deploy
	_, err = tx.Pack()
	assert.Equal(t, fault.ErrPayloadMismatch, err, "payload mismatch")

	tx.Payload = nil
	_, err = tx.PackUnsigned()
	assert.Equal(t, fault.ErrNilParameter, err, "nil payload")
}

func TestSingleSign(t *testing.T) {
	key := privateKey(0)

	tx, err := transactionrecord.NewTransferTransaction(testGasPrice, testGasLimit, address.ONG, decodeAddress(testTo), decodeAddress(testPayer), 1)
	require.Nil(t, err, "build")

	err = tx.Sign(key)
	require.Nil(t, err, "sign")
	require.Equal(t, 1, len(tx.Sigs), "signature records")
	assert.Equal(t, [][]byte{key.PublicKey()}, tx.Sigs[0].PublicKeys, "signing key")
	assert.Equal(t, uint8(1), tx.Sigs[0].M, "threshold")

	assert.Nil(t, tx.VerifySignatures(), "verify")

	packed, err := tx.Pack()
	require.Nil(t, err, "pack")

	back, err := packed.Unpack()
	require.Nil(t, err, "unpack")
	assert.Equal(t, tx, back, "round trip")
	assert.Nil(t, back.VerifySignatures(), "verify after round trip")

	// any change invalidates the signature
	back.GasPrice += 1
	assert.Equal(t, fault.ErrInvalidSignature, back.VerifySignatures(), "tampered")
}

func TestMultiSign(t *testing.T) {
	keys := publicKeys()
	tx := vectorTransaction(t)

	// signing order is independent of the resulting signature order
	err := tx.MultiSign(2, keys, privateKey(0))
	require.Nil(t, err, "first signature")
	assert.Equal(t, fault.ErrInvalidSignature, tx.VerifySignatures(), "below threshold")

	err = tx.MultiSign(2, keys, privateKey(1))
	require.Nil(t, err, "second signature")

	// repeat is ignored
	err = tx.MultiSign(2, keys, privateKey(0))
	require.Nil(t, err, "repeated signature")

	require.Equal(t, 1, len(tx.Sigs), "one record")
	require.Equal(t, 2, len(tx.Sigs[0].SigData), "two signatures")

	d, err := tx.Hash()
	require.Nil(t, err, "hash")
	assert.Nil(t, keypair.Verify(keys[1], d[:], tx.Sigs[0].SigData[0]), "first signature belongs to first sorted key")
	assert.Nil(t, keypair.Verify(keys[0], d[:], tx.Sigs[0].SigData[1]), "second signature belongs to second sorted key")

	assert.Nil(t, tx.VerifySignatures(), "verify")

	packed, err := tx.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, testUnsigned, hex.EncodeToString(packed[:len(testUnsigned)/2]), "unsigned prefix")
	assert.Equal(t, "53ae", hex.EncodeToString(packed[len(packed)-2:]), "multisig suffix")
}

func TestMultiSignErrors(t *testing.T) {
	keys := publicKeys()
	tx := vectorTransaction(t)

	assert.Equal(t, fault.ErrInvalidMultiSignature, tx.MultiSign(0, keys, privateKey(0)), "zero threshold")
	assert.Equal(t, fault.ErrInvalidMultiSignature, tx.MultiSign(4, keys, privateKey(0)), "threshold above keys")
	assert.Equal(t, fault.ErrInvalidPublicKey, tx.MultiSign(1, keys[1:], privateKey(0)), "signer not in key set")
	assert.Equal(t, 0, len(tx.Sigs), "record added on error")
}

func TestDeployRoundTrip(t *testing.T) {
	tx := &transactionrecord.Transaction{
		TxType:   transactionrecord.Deploy,
		Nonce:    1,
		GasPrice: 0,
		GasLimit: 20000000,
		Payer:    decodeAddress(testTo),
		Payload: &transactionrecord.DeployCode{
			Code:        []byte{0x51, 0xc5, 0x6b},
			NeedStorage: true,
			Name:        "counter",
			Version:     "1.0",
			Author:      "someone",
			Email:       "someone@example.com",
			Description: "counts",
		},
	}

	err := tx.Sign(privateKey(0))
	require.Nil(t, err, "sign")

	packed, err := tx.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, transactionrecord.Deploy, packed.Type(), "packed type")

	back, err := packed.Unpack()
	require.Nil(t, err, "unpack")
	assert.Equal(t, tx, back, "round trip")
}

func TestPayloadForms(t *testing.T) {
	var value interface{} = transactionrecord.InvokeCode{Code: []byte{0x51}}
	_, ok := value.(transactionrecord.Payload)
	assert.False(t, ok, "invoke value is a payload")

	value = transactionrecord.DeployCode{Code: []byte{0x51}}
	_, ok = value.(transactionrecord.Payload)
	assert.False(t, ok, "deploy value is a payload")

	// pointer payloads come back identical
	tx := &transactionrecord.Transaction{
		TxType:   transactionrecord.Invoke,
		Nonce:    7,
		GasPrice: testGasPrice,
		GasLimit: testGasLimit,
		Payer:    decodeAddress(testTo),
		Payload:  &transactionrecord.InvokeCode{Code: []byte{0x51, 0x52, 0x93}},
	}
	packed, err := tx.Pack()
	require.Nil(t, err, "pack")
	back, err := packed.Unpack()
	require.Nil(t, err, "unpack")
	assert.Equal(t, tx, back, "round trip")

	tx.Payload = (*transactionrecord.InvokeCode)(nil)
	_, err = tx.Pack()
	assert.Equal(t, fault.ErrNilParameter, err, "typed nil invoke payload")

	tx.TxType = transactionrecord.Deploy
	tx.Payload = (*transactionrecord.DeployCode)(nil)
	_, err = tx.PackUnsigned()
	assert.Equal(t, fault.ErrNilParameter, err, "typed nil deploy payload")
}

func TestWithdrawONG(t *testing.T) {
	account := decodeAddress(testTo)
	tx, err := transactionrecord.NewWithdrawONGTransaction(testGasPrice, testGasLimit, account, account, 5)
	require.Nil(t, err, "build")

	code := tx.Payload.(*transactionrecord.InvokeCode).Code
	text := hex.EncodeToString(code)

	// sender, from the ONT contract, to, amount; method; ONG contract
	assert.Contains(t, text, "14"+hex.EncodeToString(address.ONT.Bytes())+"6a7cc8", "from ONT contract")
	assert.Contains(t, text, "0c7472616e7366657246726f6d", "transferFrom")
	assert.Contains(t, text, "14"+hex.EncodeToString(address.ONG.Bytes())+"00"+"68", "ONG contract")
	assert.Equal(t, account, tx.Payer, "payer")

	_, err = transactionrecord.NewTransferTransaction(testGasPrice, testGasLimit, address.ONT, address.Address{}, account, 1)
	assert.Equal(t, fault.ErrMissingParameters, err, "zero sender")
}

func TestTransferStateArray(t *testing.T) {
	tx, err := transactionrecord.NewTransferTransaction(testGasPrice, testGasLimit, address.ONT, decodeAddress(testPayer), decodeAddress(testTo), 1)
	require.Nil(t, err, "build")

	unsigned, err := tx.PackUnsigned()
	require.Nil(t, err, "pack unsigned")

	// header is version, type, nonce, gas price, gas limit, payer
	payload := unsigned[1+1+4+8+8+20:]
	assert.Equal(t, byte(0x71), payload[0], "payload length")

	code := tx.Payload.(*transactionrecord.InvokeCode).Code
	assert.Equal(t, 0x71, len(code), "code length")

	// one array holding the state struct, then the method name
	text := hex.EncodeToString(code)
	assert.Contains(t, text, "51"+"6a7cc8"+"6c"+"51c1"+"087472616e73666572", "state array")
	assert.NotContains(t, text, "51c151c1", "nested array")
}

func TestPackedJSON(t *testing.T) {
	type holder struct {
		Tx transactionrecord.Packed `json:"tx"`
	}

	h := holder{Tx: decodeHex(testUnsigned + "00")}
	buffer, err := json.Marshal(h)
	require.Nil(t, err, "marshal")
	assert.Equal(t, `{"tx":"`+testUnsigned+`00"}`, string(buffer), "json")

	var back holder
	err = json.Unmarshal(buffer, &back)
	require.Nil(t, err, "unmarshal")
	assert.Equal(t, h, back, "json round trip")
}

func TestTxTypeString(t *testing.T) {
	assert.Equal(t, "Invoke", transactionrecord.Invoke.String(), "invoke")
	assert.Equal(t, "Deploy", transactionrecord.Deploy.String(), "deploy")
	assert.Equal(t, "*unknown*", transactionrecord.TxType(0).String(), "unknown")
}
