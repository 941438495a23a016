// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/keypair"
	"github.com/bitmark-inc/ontkit/util"
)

// Digest - double SHA-256 of the unsigned transaction
type Digest [32]byte

// String - transaction id form: byte reversed hex
func (d Digest) String() string {
	b := make([]byte, len(d))
	for i := range d {
		b[len(d)-1-i] = d[i]
	}
	return hex.EncodeToString(b)
}

// Hash - the digest that every signature covers
func (tx *Transaction) Hash() (Digest, error) {
	unsigned, err := tx.PackUnsigned()
	if nil != err {
		return Digest{}, err
	}
	return util.Hash256(unsigned), nil
}

// TxId - hash in the form shown by explorers and nodes
func (tx *Transaction) TxId() (string, error) {
	d, err := tx.Hash()
	if nil != err {
		return "", err
	}
	return d.String(), nil
}

// Sign - append a single key signature
func (tx *Transaction) Sign(signer keypair.Signer) error {
	if len(tx.Sigs) >= maxSignatures {
		return fault.ErrTooManySignatures
	}
	publicKey, err := keypair.CompressPublicKey(signer.PublicKey())
	if nil != err {
		return err
	}

	d, err := tx.Hash()
	if nil != err {
		return err
	}
	signature, err := signer.Sign(d[:])
	if nil != err {
		return err
	}

	tx.Sigs = append(tx.Sigs, Sig{
		PublicKeys: [][]byte{publicKey},
		M:          1,
		SigData:    [][]byte{signature},
	})
	return nil
}

// MultiSign - add a signature to the m of n record for publicKeys
//
// the record is created on first use; signatures are kept in the order of
// their keys in the sorted key list
func (tx *Transaction) MultiSign(m int, publicKeys [][]byte, signer keypair.Signer) error {
	if m < 1 || m > len(publicKeys) {
		return fault.ErrInvalidMultiSignature
	}
	if len(publicKeys) > maxPublicKeys {
		return fault.ErrTooManyPublicKeys
	}

	sorted, err := keypair.SortPublicKeys(publicKeys)
	if nil != err {
		return err
	}
	signerKey, err := keypair.CompressPublicKey(signer.PublicKey())
	if nil != err {
		return err
	}
	if !keypair.ContainsPublicKey(sorted, signerKey) {
		return fault.ErrInvalidPublicKey
	}

	d, err := tx.Hash()
	if nil != err {
		return err
	}

	var sig *Sig
	for i := range tx.Sigs {
		if int(tx.Sigs[i].M) == m && sameKeys(tx.Sigs[i].PublicKeys, sorted) {
			sig = &tx.Sigs[i]
			break
		}
	}
	if nil == sig {
		if len(tx.Sigs) >= maxSignatures {
			return fault.ErrTooManySignatures
		}
		signature, err := signer.Sign(d[:])
		if nil != err {
			return err
		}
		tx.Sigs = append(tx.Sigs, Sig{
			PublicKeys: sorted,
			M:          uint8(m),
			SigData:    [][]byte{signature},
		})
		return nil
	}

	// already signed by this key
	for _, s := range sig.SigData {
		if nil == keypair.Verify(signerKey, d[:], s) {
			return nil
		}
	}
	if len(sig.SigData) >= len(sig.PublicKeys) {
		return fault.ErrTooManySignatures
	}

	signature, err := signer.Sign(d[:])
	if nil != err {
		return err
	}

	// key position of each signature, unverifiable ones last
	position := func(s []byte) int {
		for i, k := range sig.PublicKeys {
			if nil == keypair.Verify(k, d[:], s) {
				return i
			}
		}
		return len(sig.PublicKeys)
	}
	signerPosition := position(signature)

	insert := len(sig.SigData)
	for i, s := range sig.SigData {
		if position(s) > signerPosition {
			insert = i
			break
		}
	}
	sig.SigData = append(sig.SigData, nil)
	copy(sig.SigData[insert+1:], sig.SigData[insert:])
	sig.SigData[insert] = signature
	return nil
}

// VerifySignatures - check every signature record and that the payer signed
func (tx *Transaction) VerifySignatures() error {
	d, err := tx.Hash()
	if nil != err {
		return err
	}

	payerSigned := false
	for i := range tx.Sigs {
		sig := &tx.Sigs[i]
		if err := sig.validate(); nil != err {
			return err
		}
		if len(sig.SigData) < int(sig.M) {
			return fault.ErrInvalidSignature
		}

		// signatures must follow key order, each key used at most once
		k := 0
		for _, s := range sig.SigData {
			for k < len(sig.PublicKeys) && nil != keypair.Verify(sig.PublicKeys[k], d[:], s) {
				k += 1
			}
			if k == len(sig.PublicKeys) {
				return fault.ErrInvalidSignature
			}
			k += 1
		}

		a, err := sig.Address()
		if nil != err {
			return err
		}
		if a == tx.Payer {
			payerSigned = true
		}
	}
	if !payerSigned {
		return fault.ErrMissingPayerSignature
	}
	return nil
}

// Address - the account controlled by a signature record's keys
func (sig *Sig) Address() (address.Address, error) {
	code, err := sig.program()
	if nil != err {
		return address.Address{}, err
	}
	return address.FromVMCode(code), nil
}

func sameKeys(a [][]byte, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
