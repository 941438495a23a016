// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type DerivationError GenericError
type ExistsError GenericError
type FormatError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrAttributesNotEmpty       = FormatError("transaction attributes are not empty")
	ErrBase58Decode             = FormatError("cannot decode base58 string")
	ErrChecksumMismatch         = FormatError("checksum mismatch")
	ErrDatabaseVersion          = ProcessError("database version is incompatible")
	ErrDegenerateDerivation     = DerivationError("degenerate key derivation: try next index")
	ErrEmptyPublicKeys          = InvalidError("signature has no public keys")
	ErrHardenedFromPublic       = InvalidError("cannot derive a hardened child from a public key")
	ErrInvalidAddressLength     = FormatError("address length is invalid")
	ErrInvalidAddressVersion    = FormatError("address version is invalid")
	ErrInvalidBoolean           = FormatError("boolean byte is invalid")
	ErrInvalidChildIndex        = InvalidError("child index is invalid")
	ErrInvalidExtendedKey       = FormatError("extended key is invalid")
	ErrInvalidExtendedKeyLength = FormatError("extended key length is invalid")
	ErrInvalidKeyVersion        = FormatError("extended key version is invalid")
	ErrInvalidLayout            = InvalidError("signature layout is invalid")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidMnemonic          = InvalidError("mnemonic is invalid")
	ErrInvalidMultiSignature    = InvalidError("multisignature threshold is invalid")
	ErrInvalidNetwork           = InvalidError("network is invalid")
	ErrInvalidPath              = InvalidError("derivation path is invalid")
	ErrInvalidPrivateKey        = InvalidError("private key is invalid")
	ErrInvalidProgram           = FormatError("program is invalid")
	ErrInvalidPublicKey         = InvalidError("public key is invalid")
	ErrInvalidSeed              = DerivationError("seed is invalid")
	ErrInvalidSeedLength        = InvalidError("seed length is invalid")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrLabelExists              = ExistsError("label already exists")
	ErrMaximumDepth             = InvalidError("maximum key depth reached")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrMissingPayerSignature    = InvalidError("payer has not signed")
	ErrNegativeVarInt           = InvalidError("variable integer is negative")
	ErrNilParameter             = InvalidError("nil parameter")
	ErrNonCanonicalVarInt       = FormatError("variable integer is not canonical")
	ErrNotFoundAccount          = NotFoundError("account not found")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrPayloadMismatch          = InvalidError("payload does not match transaction type")
	ErrPayloadTooLong           = InvalidError("payload is too long")
	ErrShortRead                = FormatError("short read")
	ErrSignatureTooLong         = InvalidError("signature is too long")
	ErrTooManyPublicKeys        = InvalidError("too many public keys")
	ErrTooManySignatures        = InvalidError("too many signatures")
	ErrTrailingBytes            = FormatError("unexpected bytes after transaction")
	ErrUnknownParameterType     = InvalidError("unknown parameter type")
	ErrUnknownTxType            = FormatError("unknown transaction type")
	ErrVarBytesTooLong          = FormatError("variable bytes length exceeds maximum")
	ErrVarIntExceedsMaximum     = FormatError("variable integer exceeds maximum")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DerivationError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e FormatError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrDerivation(e error) bool { _, ok := e.(DerivationError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrFormat(e error) bool     { _, ok := e.(FormatError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
