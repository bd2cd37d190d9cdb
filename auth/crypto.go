// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	vOffset      = 64
	legacySigAdj = 27
)

func Sign(dh []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	sig[vOffset] += legacySigAdj
	return sig, nil
}

// DeriveSender recovers the public key that produced [sig] over digest [dh].
// Signatures are fixed-format (r ‖ s ‖ v) triplets; [s] must be in the
// canonical low-half range and the recovery id must be valid.
func DeriveSender(dh []byte, sig []byte) (*ecdsa.PublicKey, error) {
	if len(sig) != crypto.SignatureLength {
		return nil, ErrInvalidSignature
	}
	// Avoid modifying the signature in place in case it is used elsewhere
	sigcpy := make([]byte, crypto.SignatureLength)
	copy(sigcpy, sig)

	// Support signers that don't apply offset (ex: ledger)
	if sigcpy[vOffset] >= legacySigAdj {
		sigcpy[vOffset] -= legacySigAdj
	}
	r := new(big.Int).SetBytes(sigcpy[:32])
	s := new(big.Int).SetBytes(sigcpy[32:vOffset])
	if !crypto.ValidateSignatureValues(sigcpy[vOffset], r, s, true) {
		return nil, ErrInvalidSignature
	}
	return crypto.SigToPub(dh, sigcpy)
}
