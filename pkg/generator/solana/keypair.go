// Package solana implements keypair generation and Base58 suffix matching
// for Solana mint addresses (Ed25519 public keys, Base58 display form).
package solana

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/mr-tron/base58"
)

// Keypair is an Ed25519 keypair in Solana's layout: the 64-byte private
// key is seed || public key.
type Keypair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// NewKeypair generates one fresh keypair from the system's secure random
// source. An error here means the random source itself is broken and the
// process cannot meaningfully continue.
func NewKeypair() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{Public: pub, Private: priv}, nil
}

// Address returns the Base58 display encoding of the public key.
func (k Keypair) Address() string {
	return base58.Encode(k.Public)
}

// PrivateKeyDisplay returns the Base58 encoding of the full 64-byte
// keypair, the form Solana wallets import.
func (k Keypair) PrivateKeyDisplay() string {
	return base58.Encode(k.Private)
}
