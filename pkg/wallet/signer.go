package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/docsign-bridge/pkg/config"
)

// Signer holds the unlocked operator account
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner wraps an already unlocked private key
func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// Address returns the account address
func (s *Signer) Address() common.Address {
	return s.address
}

// SignerFromHex loads a raw hex private key, with or without 0x prefix
func SignerFromHex(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	return NewSigner(key), nil
}

// SignerFromKeystore decrypts a V3 keystore file
func SignerFromKeystore(path, password string) (*Signer, error) {
	keyJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore file: %w", err)
	}

	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, fmt.Errorf("failed to unlock keystore: %w", err)
	}
	return NewSigner(key.PrivateKey), nil
}

// LoadSigner unlocks the configured account. It returns nil, nil when no account is configured.
func LoadSigner(cfg *config.EthereumConfig) (*Signer, error) {
	switch {
	case cfg.PrivateKey != "":
		return SignerFromHex(cfg.PrivateKey)
	case cfg.KeystoreFile != "":
		return SignerFromKeystore(cfg.KeystoreFile, cfg.KeystorePassword)
	default:
		return nil, nil
	}
}
