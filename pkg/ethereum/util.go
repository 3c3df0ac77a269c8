package ethereum

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrInvalidAddress is returned for anything that is not a 0x-prefixed 20 byte hex address
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidDocumentHash is returned for anything that is not a 0x-prefixed 32 byte hex value
	ErrInvalidDocumentHash = errors.New("invalid document hash")
)

// ValidateAddress checks if a string is a valid EVM address
func ValidateAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if len(address) != 2+2*common.AddressLength {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// ParseAddress converts operator input into an address argument.
// Surrounding whitespace is ignored. All-lower and all-upper hex is taken as is;
// mixed case must carry a valid EIP-55 checksum.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.Address{}, fmt.Errorf("%w: empty value", ErrInvalidAddress)
	}
	if !ValidateAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	addr := common.HexToAddress(s)
	digits := s[2:]
	if digits != strings.ToLower(digits) && digits != strings.ToUpper(digits) && digits != addr.Hex()[2:] {
		return common.Address{}, fmt.Errorf("%w: bad checksum %q", ErrInvalidAddress, s)
	}
	return addr, nil
}

// ParseDocumentHash converts operator input into a bytes32 argument
func ParseDocumentHash(s string) ([32]byte, error) {
	var out [32]byte

	s = strings.TrimSpace(s)
	if s == "" {
		return out, fmt.Errorf("%w: empty value", ErrInvalidDocumentHash)
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidDocumentHash, err)
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidDocumentHash, len(b))
	}

	copy(out[:], b)
	return out, nil
}
