package model

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NormalizeAddress lower-cases and validates a hex wallet address.
func NormalizeAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if !common.IsHexAddress(trimmed) {
		return "", NewValidationError("address", address, "expected a 0x-prefixed 20-byte hex address")
	}
	if !strings.HasPrefix(trimmed, "0x") && !strings.HasPrefix(trimmed, "0X") {
		trimmed = "0x" + trimmed
	}
	return strings.ToLower(trimmed), nil
}

// NormalizeHash lower-cases and validates a 32-byte transaction hash.
func NormalizeHash(hash string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(hash))
	raw, err := hexutil.Decode(lowered)
	if err != nil || len(raw) != common.HashLength {
		return "", NewValidationError("hash", hash, "expected a 0x-prefixed 32-byte hex hash")
	}
	return lowered, nil
}
