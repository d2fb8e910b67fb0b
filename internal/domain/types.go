package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TransferType classifies an on-chain NFT transfer from a wallet's point of view
type TransferType string

const (
	TransferTypeMint     TransferType = "mint"
	TransferTypeBurn     TransferType = "burn"
	TransferTypeTransfer TransferType = "transfer"
	TransferTypeSale     TransferType = "sale"
	TransferTypeBuy      TransferType = "buy"
)

// OnboardingMode selects the wallet onboarding pipeline shape
type OnboardingMode string

const (
	// OnboardingModeFull runs the member pipeline: holdings, portfolio total,
	// transfer backfill, access gate, ENS, thumbnail
	OnboardingModeFull OnboardingMode = "full"

	// OnboardingModeTracked runs the shorter pipeline used for watched third-party
	// wallets: holdings, transfer backfill, ENS, thumbnail
	OnboardingModeTracked OnboardingMode = "tracked"
)

// WalletOnboardingRequest is the input of the wallet onboarding workflow
type WalletOnboardingRequest struct {
	Address string         `json:"address"`
	Mode    OnboardingMode `json:"mode"`
}

// NormalizeAddress lowercases an Ethereum address after validating its shape.
// All addresses are stored and compared in lowercase form.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid ethereum address %q", address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

// IsNullAddress reports whether the address is the zero address
func IsNullAddress(address string) bool {
	return strings.EqualFold(address, NullAddress)
}

// DecodeHexTokenID converts a hex token identifier (with or without 0x prefix)
// to its decimal string form. Token IDs can exceed uint64 so big.Int is used.
func DecodeHexTokenID(hexID string) (string, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hexID), "0x")
	if s == "" {
		return "", fmt.Errorf("empty token id")
	}

	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return "", fmt.Errorf("invalid hex token id %q", hexID)
	}

	return n.String(), nil
}

// ClassifyTransfer determines the transfer type by the null-address rule:
// transfers from the zero address are mints, transfers to it are burns.
func ClassifyTransfer(from, to string) TransferType {
	switch {
	case IsNullAddress(from):
		return TransferTypeMint
	case IsNullAddress(to):
		return TransferTypeBurn
	default:
		return TransferTypeTransfer
	}
}

// ClassifyWalletTransfer refines ClassifyTransfer for a specific wallet.
// A plain transfer with attached value becomes a sale when the wallet is the
// sender and a buy when it is the recipient.
func ClassifyWalletTransfer(wallet, from, to string, valueETH float64) TransferType {
	t := ClassifyTransfer(from, to)
	if t != TransferTypeTransfer || valueETH <= 0 {
		return t
	}

	switch {
	case strings.EqualFold(wallet, from):
		return TransferTypeSale
	case strings.EqualFold(wallet, to):
		return TransferTypeBuy
	default:
		return TransferTypeTransfer
	}
}
