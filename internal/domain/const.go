package domain

// Provider names used as rate limiter keys and audit labels
const (
	ProviderAlchemyNFT = "alchemy_nft"
	ProviderAlchemyRPC = "alchemy_rpc"
	ProviderNFTPort    = "nftport"
	ProviderMnemonic   = "mnemonic"
	ProviderCoinGecko  = "coingecko"
)

const (
	// NullAddress is the zero address used by mints and burns
	NullAddress = "0x0000000000000000000000000000000000000000"

	// BlocksPerDay approximates Ethereum mainnet block production
	BlocksPerDay = 6200

	// WalletTransferLookbackDays bounds the transfer backfill during wallet onboarding
	WalletTransferLookbackDays = 14

	// MaxWalletNFTs caps the holdings persisted per wallet during onboarding
	MaxWalletNFTs = 100
)
