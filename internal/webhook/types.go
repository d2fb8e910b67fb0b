package webhook

import "time"

// SignatureHeader carries the HMAC of the raw request body
const SignatureHeader = "X-Alchemy-Signature"

// ActivityEventType is the only webhook type we subscribe to
const ActivityEventType = "ADDRESS_ACTIVITY"

// CategoryToken marks fungible token transfers, which we skip
const CategoryToken = "token"

// Payload is the envelope of an address activity notification
type Payload struct {
	WebhookID string    `json:"webhookId"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Type      string    `json:"type"`
	Event     Event     `json:"event"`
}

// Event holds the activity items of one notification
type Event struct {
	Network  string     `json:"network"`
	Activity []Activity `json:"activity"`
}

// Activity is a single transfer observed on a watched address
type Activity struct {
	FromAddress     string            `json:"fromAddress"`
	ToAddress       string            `json:"toAddress"`
	BlockNum        string            `json:"blockNum"`
	BlockHash       string            `json:"blockHash"`
	Hash            string            `json:"hash"`
	Value           float64           `json:"value"`
	Asset           string            `json:"asset"`
	Category        string            `json:"category"`
	RawContract     RawContract       `json:"rawContract"`
	ERC721TokenID   string            `json:"erc721TokenId"`
	ERC1155Metadata []ERC1155Transfer `json:"erc1155Metadata"`
}

// RawContract identifies the contract behind an activity item
type RawContract struct {
	RawValue string `json:"rawValue"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}

// ERC1155Transfer carries a hex token id and hex amount of a batch transfer
type ERC1155Transfer struct {
	TokenID string `json:"tokenId"`
	Value   string `json:"value"`
}
