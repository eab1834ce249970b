package domain

import (
	"fmt"
	"strings"
	"time"
)

// TokenRef is the on-chain identity of one enumerated token. It is built
// per page request and discarded after assembly.
type TokenRef struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"` // decimal string
	Owner           string `json:"owner"`
	TokenURI        string `json:"tokenURI"`
}

// RawMetadata is the off-chain JSON document a token URI points at.
// The document comes from untrusted IPFS content and has no enforced
// schema, so every accessor type-checks and supplies a default.
// A nil RawMetadata means the fetch or parse failed.
type RawMetadata map[string]interface{}

// GetString returns the string value for key, or empty when the key is
// absent or not a string
func (m RawMetadata) GetString(key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// firstString returns the first non-empty string among the given keys
func (m RawMetadata) firstString(keys ...string) string {
	for _, k := range keys {
		if v := m.GetString(k); v != "" {
			return v
		}
	}
	return ""
}

func (m RawMetadata) Title() string       { return m.firstString("title", "name") }
func (m RawMetadata) Description() string { return m.GetString("description") }
func (m RawMetadata) Author() string      { return m.firstString("author", "creator") }
func (m RawMetadata) License() string     { return m.firstString("license", "licenseType") }
func (m RawMetadata) MediaURL() string    { return m.firstString("mediaUrl", "image") }
func (m RawMetadata) MediaType() string   { return m.GetString("mediaType") }

// AssetType returns the declared asset type (art, music, docs, ...),
// lowercased and trimmed. Empty when the document does not declare one.
func (m RawMetadata) AssetType() string {
	return strings.ToLower(strings.TrimSpace(m.firstString("type", "assetType")))
}

// Timestamp parses the document's ISO timestamp. The zero time is
// returned when the field is missing or unparseable.
func (m RawMetadata) Timestamp() time.Time {
	raw := m.GetString("timestamp")
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// TimelineAsset is the merged on-chain + off-chain view of one token.
// Timestamp is the metadata timestamp when present, otherwise the time
// the page was resolved. It is a resolution-time stamp used only for
// feed ordering, never an authoritative mint time.
type TimelineAsset struct {
	TokenID         string      `json:"tokenId"`
	ContractAddress string      `json:"contractAddress"`
	Owner           string      `json:"owner"`
	TokenURI        string      `json:"tokenURI"`
	Metadata        RawMetadata `json:"metadata"` // nil when resolution failed
	Timestamp       time.Time   `json:"timestamp"`
}

// EventKind distinguishes the raw on-chain log types the aggregator consumes
type EventKind string

const (
	EventKindTransfer EventKind = "transfer"
	EventKindApproval EventKind = "approval"
)

// ChainEvent is a raw contract event log. For transfers From/To are the
// sender and recipient; for approvals they are the owner and the
// approved address.
type ChainEvent struct {
	Kind        EventKind `json:"kind"`
	TxHash      string    `json:"txHash"`
	BlockNumber uint64    `json:"blockNumber"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	TokenID     string    `json:"tokenId"`
}

// ActivityType classifies an activity record
type ActivityType string

const (
	ActivityMint        ActivityType = "mint"
	ActivityBurn        ActivityType = "burn"
	ActivityTransfer    ActivityType = "transfer"
	ActivityTransferIn  ActivityType = "transfer_in"
	ActivityTransferOut ActivityType = "transfer_out"
	ActivityApproval    ActivityType = "approval"
)

// ActivityMeta carries the on-chain provenance of an activity record
type ActivityMeta struct {
	BlockNumber     uint64 `json:"blockNumber"`
	ContractAddress string `json:"contractAddress"`
	IndexerSource   string `json:"indexerSource,omitempty"`
}

// ActivityRecord is one typed entry in the activity feed. Timestamp is an
// ISO string and stays empty until explorer enrichment resolves it.
type ActivityRecord struct {
	ID          string       `json:"id"` // txHash_blockNumber
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Hash        string       `json:"hash"`
	Timestamp   string       `json:"timestamp"`
	Status      string       `json:"status"`
	FromAddress string       `json:"fromAddress,omitempty"`
	ToAddress   string       `json:"toAddress,omitempty"`
	AssetID     string       `json:"assetId,omitempty"`
	Metadata    ActivityMeta `json:"metadata"`
}

// ActivityStatusCompleted is the only status emitted for confirmed
// on-chain events
const ActivityStatusCompleted = "completed"

// TxEnrichment is the explorer-resolved detail for one transaction hash
type TxEnrichment struct {
	TimestampIso string `json:"timestampIso"`
	Sender       string `json:"sender,omitempty"`
}

// Transfer is one row from the backend indexer's /transfers API
type Transfer struct {
	ID            string `json:"id"`
	From          string `json:"from"`
	To            string `json:"to"`
	TokenID       string `json:"tokenId"`
	Block         uint64 `json:"block"`
	IndexerSource string `json:"indexerSource,omitempty"`
}

// IsZeroAddress reports whether addr is the zero address in any of its
// hex spellings ("0x0", "0x00...0", "")
func IsZeroAddress(addr string) bool {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(addr)), "0x")
	if s == "" {
		return true
	}
	return strings.Trim(s, "0") == ""
}

// SameAddress compares two hex addresses ignoring case and leading zeros
func SameAddress(a, b string) bool {
	return normalizeAddress(a) == normalizeAddress(b)
}

func normalizeAddress(addr string) string {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(addr)), "0x")
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// ShortAddress renders an address for display, e.g. 0x049d3657...
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return fmt.Sprintf("%s...", addr[:10])
}
