package activity_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediolano-app/mip-indexer/internal/activity"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testContract = "0x03c7"

func transferEvent(hash string, block uint64, from, to string) domain.ChainEvent {
	return domain.ChainEvent{
		Kind:        domain.EventKindTransfer,
		TxHash:      hash,
		BlockNumber: block,
		From:        from,
		To:          to,
		TokenID:     "7",
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want domain.ActivityType
	}{
		{"mint from zero address", "0x0", "0x222", domain.ActivityMint},
		{"mint from long zero address", "0x0000000000000000000000000000000000000000000000000000000000000000", "0x222", domain.ActivityMint},
		{"burn to zero address", "0x111", "0x0", domain.ActivityBurn},
		{"plain transfer", "0x111", "0x222", domain.ActivityTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activity.Classify(tt.from, tt.to))
		})
	}
}

func TestBuildRecord_Mint(t *testing.T) {
	event := transferEvent("0xaaa", 1200, "0x0", "0x222")
	record := activity.BuildRecord(event, testContract, "apibara", "2026-08-01T10:00:00Z")

	assert.Equal(t, "0xaaa_1200", record.ID)
	assert.Equal(t, domain.ActivityMint, record.Type)
	assert.Equal(t, "Minted IP Asset", record.Title)
	assert.Equal(t, "Minted to 0x222", record.Description)
	assert.Equal(t, "0xaaa", record.Hash)
	assert.Equal(t, "2026-08-01T10:00:00Z", record.Timestamp)
	assert.Equal(t, domain.ActivityStatusCompleted, record.Status)
	assert.Equal(t, "7", record.AssetID)
	assert.Equal(t, uint64(1200), record.Metadata.BlockNumber)
	assert.Equal(t, testContract, record.Metadata.ContractAddress)
	assert.Equal(t, "apibara", record.Metadata.IndexerSource)
}

func TestBuildRecord_Burn(t *testing.T) {
	event := transferEvent("0xbbb", 1300, "0x111", "0x0")
	record := activity.BuildRecord(event, testContract, "", "")

	assert.Equal(t, domain.ActivityBurn, record.Type)
	assert.Equal(t, "Burned IP Asset", record.Title)
	assert.Equal(t, "Burned from 0x111", record.Description)
	// unresolved enrichment keeps the timestamp empty
	assert.Empty(t, record.Timestamp)
}

func TestBuildRecord_TruncatesAddressesInDescription(t *testing.T) {
	event := transferEvent("0xddd", 1500,
		"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
		"0x053c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8")
	record := activity.BuildRecord(event, testContract, "", "")

	assert.Equal(t, "Transferred from 0x049d3657... to 0x053c9125...", record.Description)
	// endpoints stay untruncated for filtering
	assert.Equal(t, "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7", record.FromAddress)
}

func TestBuildRecord_Approval(t *testing.T) {
	event := domain.ChainEvent{
		Kind:        domain.EventKindApproval,
		TxHash:      "0xccc",
		BlockNumber: 1400,
		From:        "0x111",
		To:          "0x333",
		TokenID:     "9",
	}
	record := activity.BuildRecord(event, testContract, "", "")

	assert.Equal(t, domain.ActivityApproval, record.Type)
	assert.Equal(t, "Approval Granted", record.Title)
	assert.Equal(t, "Approved 0x333 for token 9", record.Description)
}

func TestLocalize(t *testing.T) {
	records := []domain.ActivityRecord{
		activity.BuildRecord(transferEvent("0xaaa", 1, "0x111", "0x222"), testContract, "", ""),
		activity.BuildRecord(transferEvent("0xbbb", 2, "0x333", "0x111"), testContract, "", ""),
		activity.BuildRecord(transferEvent("0xccc", 3, "0x0", "0x111"), testContract, "", ""),
	}

	localized := activity.Localize(records, "0x111")

	assert.Equal(t, domain.ActivityTransferOut, localized[0].Type)
	assert.Equal(t, "Transferred asset to 0x222", localized[0].Description)
	assert.Equal(t, domain.ActivityTransferIn, localized[1].Type)
	assert.Equal(t, "Received IP Asset", localized[1].Title)
	// mint stays viewer-independent
	assert.Equal(t, domain.ActivityMint, localized[2].Type)
}

func TestLocalize_CaseInsensitiveViewer(t *testing.T) {
	records := []domain.ActivityRecord{
		activity.BuildRecord(transferEvent("0xaaa", 1, "0xABC", "0x222"), testContract, "", ""),
	}

	localized := activity.Localize(records, "0xabc")
	assert.Equal(t, domain.ActivityTransferOut, localized[0].Type)
}

func TestLocalize_NoViewerPassesThrough(t *testing.T) {
	records := []domain.ActivityRecord{
		activity.BuildRecord(transferEvent("0xaaa", 1, "0x111", "0x222"), testContract, "", ""),
	}

	localized := activity.Localize(records, "")
	assert.Equal(t, domain.ActivityTransfer, localized[0].Type)
}

func TestEventFromTransfer(t *testing.T) {
	event := activity.EventFromTransfer(domain.Transfer{
		ID:      "0xaaa",
		From:    "0x111",
		To:      "0x222",
		TokenID: "7",
		Block:   1200,
	})

	assert.Equal(t, domain.EventKindTransfer, event.Kind)
	assert.Equal(t, "0xaaa", event.TxHash)
	assert.Equal(t, uint64(1200), event.BlockNumber)
}

func TestEventFromTransfer_EmptySenderIsMint(t *testing.T) {
	event := activity.EventFromTransfer(domain.Transfer{
		ID:      "0xbbb",
		From:    "",
		To:      "0x222",
		TokenID: "8",
		Block:   1300,
	})

	assert.Equal(t, domain.STARKNET_ZERO_ADDRESS, event.From)
	assert.Equal(t, domain.ActivityMint, activity.Classify(event.From, event.To))
}
