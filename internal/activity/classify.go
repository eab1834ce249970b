package activity

import (
	"fmt"

	"github.com/mediolano-app/mip-indexer/internal/domain"
)

// Classify derives the viewer-independent activity type of a transfer
// event from its endpoint addresses
func Classify(from, to string) domain.ActivityType {
	if domain.IsZeroAddress(from) {
		return domain.ActivityMint
	}
	if domain.IsZeroAddress(to) {
		return domain.ActivityBurn
	}
	return domain.ActivityTransfer
}

// BuildRecord turns a chain event into an activity record. The timestamp
// stays empty until explorer enrichment resolves it.
func BuildRecord(event domain.ChainEvent, contractAddress, indexerSource, timestampIso string) domain.ActivityRecord {
	record := domain.ActivityRecord{
		ID:          fmt.Sprintf("%s_%d", event.TxHash, event.BlockNumber),
		Hash:        event.TxHash,
		Timestamp:   timestampIso,
		Status:      domain.ActivityStatusCompleted,
		FromAddress: event.From,
		ToAddress:   event.To,
		AssetID:     event.TokenID,
		Metadata: domain.ActivityMeta{
			BlockNumber:     event.BlockNumber,
			ContractAddress: contractAddress,
			IndexerSource:   indexerSource,
		},
	}

	if event.Kind == domain.EventKindApproval {
		record.Type = domain.ActivityApproval
		record.Title = "Approval Granted"
		record.Description = fmt.Sprintf("Approved %s for token %s", domain.ShortAddress(event.To), event.TokenID)
		return record
	}

	switch Classify(event.From, event.To) {
	case domain.ActivityMint:
		record.Type = domain.ActivityMint
		record.Title = "Minted IP Asset"
		record.Description = fmt.Sprintf("Minted to %s", domain.ShortAddress(event.To))
	case domain.ActivityBurn:
		record.Type = domain.ActivityBurn
		record.Title = "Burned IP Asset"
		record.Description = fmt.Sprintf("Burned from %s", domain.ShortAddress(event.From))
	default:
		record.Type = domain.ActivityTransfer
		record.Title = "Transferred IP Asset"
		record.Description = fmt.Sprintf("Transferred from %s to %s", domain.ShortAddress(event.From), domain.ShortAddress(event.To))
	}

	return record
}

// Localize rewrites plain transfers relative to a viewer address. Mint,
// burn and approval records are viewer-independent and pass through.
func Localize(records []domain.ActivityRecord, viewer string) []domain.ActivityRecord {
	if viewer == "" {
		return records
	}

	out := make([]domain.ActivityRecord, len(records))
	for i, record := range records {
		if record.Type != domain.ActivityTransfer {
			out[i] = record
			continue
		}
		if domain.SameAddress(record.FromAddress, viewer) {
			record.Type = domain.ActivityTransferOut
			record.Title = "Transferred IP Asset"
			record.Description = fmt.Sprintf("Transferred asset to %s", domain.ShortAddress(record.ToAddress))
		} else {
			record.Type = domain.ActivityTransferIn
			record.Title = "Received IP Asset"
			record.Description = fmt.Sprintf("Received asset from %s", domain.ShortAddress(record.FromAddress))
		}
		out[i] = record
	}
	return out
}

// EventFromTransfer adapts a backend transfer row into a chain event.
// Mint rows arrive with an empty sender; the event carries the zero
// address so records render a concrete endpoint.
func EventFromTransfer(t domain.Transfer) domain.ChainEvent {
	from := t.From
	if from == "" {
		from = domain.STARKNET_ZERO_ADDRESS
	}
	return domain.ChainEvent{
		Kind:        domain.EventKindTransfer,
		TxHash:      t.ID,
		BlockNumber: t.Block,
		From:        from,
		To:          t.To,
		TokenID:     t.TokenID,
	}
}
