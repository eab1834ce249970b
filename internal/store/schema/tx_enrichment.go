package schema

import "time"

// TxEnrichment persists explorer transaction details so that restarts do
// not re-fetch recently enriched hashes
type TxEnrichment struct {
	Hash         string    `gorm:"primaryKey;type:text"`
	TimestampIso string    `gorm:"type:text"`
	Sender       string    `gorm:"type:text"`
	CachedAt     time.Time `gorm:"index;not null"`
}

func (TxEnrichment) TableName() string {
	return "tx_enrichments"
}
