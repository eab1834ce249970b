package messaging

import (
	"context"

	"github.com/mediolano-app/mip-indexer/internal/domain"
)

// Publisher defines the interface for publishing activity records to a
// message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishActivity publishes an activity record to the message broker
	PublishActivity(ctx context.Context, record *domain.ActivityRecord) error
	// Close closes the connection
	Close()
}
