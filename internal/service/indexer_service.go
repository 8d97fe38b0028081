package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/repository/specification"
	"acadmix-be/internal/repository/unitofwork"
)

// IIndexerService rebuilds the search_text column for content items after
// create/update, off the request path.
type IIndexerService interface {
	Consume(ctx context.Context) error
}

type indexerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IIndexerService {
	return &indexerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (s *indexerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IndexContentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal index message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: payload.ContentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get content %s: %v", payload.ContentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if content == nil {
		// Deleted between publish and consume.
		msg.Ack()
		return
	}

	text := buildSearchText(content)
	if err := uow.ContentRepository().UpdateSearchText(ctx, content.Id, text); err != nil {
		log.Printf("[ERROR] Failed to update search text for %s: %v", content.Id, err)
		msg.Nack()
		return
	}

	msg.Ack()
}

// buildSearchText flattens the searchable fields into one lowercase blob.
func buildSearchText(c *entity.Content) string {
	parts := []string{
		c.Title,
		c.Description,
		c.Subject,
		c.Branch,
		string(c.Type),
	}
	parts = append(parts, c.Tags...)
	if c.FileName != nil {
		parts = append(parts, *c.FileName)
	}

	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}
