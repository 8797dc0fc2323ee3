package forum

//go:generate mockgen -destination=mock/mock_service.go -package=mockforum -source=service.go

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/vgc-companion/internal/auth"
	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/rs/zerolog/log"
)

// MaxMessageLength is the longest message body accepted, in characters
const MaxMessageLength = 2000

const (
	msgEmptyMessage   = "Message cannot be empty."
	msgMessageTooLong = "Message must be 2000 characters or fewer."
)

// Service reads and posts to the community forum
type Service interface {
	ListTopics(ctx context.Context) ([]*vgcapi.ForumTopic, error)
	GetTopic(ctx context.Context, id string) (*vgcapi.ForumTopic, error)

	// PostMessage posts as the session user carried by ctx
	PostMessage(ctx context.Context, topicID, content string) (*vgcapi.ForumMessage, error)
}

type service struct {
	client vgcapi.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client vgcapi.Client // Required
}

// NewService creates a new forum service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("vgcapi client is required")
	}

	return &service{client: cfg.Client}
}

func (s *service) ListTopics(ctx context.Context) ([]*vgcapi.ForumTopic, error) {
	topics, err := s.client.ListForumTopics(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list forum topics")
	}
	return topics, nil
}

func (s *service) GetTopic(ctx context.Context, id string) (*vgcapi.ForumTopic, error) {
	if strings.TrimSpace(id) == "" {
		return nil, vgcerr.InvalidArgument("topic id is required")
	}

	topic, err := s.client.GetForumTopic(ctx, id)
	if err != nil {
		return nil, vgcerr.Wrapf(err, "failed to get forum topic %s", id)
	}
	return topic, nil
}

func (s *service) PostMessage(ctx context.Context, topicID, content string) (*vgcapi.ForumMessage, error) {
	session, err := auth.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(topicID) == "" {
		return nil, vgcerr.InvalidArgument("topic id is required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, vgcerr.Validation(msgEmptyMessage)
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, vgcerr.Validation(msgMessageTooLong).
			WithMeta("length", utf8.RuneCountInString(content))
	}

	msg, err := s.client.PostForumMessage(ctx, topicID, &vgcapi.PostMessageInput{Content: content})
	if err != nil {
		return nil, vgcerr.Wrapf(err, "failed to post to topic %s", topicID)
	}

	log.Info().Str("uid", session.UID).Str("topicId", topicID).Msg("Posted forum message")
	return msg, nil
}
