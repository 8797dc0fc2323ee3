package discord

//go:generate mockgen -destination=mock/mock_notifier.go -package=mockdiscord -source=notifier.go

import (
	"context"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Notifier shares results to a Discord channel
type Notifier interface {
	ShareAnalysis(ctx context.Context, share *AnalysisShare) error
	ShareRankings(ctx context.Context, share *RankingsShare) error
}

// AnalysisShare is a completed turn analysis
type AnalysisShare struct {
	Selection  pokemon.Selection
	Conditions *battle.Conditions
	Result     *vgcapi.AnalyzeResult
}

// RankingsShare is a page of usage rankings
type RankingsShare struct {
	Month    string
	Format   string
	Rankings []*vgcapi.Ranking
}

// webhookExecutor is the part of *discordgo.Session we use
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Config struct {
	WebhookID    string
	WebhookToken string
	Username     string
}

type webhookNotifier struct {
	executor     webhookExecutor
	webhookID    string
	webhookToken string
	username     string
}

// New returns a webhook notifier, or a no-op notifier when no webhook is configured
func New(cfg *Config) (Notifier, error) {
	if cfg == nil || cfg.WebhookID == "" || cfg.WebhookToken == "" {
		return Nop{}, nil
	}

	// webhooks authenticate with their own token
	session, err := discordgo.New("")
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to create discord session")
	}

	return newWebhookNotifier(session, cfg), nil
}

func newWebhookNotifier(executor webhookExecutor, cfg *Config) *webhookNotifier {
	username := cfg.Username
	if username == "" {
		username = "VGC Companion"
	}
	return &webhookNotifier{
		executor:     executor,
		webhookID:    cfg.WebhookID,
		webhookToken: cfg.WebhookToken,
		username:     username,
	}
}

func (n *webhookNotifier) ShareAnalysis(ctx context.Context, share *AnalysisShare) error {
	if share == nil || share.Result == nil {
		return vgcerr.InvalidArgument("analysis result is required")
	}
	return n.send(ctx, BuildAnalysisEmbed(share))
}

func (n *webhookNotifier) ShareRankings(ctx context.Context, share *RankingsShare) error {
	if share == nil || len(share.Rankings) == 0 {
		return vgcerr.InvalidArgument("rankings are required")
	}
	return n.send(ctx, BuildRankingsEmbed(share))
}

func (n *webhookNotifier) send(ctx context.Context, embed *discordgo.MessageEmbed) error {
	_, err := n.executor.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Username: n.username,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Warn().Err(err).Str("title", embed.Title).Msg("Failed to post to discord webhook")
		return vgcerr.WrapWithCode(err, vgcerr.CodeUnavailable, "failed to share to discord")
	}

	log.Debug().Str("title", embed.Title).Msg("Shared to discord")
	return nil
}

// Nop discards everything
type Nop struct{}

func (Nop) ShareAnalysis(context.Context, *AnalysisShare) error { return nil }

func (Nop) ShareRankings(context.Context, *RankingsShare) error { return nil }
