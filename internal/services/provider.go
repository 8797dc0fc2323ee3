package services

import (
	"github.com/KirkDiggler/vgc-companion/internal/auth"
	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/notify/discord"
	"github.com/KirkDiggler/vgc-companion/internal/repositories/localstore"
	"github.com/KirkDiggler/vgc-companion/internal/services/forum"
	"github.com/KirkDiggler/vgc-companion/internal/services/pokedex"
	"github.com/KirkDiggler/vgc-companion/internal/services/rankings"
	"github.com/KirkDiggler/vgc-companion/internal/services/replays"
	"github.com/KirkDiggler/vgc-companion/internal/services/teambuilder"
	"github.com/KirkDiggler/vgc-companion/internal/services/turnassistant"
)

// Provider holds all service instances
type Provider struct {
	TurnAssistant turnassistant.Service
	Replays       replays.Service
	Rankings      rankings.Service
	Pokedex       pokedex.Service
	Forum         forum.Service
	TeamBuilder   teambuilder.Service
	EmailLinks    *auth.EmailLinkStore
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Client   vgcapi.Client
	Store    localstore.Repository
	Notifier discord.Notifier
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil || cfg.Client == nil {
		panic("vgcapi client is required")
	}

	// Use in-memory store if none provided
	store := cfg.Store
	if store == nil {
		store = localstore.NewInMemoryRepository()
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = discord.Nop{}
	}

	return &Provider{
		TurnAssistant: turnassistant.NewService(&turnassistant.ServiceConfig{
			Client:   cfg.Client,
			Notifier: notifier,
		}),
		Replays: replays.NewService(&replays.ServiceConfig{
			Client: cfg.Client,
			Store:  store,
		}),
		Rankings: rankings.NewService(&rankings.ServiceConfig{
			Client:   cfg.Client,
			Notifier: notifier,
		}),
		Pokedex:     pokedex.NewService(&pokedex.ServiceConfig{Client: cfg.Client}),
		Forum:       forum.NewService(&forum.ServiceConfig{Client: cfg.Client}),
		TeamBuilder: teambuilder.NewService(&teambuilder.ServiceConfig{Client: cfg.Client}),
		EmailLinks:  auth.NewEmailLinkStore(&auth.EmailLinkConfig{Store: store}),
	}
}
