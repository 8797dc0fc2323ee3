package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/vgc-companion/internal/auth"
	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/config"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/logger"
	"github.com/KirkDiggler/vgc-companion/internal/notify/discord"
	"github.com/KirkDiggler/vgc-companion/internal/repositories/localstore"
	"github.com/KirkDiggler/vgc-companion/internal/services"
	"github.com/KirkDiggler/vgc-companion/internal/uuid"
)

const usage = `usage: vgc <command> [arguments]

commands:
  analyze     validate and submit a turn scenario
  conditions  edit battle conditions and print the result
  replays     saved replays and the analytics selection
  rankings    monthly usage rankings
  pokedex     search and look up Pokémon
  forum       read and post to the forum
  team        team builder suggestions
  auth        sign-in helpers
`

// app is everything a command needs
type app struct {
	cfg      *config.Config
	provider *services.Provider
	out      io.Writer
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"analyze":    runAnalyze,
	"conditions": runConditions,
	"replays":    runReplays,
	"rankings":   runRankings,
	"pokedex":    runPokedex,
	"forum":      runForum,
	"team":       runTeam,
	"auth":       runAuth,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}
	logger.Init(cfg.Log.Level)

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg.Store)
	defer closeStore()

	client, err := vgcapi.New(&vgcapi.Config{
		BaseURL:       cfg.API.BaseURL,
		HTTPClient:    &http.Client{Timeout: cfg.API.Timeout},
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, vgcerr.UserMessage(err))
		return 2
	}

	notifier, err := discord.New(&discord.Config{
		WebhookID:    cfg.Discord.WebhookID,
		WebhookToken: cfg.Discord.WebhookToken,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Discord sharing disabled")
		notifier = discord.Nop{}
	}

	if cfg.Auth.IDToken != "" {
		session, err := auth.SessionFromToken(cfg.Auth.IDToken)
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring VGC_ID_TOKEN")
		} else {
			ctx = auth.WithSession(ctx, session)
			log.Debug().Str("uid", session.UID).Msg("Signed in")
		}
	}

	a := &app{
		cfg: cfg,
		provider: services.NewProvider(&services.ProviderConfig{
			Client:   client,
			Store:    store,
			Notifier: notifier,
		}),
		out: os.Stdout,
	}

	if err := cmd(ctx, a, args[1:]); err != nil {
		log.Debug().Err(err).Str("command", args[0]).Msg("Command failed")
		fmt.Fprintln(os.Stderr, vgcerr.UserMessage(err))
		return 1
	}
	return 0
}

// openStore prefers Redis, then a state file, then memory
func openStore(ctx context.Context, cfg config.StoreConfig) (localstore.Repository, func()) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to parse Redis URL, falling back")
		} else {
			client := redis.NewClient(opts)

			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := client.Ping(pingCtx).Err()
			cancel()

			if err == nil {
				log.Debug().Str("addr", opts.Addr).Msg("Using Redis for local state")
				return localstore.NewRedis(client), func() {
					if err := client.Close(); err != nil {
						log.Warn().Err(err).Msg("Error closing Redis connection")
					}
				}
			}
			_ = client.Close()
			log.Warn().Err(err).Msg("Failed to connect to Redis, falling back")
		}
	}

	if cfg.Path != "" {
		log.Debug().Str("path", cfg.Path).Msg("Using state file for local state")
		return localstore.NewFileRepository(cfg.Path), func() {}
	}

	log.Debug().Msg("Using in-memory local state")
	return localstore.NewInMemoryRepository(), func() {}
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to write output")
	}
	return nil
}
