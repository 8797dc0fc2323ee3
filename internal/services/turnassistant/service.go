package turnassistant

//go:generate mockgen -destination=mock/mock_service.go -package=mockturnassistant -source=service.go

import (
	"context"
	"sync"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/logger"
	"github.com/KirkDiggler/vgc-companion/internal/notify/discord"
)

// Status is where the analysis form is in its lifecycle
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusSubmitting Status = "submitting"
)

// Outcome is how the most recent analysis ended
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeRejected Outcome = "rejected"
	OutcomeSuccess  Outcome = "success"
	OutcomeFailure  Outcome = "failure"
)

const (
	msgInProgress = "an analysis is already in progress"
	msgAborted    = "analysis cancelled"
)

// Service validates and submits turn analyses
type Service interface {
	// Editor is the battle conditions editor whose committed value is submitted
	Editor() *Editor

	// Validate runs the pre-analysis checks without submitting
	Validate(input *AnalyzeInput) error

	// Analyze validates input and submits it. Only one analysis runs at a time.
	Analyze(ctx context.Context, input *AnalyzeInput) (*vgcapi.AnalyzeResult, error)

	// Abort cancels the running analysis. While validating it stops the
	// submission from starting; it is a no-op when idle.
	Abort()

	// Share posts the last successful analysis to Discord
	Share(ctx context.Context) error

	Status() Status
	LastOutcome() Outcome
	LastResult() *vgcapi.AnalyzeResult
	LastError() error
}

// AnalyzeInput is the form state. Nil Conditions means the editor's committed value.
type AnalyzeInput struct {
	Selection    pokemon.Selection
	YourTeam     pokemon.Team
	OpponentTeam pokemon.Team
	Conditions   *battle.Conditions
}

type service struct {
	client   vgcapi.Client
	notifier discord.Notifier
	editor   *Editor

	mu          sync.Mutex
	status      Status
	cancel      context.CancelFunc
	aborted     bool
	lastOutcome Outcome
	lastResult  *vgcapi.AnalyzeResult
	lastError   error
	lastShare   *discord.AnalysisShare
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client   vgcapi.Client
	Notifier discord.Notifier // Optional: sharing is a no-op without it
	Editor   *Editor          // Optional: a fresh editor is created
}

// NewService creates a new turn assistant service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("vgcapi client is required")
	}

	svc := &service{
		client:   cfg.Client,
		notifier: cfg.Notifier,
		editor:   cfg.Editor,
		status:   StatusIdle,
	}
	if svc.notifier == nil {
		svc.notifier = discord.Nop{}
	}
	if svc.editor == nil {
		svc.editor = NewEditor()
	}

	return svc
}

func (s *service) Editor() *Editor {
	return s.editor
}

func (s *service) Validate(input *AnalyzeInput) error {
	if input == nil {
		return vgcerr.Validation(msgIncompleteSelection)
	}
	return Validate(&input.Selection, input.YourTeam, input.OpponentTeam)
}

func (s *service) Analyze(ctx context.Context, input *AnalyzeInput) (*vgcapi.AnalyzeResult, error) {
	log := logger.ForRequest(ctx)

	s.mu.Lock()
	if current := s.status; current != StatusIdle {
		s.mu.Unlock()
		return nil, vgcerr.New(vgcerr.CodeUnavailable, msgInProgress).
			WithMeta("status", string(current))
	}
	s.status = StatusValidating
	s.aborted = false
	s.mu.Unlock()

	if err := s.Validate(input); err != nil {
		log.Debug().Str("reason", err.Error()).Msg("Analysis rejected")
		s.finish(OutcomeRejected, nil, err, nil)
		return nil, err
	}

	// copies so later caller edits cannot change the request or the share
	selection := input.Selection.Clone()
	conditions := s.editor.Committed()
	if input.Conditions != nil {
		conditions = input.Conditions.Clone()
	}

	req := &vgcapi.AnalyzeRequest{
		PokemonData:      selection,
		BattleConditions: conditions,
		YourTeam:         teamOrEmpty(input.YourTeam),
		OpponentTeam:     teamOrEmpty(input.OpponentTeam),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.beginSubmit(cancel); err != nil {
		log.Debug().Msg("Analysis aborted before submitting")
		s.finish(OutcomeFailure, nil, err, nil)
		return nil, err
	}

	log.Debug().
		Str("topLeft", selection.TopLeft.Name).
		Str("topRight", selection.TopRight.Name).
		Str("bottomLeft", selection.BottomLeft.Name).
		Str("bottomRight", selection.BottomRight.Name).
		Msg("Submitting analysis")

	result, err := s.client.Analyze(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("Analysis failed")
		s.finish(OutcomeFailure, nil, err, nil)
		return nil, err
	}

	log.Info().
		Int("matchingScenarios", result.MatchingScenarios).
		Float64("winRate", result.Data.WinRate).
		Msg("Analysis complete")

	s.finish(OutcomeSuccess, result, nil, &discord.AnalysisShare{
		Selection:  selection,
		Conditions: conditions,
		Result:     result,
	})
	return result, nil
}

// beginSubmit moves validating to submitting unless Abort was called meanwhile
func (s *service) beginSubmit(cancel context.CancelFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aborted {
		return vgcerr.New(vgcerr.CodeUnavailable, msgAborted)
	}
	s.status = StatusSubmitting
	s.cancel = cancel
	return nil
}

func (s *service) finish(outcome Outcome, result *vgcapi.AnalyzeResult, err error, share *discord.AnalysisShare) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusIdle
	s.cancel = nil
	s.aborted = false
	s.lastOutcome = outcome
	s.lastResult = result
	s.lastError = err
	if share != nil {
		s.lastShare = share
	}
}

func (s *service) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.cancel != nil:
		s.cancel()
	case s.status == StatusValidating:
		s.aborted = true
	}
}

func (s *service) Share(ctx context.Context) error {
	s.mu.Lock()
	share := s.lastShare
	s.mu.Unlock()

	if share == nil {
		return vgcerr.InvalidArgument("there is no analysis to share yet")
	}
	return s.notifier.ShareAnalysis(ctx, share)
}

func (s *service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *service) LastOutcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutcome
}

func (s *service) LastResult() *vgcapi.AnalyzeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

func (s *service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func teamOrEmpty(t pokemon.Team) pokemon.Team {
	if t == nil {
		return pokemon.Team{}
	}
	return t
}
