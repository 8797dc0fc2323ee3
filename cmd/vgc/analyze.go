package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/services/turnassistant"
)

// scenario is the analyze input file. It uses the submission's field names so
// a saved request body can be replayed as is.
type scenario struct {
	PokemonData      pokemon.Selection  `json:"pokemonData"`
	YourTeam         pokemon.Team       `json:"yourTeam"`
	OpponentTeam     pokemon.Team       `json:"opponentTeam"`
	BattleConditions *battle.Conditions `json:"battleConditions"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vgcerr.WrapWithCode(err, vgcerr.CodeInvalidArgument, "Could not read the scenario file.").
			WithMeta("path", path)
	}

	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, vgcerr.WrapWithCode(err, vgcerr.CodeInvalidArgument, "The scenario file is not valid JSON.").
			WithMeta("path", path)
	}
	return &s, nil
}

func runAnalyze(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	path := fs.String("scenario", "", "scenario JSON file (required)")
	share := fs.Bool("share", false, "post the result to Discord")
	validateOnly := fs.Bool("validate", false, "run the pre-analysis checks only")
	if err := fs.Parse(args); err != nil {
		return vgcerr.InvalidArgument(err.Error())
	}
	if *path == "" {
		return vgcerr.InvalidArgument("-scenario is required")
	}

	s, err := loadScenario(*path)
	if err != nil {
		return err
	}

	// Trailing edits are applied on top of the file's conditions
	edits, err := parseEdits(fs.Args())
	if err != nil {
		return err
	}

	assistant := a.provider.TurnAssistant
	input := &turnassistant.AnalyzeInput{
		Selection:    s.PokemonData,
		YourTeam:     s.YourTeam,
		OpponentTeam: s.OpponentTeam,
		Conditions:   s.BattleConditions,
	}
	if len(edits) > 0 {
		if s.BattleConditions != nil {
			assistant.Editor().Load(s.BattleConditions)
		}
		if err := applyEdits(assistant.Editor(), edits); err != nil {
			return err
		}
		input.Conditions = nil
	}

	if *validateOnly {
		if err := assistant.Validate(input); err != nil {
			return err
		}
		return a.print(map[string]bool{"valid": true})
	}

	result, err := assistant.Analyze(ctx, input)
	if err != nil {
		return err
	}

	if *share {
		if err := assistant.Share(ctx); err != nil {
			return err
		}
	}
	return a.print(result)
}
