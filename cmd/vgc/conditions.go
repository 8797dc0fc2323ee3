package main

import (
	"context"
	"flag"
	"strings"

	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/services/turnassistant"
)

// edit is one parsed conditions operation
type edit func(e *turnassistant.Editor) error

// parseEdit reads one operation:
//
//	clear
//	weather=Rain           kind=value; "none" or empty clears it
//	weather.turns=3
//	your.tailwind          toggle a side effect or hazard
//	opp.reflect=on         set a tri-state (on, off, unset)
//	your.tailwind.turns=4
//	opp.spikes.layers=2
//	opp.stealthrock.turns=3
func parseEdit(raw string) (edit, error) {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "clear") {
		return func(e *turnassistant.Editor) error { return e.ClearAll() }, nil
	}

	lhs, value, hasValue := strings.Cut(s, "=")
	parts := strings.Split(lhs, ".")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if kind, err := battle.ParseKind(parts[0]); err == nil {
		return parseKindEdit(raw, kind, parts[1:], value, hasValue)
	}

	side, err := battle.ParseSide(parts[0])
	if err != nil {
		return nil, badEdit(raw, "must start with a condition kind or a side")
	}
	if len(parts) < 2 || parts[1] == "" {
		return nil, badEdit(raw, "missing side effect or hazard name")
	}

	if effect, err := battle.ParseSideEffect(parts[1]); err == nil {
		return parseSideEffectEdit(raw, side, effect, parts[2:], value, hasValue)
	}
	if hazard, err := battle.ParseHazard(parts[1]); err == nil {
		return parseHazardEdit(raw, side, hazard, parts[2:], value, hasValue)
	}
	return nil, badEdit(raw, "unknown side effect or hazard "+parts[1])
}

func parseKindEdit(raw string, kind battle.Kind, rest []string, value string, hasValue bool) (edit, error) {
	if !hasValue {
		return nil, badEdit(raw, "expected "+string(kind)+"=<value>")
	}
	switch {
	case len(rest) == 0:
		if _, err := battle.ParseOption(kind, value); err != nil {
			return nil, badEdit(raw, err.Error())
		}
		return func(e *turnassistant.Editor) error { return e.SetCondition(kind, value) }, nil
	case len(rest) == 1 && rest[0] == "turns":
		return func(e *turnassistant.Editor) error {
			_, err := e.SetDuration(battle.DurationKind(kind), "", value)
			return err
		}, nil
	}
	return nil, badEdit(raw, "unknown field "+strings.Join(rest, "."))
}

func parseSideEffectEdit(raw string, side battle.Side, effect battle.SideEffect, rest []string, value string, hasValue bool) (edit, error) {
	key := battle.Key{Side: side, Name: string(effect)}.String()

	switch {
	case len(rest) == 0 && !hasValue:
		return func(e *turnassistant.Editor) error {
			_, err := e.ToggleSideEffect(side, effect)
			return err
		}, nil
	case len(rest) == 0:
		state, err := battle.ParseTriState(value)
		if err != nil {
			return nil, badEdit(raw, err.Error())
		}
		return func(e *turnassistant.Editor) error { return e.SetSideEffect(side, effect, state) }, nil
	case len(rest) == 1 && rest[0] == "turns" && hasValue:
		return func(e *turnassistant.Editor) error {
			_, err := e.SetDuration(battle.DurationSideEffect, key, value)
			return err
		}, nil
	}
	return nil, badEdit(raw, "expected "+key+"[=state] or "+key+".turns=<n>")
}

func parseHazardEdit(raw string, side battle.Side, hazard battle.Hazard, rest []string, value string, hasValue bool) (edit, error) {
	key := battle.Key{Side: side, Name: string(hazard)}.String()

	switch {
	case len(rest) == 0 && !hasValue:
		return func(e *turnassistant.Editor) error {
			_, err := e.ToggleHazard(side, hazard)
			return err
		}, nil
	case len(rest) == 0:
		state, err := battle.ParseTriState(value)
		if err != nil {
			return nil, badEdit(raw, err.Error())
		}
		return func(e *turnassistant.Editor) error { return e.SetHazard(side, hazard, state) }, nil
	case len(rest) == 1 && rest[0] == "layers" && hasValue:
		return func(e *turnassistant.Editor) error {
			_, err := e.SetDuration(battle.LevelHazard, key, value)
			return err
		}, nil
	case len(rest) == 1 && rest[0] == "turns" && hasValue:
		return func(e *turnassistant.Editor) error {
			_, err := e.SetDuration(battle.DurationHazard, key, value)
			return err
		}, nil
	}
	return nil, badEdit(raw, "expected "+key+"[=state], .layers=<n> or .turns=<n>")
}

func badEdit(raw, reason string) error {
	return vgcerr.Validationf("Invalid condition %q: %s.", raw, reason).WithMeta("edit", raw)
}

func parseEdits(args []string) ([]edit, error) {
	edits := make([]edit, 0, len(args))
	for _, arg := range args {
		e, err := parseEdit(arg)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	return edits, nil
}

// applyEdits runs edits in one editor session; a failing edit cancels the session
func applyEdits(editor *turnassistant.Editor, edits []edit) error {
	editor.Open()
	for _, e := range edits {
		if err := e(editor); err != nil {
			editor.Cancel()
			return err
		}
	}
	return editor.Apply()
}

func runConditions(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("conditions", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "print the draft and discard it")
	if err := fs.Parse(args); err != nil {
		return vgcerr.InvalidArgument(err.Error())
	}

	edits, err := parseEdits(fs.Args())
	if err != nil {
		return err
	}

	editor := a.provider.TurnAssistant.Editor()
	if !*dryRun {
		if err := applyEdits(editor, edits); err != nil {
			return err
		}
		return a.print(editor.Committed())
	}

	editor.Open()
	defer editor.Cancel()
	for _, e := range edits {
		if err := e(editor); err != nil {
			return err
		}
	}
	draft, err := editor.Draft()
	if err != nil {
		return err
	}
	return a.print(draft)
}
