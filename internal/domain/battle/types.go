package battle

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// TriState is a checkbox that can also be left untouched.
// The zero value is Unset.
type TriState int

const (
	Unset TriState = iota
	On
	Off
)

// Next cycles Unset -> On -> Off -> Unset
func (t TriState) Next() TriState {
	switch t {
	case Unset:
		return On
	case On:
		return Off
	default:
		return Unset
	}
}

func (t TriState) String() string {
	switch t {
	case On:
		return "true"
	case Off:
		return "false"
	default:
		return "unset"
	}
}

// MarshalJSON encodes as true, false or null
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case On:
		return []byte("true"), nil
	case Off:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("tri-state must be true, false or null: %w", err)
	}
	switch {
	case v == nil:
		*t = Unset
	case *v:
		*t = On
	default:
		*t = Off
	}
	return nil
}

// ParseTriState accepts true/false/on/off/yes/no and unset/null/empty
func ParseTriState(s string) (TriState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "1":
		return On, nil
	case "false", "off", "no", "0":
		return Off, nil
	case "", "null", "unset", "none":
		return Unset, nil
	}
	return Unset, fmt.Errorf("invalid tri-state value %q", s)
}

// Kind is one of the select-type battle-wide conditions
type Kind string

const (
	KindWeather Kind = "weather"
	KindField   Kind = "field"
	KindRoom    Kind = "room"
)

// Kinds lists select-type conditions in display order
var Kinds = []Kind{KindWeather, KindField, KindRoom}

// None is the explicit "no condition" option shared by every Kind
const None = "none"

const (
	RainDance = "RainDance"
	SunnyDay  = "SunnyDay"
	Sandstorm = "Sandstorm"
	Hail      = "Hail"

	ElectricTerrain = "ElectricTerrain"
	GrassyTerrain   = "GrassyTerrain"
	MistyTerrain    = "MistyTerrain"
	PsychicTerrain  = "PsychicTerrain"

	TrickRoom  = "TrickRoom"
	Gravity    = "Gravity"
	MagicRoom  = "MagicRoom"
	WonderRoom = "WonderRoom"
)

var kindOptions = map[Kind][]string{
	KindWeather: {None, RainDance, SunnyDay, Sandstorm, Hail},
	KindField:   {None, ElectricTerrain, GrassyTerrain, MistyTerrain, PsychicTerrain},
	KindRoom:    {None, TrickRoom, Gravity, MagicRoom, WonderRoom},
}

// Options returns the selectable values for a kind, "none" first
func Options(kind Kind) []string {
	opts := kindOptions[kind]
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// Side is one half of the field
type Side string

const (
	YourSide     Side = "yourSide"
	OpponentSide Side = "opponentSide"
)

var Sides = []Side{YourSide, OpponentSide}

// SideEffect is a screen or speed modifier scoped to one side
type SideEffect string

const (
	Tailwind    SideEffect = "tailwind"
	Reflect     SideEffect = "reflect"
	LightScreen SideEffect = "lightscreen"
	AuroraVeil  SideEffect = "auroraveil"
)

var SideEffects = []SideEffect{Tailwind, Reflect, LightScreen, AuroraVeil}

// Hazard is an entry hazard laid on one side
type Hazard string

const (
	Spikes      Hazard = "Spikes"
	ToxicSpikes Hazard = "Toxic Spikes"
	StealthRock Hazard = "Stealth Rock"
	StickyWeb   Hazard = "Sticky Web"
)

var Hazards = []Hazard{Spikes, ToxicSpikes, StealthRock, StickyWeb}

// Stackable hazards track a layer count instead of a duration
func (h Hazard) Stackable() bool {
	return h.MaxLevel() > 0
}

// MaxLevel is the layer cap for stackable hazards, 0 otherwise
func (h Hazard) MaxLevel() int {
	switch h {
	case Spikes:
		return 3
	case ToxicSpikes:
		return 2
	default:
		return 0
	}
}

// normalize folds case and drops separators so "stealth-rock",
// "Stealth Rock" and "stealthrock" compare equal
func normalize(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if normalize(string(k)) == normalize(s) {
			return k, nil
		}
	}
	if n := normalize(s); n == "terrain" {
		return KindField, nil
	}
	return "", fmt.Errorf("unknown condition kind %q", s)
}

func ParseSide(s string) (Side, error) {
	switch normalize(s) {
	case "yourside", "your", "you", "ally":
		return YourSide, nil
	case "opponentside", "opponent", "opp", "foe":
		return OpponentSide, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

func ParseSideEffect(s string) (SideEffect, error) {
	for _, e := range SideEffects {
		if normalize(string(e)) == normalize(s) {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown side effect %q", s)
}

func ParseHazard(s string) (Hazard, error) {
	for _, h := range Hazards {
		if normalize(string(h)) == normalize(s) {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown entry hazard %q", s)
}

// ParseOption resolves a user-typed option for kind to its canonical spelling
func ParseOption(kind Kind, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	for _, opt := range kindOptions[kind] {
		if normalize(opt) == normalize(s) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q", kind, s)
}
