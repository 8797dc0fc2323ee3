package battle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultDuration         = 5
	MaxDuration             = 8
	DefaultTailwindDuration = 4
	MaxTailwindDuration     = 5
	DefaultHazardLevel      = 1
)

// Key addresses one per-side entry in the normalized state
type Key struct {
	Side Side
	Name string
}

func (k Key) String() string {
	return string(k.Side) + "." + k.Name
}

// ParseKey reads "side.name", e.g. "yourSide.tailwind" or "opponent.Stealth Rock"
func ParseKey(s string) (Key, error) {
	side, name, ok := strings.Cut(s, ".")
	if !ok {
		return Key{}, fmt.Errorf("key %q must look like side.name", s)
	}
	parsedSide, err := ParseSide(side)
	if err != nil {
		return Key{}, err
	}
	return Key{Side: parsedSide, Name: strings.TrimSpace(name)}, nil
}

// Conditions is the battle-wide and per-side state submitted with an analysis.
// Per-side values live in flat maps keyed by Key; the zero value is not usable,
// construct with New.
type Conditions struct {
	selected  map[Kind]string
	durations map[Kind]int

	sideEffects         map[Key]TriState
	sideEffectDurations map[Key]int

	hazards         map[Key]TriState
	hazardLevels    map[Key]int
	hazardDurations map[Key]int
}

// New returns conditions with every enum unset, every number 0 and every
// tri-state Unset
func New() *Conditions {
	c := &Conditions{}
	c.ClearAll()
	return c
}

// ClearAll resets everything to defaults in one operation
func (c *Conditions) ClearAll() {
	c.selected = make(map[Kind]string, len(Kinds))
	c.durations = make(map[Kind]int, len(Kinds))
	c.sideEffects = make(map[Key]TriState)
	c.sideEffectDurations = make(map[Key]int)
	c.hazards = make(map[Key]TriState)
	c.hazardLevels = make(map[Key]int)
	c.hazardDurations = make(map[Key]int)

	for _, k := range Kinds {
		c.selected[k] = ""
		c.durations[k] = 0
	}
	for _, side := range Sides {
		for _, e := range SideEffects {
			key := Key{Side: side, Name: string(e)}
			c.sideEffects[key] = Unset
			c.sideEffectDurations[key] = 0
		}
		for _, h := range Hazards {
			key := Key{Side: side, Name: string(h)}
			c.hazards[key] = Unset
			if h.Stackable() {
				c.hazardLevels[key] = 0
			} else {
				c.hazardDurations[key] = 0
			}
		}
	}
}

// Clone returns a deep copy
func (c *Conditions) Clone() *Conditions {
	out := &Conditions{
		selected:            make(map[Kind]string, len(c.selected)),
		durations:           make(map[Kind]int, len(c.durations)),
		sideEffects:         make(map[Key]TriState, len(c.sideEffects)),
		sideEffectDurations: make(map[Key]int, len(c.sideEffectDurations)),
		hazards:             make(map[Key]TriState, len(c.hazards)),
		hazardLevels:        make(map[Key]int, len(c.hazardLevels)),
		hazardDurations:     make(map[Key]int, len(c.hazardDurations)),
	}
	for k, v := range c.selected {
		out.selected[k] = v
	}
	for k, v := range c.durations {
		out.durations[k] = v
	}
	for k, v := range c.sideEffects {
		out.sideEffects[k] = v
	}
	for k, v := range c.sideEffectDurations {
		out.sideEffectDurations[k] = v
	}
	for k, v := range c.hazards {
		out.hazards[k] = v
	}
	for k, v := range c.hazardLevels {
		out.hazardLevels[k] = v
	}
	for k, v := range c.hazardDurations {
		out.hazardDurations[k] = v
	}
	return out
}

// SetCondition selects a weather, terrain or room.
// A concrete value starts its duration at DefaultDuration; "" or "none" zero it.
func (c *Conditions) SetCondition(kind Kind, value string) error {
	opt, err := ParseOption(kind, value)
	if err != nil {
		return err
	}

	c.selected[kind] = opt
	if opt == "" || opt == None {
		c.durations[kind] = 0
	} else {
		c.durations[kind] = DefaultDuration
	}
	return nil
}

// Condition returns the selected value and remaining turns for kind
func (c *Conditions) Condition(kind Kind) (string, int) {
	return c.selected[kind], c.durations[kind]
}

// Active reports whether kind holds a concrete, non-"none" value
func (c *Conditions) Active(kind Kind) bool {
	v := c.selected[kind]
	return v != "" && v != None
}

// SetSideEffect sets a tri-state side effect. On assigns the default duration,
// Off and Unset reset it to 0.
func (c *Conditions) SetSideEffect(side Side, effect SideEffect, value TriState) error {
	key, err := sideEffectKey(side, effect)
	if err != nil {
		return err
	}

	c.sideEffects[key] = value
	if value == On {
		c.sideEffectDurations[key] = defaultSideEffectDuration(effect)
	} else {
		c.sideEffectDurations[key] = 0
	}
	return nil
}

// ToggleSideEffect advances the effect one step through its cycle
func (c *Conditions) ToggleSideEffect(side Side, effect SideEffect) (TriState, error) {
	key, err := sideEffectKey(side, effect)
	if err != nil {
		return Unset, err
	}
	next := c.sideEffects[key].Next()
	return next, c.SetSideEffect(side, effect, next)
}

// SideEffect returns the tri-state and remaining turns
func (c *Conditions) SideEffect(side Side, effect SideEffect) (TriState, int) {
	key := Key{Side: side, Name: string(effect)}
	return c.sideEffects[key], c.sideEffectDurations[key]
}

// SetHazard sets a tri-state hazard. On assigns the default level for
// stackable hazards or the default duration otherwise; Off and Unset zero it.
func (c *Conditions) SetHazard(side Side, hazard Hazard, value TriState) error {
	key, err := hazardKey(side, hazard)
	if err != nil {
		return err
	}

	c.hazards[key] = value
	n := 0
	if value == On {
		n = DefaultDuration
		if hazard.Stackable() {
			n = DefaultHazardLevel
		}
	}
	if hazard.Stackable() {
		c.hazardLevels[key] = n
	} else {
		c.hazardDurations[key] = n
	}
	return nil
}

// ToggleHazard advances the hazard one step through its cycle
func (c *Conditions) ToggleHazard(side Side, hazard Hazard) (TriState, error) {
	key, err := hazardKey(side, hazard)
	if err != nil {
		return Unset, err
	}
	next := c.hazards[key].Next()
	return next, c.SetHazard(side, hazard, next)
}

// Hazard returns the tri-state plus layer count (stackable) or remaining
// turns (non-stacking); the other number is always 0
func (c *Conditions) Hazard(side Side, hazard Hazard) (state TriState, level int, duration int) {
	key := Key{Side: side, Name: string(hazard)}
	return c.hazards[key], c.hazardLevels[key], c.hazardDurations[key]
}

// DurationKind selects which number SetDuration writes
type DurationKind string

const (
	DurationWeather    DurationKind = "weather"
	DurationField      DurationKind = "field"
	DurationRoom       DurationKind = "room"
	DurationSideEffect DurationKind = "sideEffect"
	DurationHazard     DurationKind = "hazardDuration"
	LevelHazard        DurationKind = "hazardLevel"
)

// SetDuration parses raw as an integer (non-numeric is 0), clamps it to the
// range for kind and key, writes it and returns the stored value.
// key is ignored for weather, field and room; otherwise it is "side.name".
func (c *Conditions) SetDuration(kind DurationKind, key string, raw string) (int, error) {
	n := parseInt(raw)

	switch kind {
	case DurationWeather, DurationField, DurationRoom:
		k := Kind(kind)
		c.durations[k] = clamp(n, 0, MaxDuration)
		return c.durations[k], nil
	}

	parsed, err := ParseKey(key)
	if err != nil {
		return 0, err
	}

	switch kind {
	case DurationSideEffect:
		effect, err := ParseSideEffect(parsed.Name)
		if err != nil {
			return 0, err
		}
		k := Key{Side: parsed.Side, Name: string(effect)}
		c.sideEffectDurations[k] = clamp(n, 0, maxSideEffectDuration(effect))
		return c.sideEffectDurations[k], nil

	case LevelHazard:
		hazard, err := ParseHazard(parsed.Name)
		if err != nil {
			return 0, err
		}
		if !hazard.Stackable() {
			return 0, fmt.Errorf("%s does not stack", hazard)
		}
		k := Key{Side: parsed.Side, Name: string(hazard)}
		c.hazardLevels[k] = clamp(n, 0, hazard.MaxLevel())
		return c.hazardLevels[k], nil

	case DurationHazard:
		hazard, err := ParseHazard(parsed.Name)
		if err != nil {
			return 0, err
		}
		if hazard.Stackable() {
			return 0, fmt.Errorf("%s tracks layers, not turns", hazard)
		}
		k := Key{Side: parsed.Side, Name: string(hazard)}
		c.hazardDurations[k] = clamp(n, 0, MaxDuration)
		return c.hazardDurations[k], nil
	}

	return 0, fmt.Errorf("unknown duration kind %q", kind)
}

func sideEffectKey(side Side, effect SideEffect) (Key, error) {
	key := Key{Side: side, Name: string(effect)}
	if _, ok := defaultSideEffects()[key]; !ok {
		return Key{}, fmt.Errorf("unknown side effect %s", key)
	}
	return key, nil
}

func hazardKey(side Side, hazard Hazard) (Key, error) {
	key := Key{Side: side, Name: string(hazard)}
	if _, ok := defaultHazards()[key]; !ok {
		return Key{}, fmt.Errorf("unknown entry hazard %s", key)
	}
	return key, nil
}

func defaultSideEffects() map[Key]struct{} {
	out := make(map[Key]struct{}, len(Sides)*len(SideEffects))
	for _, side := range Sides {
		for _, e := range SideEffects {
			out[Key{Side: side, Name: string(e)}] = struct{}{}
		}
	}
	return out
}

func defaultHazards() map[Key]struct{} {
	out := make(map[Key]struct{}, len(Sides)*len(Hazards))
	for _, side := range Sides {
		for _, h := range Hazards {
			out[Key{Side: side, Name: string(h)}] = struct{}{}
		}
	}
	return out
}

func defaultSideEffectDuration(effect SideEffect) int {
	if effect == Tailwind {
		return DefaultTailwindDuration
	}
	return DefaultDuration
}

func maxSideEffectDuration(effect SideEffect) int {
	if effect == Tailwind {
		return MaxTailwindDuration
	}
	return MaxDuration
}

// parseInt reads the leading integer of raw ("3.7" and "3 turns" are 3).
// No digits is 0; out-of-range values saturate so clamping still applies.
func parseInt(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if strings.HasPrefix(s, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
