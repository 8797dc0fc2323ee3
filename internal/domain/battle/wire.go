package battle

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the nested JSON shape the analysis endpoint expects
type Snapshot struct {
	Weather         string `json:"weather"`
	WeatherDuration int    `json:"weatherDuration"`
	Field           string `json:"field"`
	FieldDuration   int    `json:"fieldDuration"`
	Room            string `json:"room"`
	RoomDuration    int    `json:"roomDuration"`

	SideEffects         map[Side]map[SideEffect]TriState `json:"sideEffects"`
	SideEffectsDuration map[Side]map[SideEffect]int      `json:"sideEffectsDuration"`

	EntryHazards         map[Side]map[Hazard]TriState `json:"entryHazards"`
	EntryHazardsLevel    map[Side]map[Hazard]int      `json:"entryHazardsLevel"`
	EntryHazardsDuration map[Side]map[Hazard]int      `json:"entryHazardsDuration"`
}

// Snapshot expands the normalized state into the nested wire shape
func (c *Conditions) Snapshot() *Snapshot {
	s := &Snapshot{
		SideEffects:          make(map[Side]map[SideEffect]TriState, len(Sides)),
		SideEffectsDuration:  make(map[Side]map[SideEffect]int, len(Sides)),
		EntryHazards:         make(map[Side]map[Hazard]TriState, len(Sides)),
		EntryHazardsLevel:    make(map[Side]map[Hazard]int, len(Sides)),
		EntryHazardsDuration: make(map[Side]map[Hazard]int, len(Sides)),
	}
	s.Weather, s.WeatherDuration = c.Condition(KindWeather)
	s.Field, s.FieldDuration = c.Condition(KindField)
	s.Room, s.RoomDuration = c.Condition(KindRoom)

	for _, side := range Sides {
		s.SideEffects[side] = make(map[SideEffect]TriState, len(SideEffects))
		s.SideEffectsDuration[side] = make(map[SideEffect]int, len(SideEffects))
		for _, e := range SideEffects {
			s.SideEffects[side][e], s.SideEffectsDuration[side][e] = c.SideEffect(side, e)
		}

		s.EntryHazards[side] = make(map[Hazard]TriState, len(Hazards))
		s.EntryHazardsLevel[side] = make(map[Hazard]int)
		s.EntryHazardsDuration[side] = make(map[Hazard]int)
		for _, h := range Hazards {
			state, level, duration := c.Hazard(side, h)
			s.EntryHazards[side][h] = state
			if h.Stackable() {
				s.EntryHazardsLevel[side][h] = level
			} else {
				s.EntryHazardsDuration[side][h] = duration
			}
		}
	}
	return s
}

// FromSnapshot rebuilds normalized state. Unknown names are rejected.
// Explicit numbers are clamped and only survive for a concrete selection or
// an On side effect or hazard; everything else loads as 0.
func FromSnapshot(s *Snapshot) (*Conditions, error) {
	c := New()
	if s == nil {
		return c, nil
	}

	selects := []struct {
		kind     Kind
		value    string
		duration int
	}{
		{KindWeather, s.Weather, s.WeatherDuration},
		{KindField, s.Field, s.FieldDuration},
		{KindRoom, s.Room, s.RoomDuration},
	}
	for _, sel := range selects {
		opt, err := ParseOption(sel.kind, sel.value)
		if err != nil {
			return nil, err
		}
		c.selected[sel.kind] = opt
		c.durations[sel.kind] = clamp(sel.duration, 0, MaxDuration)
	}

	for side, effects := range s.SideEffects {
		for effect, state := range effects {
			key, err := sideEffectKey(side, effect)
			if err != nil {
				return nil, err
			}
			c.sideEffects[key] = state
		}
	}
	for side, durations := range s.SideEffectsDuration {
		for effect, n := range durations {
			key, err := sideEffectKey(side, effect)
			if err != nil {
				return nil, err
			}
			c.sideEffectDurations[key] = clamp(n, 0, maxSideEffectDuration(effect))
		}
	}

	for side, hazards := range s.EntryHazards {
		for hazard, state := range hazards {
			key, err := hazardKey(side, hazard)
			if err != nil {
				return nil, err
			}
			c.hazards[key] = state
		}
	}
	for side, levels := range s.EntryHazardsLevel {
		for hazard, n := range levels {
			key, err := hazardKey(side, hazard)
			if err != nil {
				return nil, err
			}
			if !hazard.Stackable() {
				return nil, fmt.Errorf("%s does not stack", hazard)
			}
			c.hazardLevels[key] = clamp(n, 0, hazard.MaxLevel())
		}
	}
	for side, durations := range s.EntryHazardsDuration {
		for hazard, n := range durations {
			key, err := hazardKey(side, hazard)
			if err != nil {
				return nil, err
			}
			if hazard.Stackable() {
				return nil, fmt.Errorf("%s tracks layers, not turns", hazard)
			}
			c.hazardDurations[key] = clamp(n, 0, MaxDuration)
		}
	}

	c.zeroInactive()
	return c, nil
}

// zeroInactive resets numbers whose selection or state is not active
func (c *Conditions) zeroInactive() {
	for _, kind := range Kinds {
		if !c.Active(kind) {
			c.durations[kind] = 0
		}
	}
	for key := range c.sideEffectDurations {
		if c.sideEffects[key] != On {
			c.sideEffectDurations[key] = 0
		}
	}
	for key := range c.hazardLevels {
		if c.hazards[key] != On {
			c.hazardLevels[key] = 0
		}
	}
	for key := range c.hazardDurations {
		if c.hazards[key] != On {
			c.hazardDurations[key] = 0
		}
	}
}

func (c *Conditions) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

func (c *Conditions) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromSnapshot(&s)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
