package battle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConditionsTestSuite struct {
	suite.Suite
	conditions *battle.Conditions
}

func (s *ConditionsTestSuite) SetupTest() {
	s.conditions = battle.New()
}

func TestConditionsSuite(t *testing.T) {
	suite.Run(t, new(ConditionsTestSuite))
}

func (s *ConditionsTestSuite) TestSetCondition_ConcreteValueDefaultsDuration() {
	for _, kind := range battle.Kinds {
		for _, opt := range battle.Options(kind)[1:] {
			s.Require().NoError(s.conditions.SetCondition(kind, opt))

			value, duration := s.conditions.Condition(kind)
			s.Equal(opt, value)
			s.Equal(battle.DefaultDuration, duration, "%s=%s", kind, opt)
			s.True(s.conditions.Active(kind))
		}
	}
}

func (s *ConditionsTestSuite) TestSetCondition_ClearingZeroesDuration() {
	for _, kind := range battle.Kinds {
		for _, cleared := range []string{"", battle.None} {
			s.Require().NoError(s.conditions.SetCondition(kind, battle.Options(kind)[1]))
			_, err := s.conditions.SetDuration(battle.DurationKind(kind), "", "7")
			s.Require().NoError(err)

			s.Require().NoError(s.conditions.SetCondition(kind, cleared))

			value, duration := s.conditions.Condition(kind)
			s.Equal(cleared, value)
			s.Zero(duration)
			s.False(s.conditions.Active(kind))
		}
	}
}

func (s *ConditionsTestSuite) TestSetCondition_NormalizesSpelling() {
	s.Require().NoError(s.conditions.SetCondition(battle.KindRoom, "trick room"))

	value, _ := s.conditions.Condition(battle.KindRoom)
	s.Equal(battle.TrickRoom, value)
}

func (s *ConditionsTestSuite) TestSetCondition_UnknownOption() {
	err := s.conditions.SetCondition(battle.KindWeather, "Fog")
	s.Error(err)

	value, duration := s.conditions.Condition(battle.KindWeather)
	s.Empty(value)
	s.Zero(duration)
}

func (s *ConditionsTestSuite) TestToggleSideEffect_CyclesWithoutSkipping() {
	expected := []battle.TriState{battle.On, battle.Off, battle.Unset, battle.On, battle.Off, battle.Unset}

	for i, want := range expected {
		got, err := s.conditions.ToggleSideEffect(battle.YourSide, battle.Reflect)
		s.Require().NoError(err)
		s.Equal(want, got, "toggle %d", i)

		state, duration := s.conditions.SideEffect(battle.YourSide, battle.Reflect)
		s.Equal(want, state)
		if want == battle.On {
			s.Equal(battle.DefaultDuration, duration)
		} else {
			s.Zero(duration)
		}
	}
}

func (s *ConditionsTestSuite) TestSetSideEffect_TailwindDefaults() {
	s.Require().NoError(s.conditions.SetSideEffect(battle.OpponentSide, battle.Tailwind, battle.On))

	state, duration := s.conditions.SideEffect(battle.OpponentSide, battle.Tailwind)
	s.Equal(battle.On, state)
	s.Equal(battle.DefaultTailwindDuration, duration)

	// the other side is untouched
	state, duration = s.conditions.SideEffect(battle.YourSide, battle.Tailwind)
	s.Equal(battle.Unset, state)
	s.Zero(duration)
}

func (s *ConditionsTestSuite) TestSetHazard_StackableGetsLevel() {
	s.Require().NoError(s.conditions.SetHazard(battle.YourSide, battle.Spikes, battle.On))

	state, level, duration := s.conditions.Hazard(battle.YourSide, battle.Spikes)
	s.Equal(battle.On, state)
	s.Equal(battle.DefaultHazardLevel, level)
	s.Zero(duration)

	s.Require().NoError(s.conditions.SetHazard(battle.YourSide, battle.Spikes, battle.Off))
	_, level, _ = s.conditions.Hazard(battle.YourSide, battle.Spikes)
	s.Zero(level)
}

func (s *ConditionsTestSuite) TestSetHazard_NonStackingGetsDuration() {
	s.Require().NoError(s.conditions.SetHazard(battle.OpponentSide, battle.StealthRock, battle.On))

	state, level, duration := s.conditions.Hazard(battle.OpponentSide, battle.StealthRock)
	s.Equal(battle.On, state)
	s.Zero(level)
	s.Equal(battle.DefaultDuration, duration)
}

func (s *ConditionsTestSuite) TestToggleHazard_Cycle() {
	states := []battle.TriState{}
	for i := 0; i < 4; i++ {
		got, err := s.conditions.ToggleHazard(battle.YourSide, battle.StickyWeb)
		s.Require().NoError(err)
		states = append(states, got)
	}
	s.Equal([]battle.TriState{battle.On, battle.Off, battle.Unset, battle.On}, states)
}

func (s *ConditionsTestSuite) TestSetDuration_Clamps() {
	tests := []struct {
		kind battle.DurationKind
		key  string
		raw  string
		want int
	}{
		{battle.DurationWeather, "", "-5", 0},
		{battle.DurationWeather, "", "99", 8},
		{battle.DurationWeather, "", "3", 3},
		{battle.DurationWeather, "", "abc", 0},
		{battle.DurationWeather, "", "6 turns", 6},
		{battle.DurationWeather, "", "99999999999999999999999", 8},
		{battle.DurationWeather, "", "-99999999999999999999999", 0},
		{battle.DurationField, "", "2.9", 2},
		{battle.DurationRoom, "", "", 0},
		{battle.DurationSideEffect, "yourSide.tailwind", "9", 5},
		{battle.DurationSideEffect, "opponentSide.reflect", "9", 8},
		{battle.DurationSideEffect, "opponent.auroraveil", "-1", 0},
		{battle.LevelHazard, "yourSide.Spikes", "7", 3},
		{battle.LevelHazard, "yourSide.toxic-spikes", "7", 2},
		{battle.LevelHazard, "opponentSide.Spikes", "-2", 0},
		{battle.DurationHazard, "opponentSide.Stealth Rock", "12", 8},
		{battle.DurationHazard, "yourSide.stickyweb", "4", 4},
	}

	for _, tt := range tests {
		s.Run(fmt.Sprintf("%s/%s/%s", tt.kind, tt.key, tt.raw), func() {
			got, err := s.conditions.SetDuration(tt.kind, tt.key, tt.raw)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *ConditionsTestSuite) TestSetDuration_WritesBack() {
	_, err := s.conditions.SetDuration(battle.DurationSideEffect, "yourSide.lightscreen", "3")
	s.Require().NoError(err)

	_, duration := s.conditions.SideEffect(battle.YourSide, battle.LightScreen)
	s.Equal(3, duration)
}

func (s *ConditionsTestSuite) TestSetDuration_WrongHazardKind() {
	_, err := s.conditions.SetDuration(battle.LevelHazard, "yourSide.Stealth Rock", "2")
	s.Error(err)

	_, err = s.conditions.SetDuration(battle.DurationHazard, "yourSide.Spikes", "2")
	s.Error(err)

	_, err = s.conditions.SetDuration(battle.DurationSideEffect, "tailwind", "2")
	s.Error(err)
}

func (s *ConditionsTestSuite) TestClearAll_RestoresDefaults() {
	s.Require().NoError(s.conditions.SetCondition(battle.KindWeather, battle.SunnyDay))
	s.Require().NoError(s.conditions.SetCondition(battle.KindField, battle.PsychicTerrain))
	s.Require().NoError(s.conditions.SetSideEffect(battle.YourSide, battle.Tailwind, battle.On))
	s.Require().NoError(s.conditions.SetHazard(battle.OpponentSide, battle.ToxicSpikes, battle.On))
	_, err := s.conditions.SetDuration(battle.LevelHazard, "opponentSide.Toxic Spikes", "2")
	s.Require().NoError(err)

	s.conditions.ClearAll()

	s.Equal(battle.New(), s.conditions)

	snap := s.conditions.Snapshot()
	for _, kind := range battle.Kinds {
		value, duration := s.conditions.Condition(kind)
		s.Empty(value)
		s.Zero(duration)
	}
	for _, side := range battle.Sides {
		for _, e := range battle.SideEffects {
			s.Equal(battle.Unset, snap.SideEffects[side][e])
			s.Zero(snap.SideEffectsDuration[side][e])
		}
		for _, h := range battle.Hazards {
			s.Equal(battle.Unset, snap.EntryHazards[side][h])
		}
		s.Zero(snap.EntryHazardsLevel[side][battle.Spikes])
		s.Zero(snap.EntryHazardsLevel[side][battle.ToxicSpikes])
		s.Zero(snap.EntryHazardsDuration[side][battle.StealthRock])
		s.Zero(snap.EntryHazardsDuration[side][battle.StickyWeb])
	}
}

func (s *ConditionsTestSuite) TestClone_IsIndependent() {
	s.Require().NoError(s.conditions.SetCondition(battle.KindWeather, battle.RainDance))
	clone := s.conditions.Clone()

	s.Require().NoError(clone.SetCondition(battle.KindWeather, battle.Hail))

	value, _ := s.conditions.Condition(battle.KindWeather)
	s.Equal(battle.RainDance, value)
}

func TestTriState_JSON(t *testing.T) {
	data, err := json.Marshal([]battle.TriState{battle.Unset, battle.On, battle.Off})
	require.NoError(t, err)
	assert.JSONEq(t, `[null, true, false]`, string(data))

	var back []battle.TriState
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []battle.TriState{battle.Unset, battle.On, battle.Off}, back)
}

func TestConditions_JSONShape(t *testing.T) {
	c := battle.New()
	require.NoError(t, c.SetCondition(battle.KindWeather, battle.RainDance))
	require.NoError(t, c.SetSideEffect(battle.YourSide, battle.Tailwind, battle.On))
	require.NoError(t, c.SetHazard(battle.OpponentSide, battle.Spikes, battle.On))

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "RainDance", raw["weather"])
	assert.EqualValues(t, 5, raw["weatherDuration"])
	assert.Equal(t, "", raw["field"])

	sideEffects := raw["sideEffects"].(map[string]any)
	assert.Equal(t, true, sideEffects["yourSide"].(map[string]any)["tailwind"])
	assert.Nil(t, sideEffects["opponentSide"].(map[string]any)["tailwind"])

	levels := raw["entryHazardsLevel"].(map[string]any)
	assert.EqualValues(t, 1, levels["opponentSide"].(map[string]any)["Spikes"])
	assert.NotContains(t, levels["opponentSide"], "Stealth Rock")

	var back battle.Conditions
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, &back)
}

func TestFromSnapshot_ClampsAndRejects(t *testing.T) {
	c, err := battle.FromSnapshot(&battle.Snapshot{
		Weather:         "sandstorm",
		WeatherDuration: 40,
		SideEffects: map[battle.Side]map[battle.SideEffect]battle.TriState{
			battle.YourSide: {battle.Tailwind: battle.On},
		},
		SideEffectsDuration: map[battle.Side]map[battle.SideEffect]int{
			battle.YourSide: {battle.Tailwind: 9},
		},
	})
	require.NoError(t, err)

	value, duration := c.Condition(battle.KindWeather)
	assert.Equal(t, battle.Sandstorm, value)
	assert.Equal(t, 8, duration)

	_, tailwind := c.SideEffect(battle.YourSide, battle.Tailwind)
	assert.Equal(t, 5, tailwind)

	_, err = battle.FromSnapshot(&battle.Snapshot{
		EntryHazardsLevel: map[battle.Side]map[battle.Hazard]int{
			battle.YourSide: {battle.StealthRock: 1},
		},
	})
	assert.Error(t, err)

	// numbers attached to inactive entries load as 0
	var loaded battle.Conditions
	require.NoError(t, json.Unmarshal([]byte(`{
		"weather": "none", "weatherDuration": 5,
		"room": "", "roomDuration": 3,
		"field": "GrassyTerrain", "fieldDuration": 2,
		"sideEffects": {"yourSide": {"tailwind": false}, "opponentSide": {"reflect": true}},
		"sideEffectsDuration": {"yourSide": {"tailwind": 3}, "opponentSide": {"reflect": 0}},
		"entryHazards": {"yourSide": {"Toxic Spikes": true}},
		"entryHazardsLevel": {"opponentSide": {"Spikes": 2}, "yourSide": {"Toxic Spikes": 2}},
		"entryHazardsDuration": {"opponentSide": {"Stealth Rock": 4}}
	}`), &loaded))

	value, duration = loaded.Condition(battle.KindWeather)
	assert.Equal(t, battle.None, value)
	assert.Equal(t, 0, duration)

	_, duration = loaded.Condition(battle.KindRoom)
	assert.Equal(t, 0, duration)

	_, duration = loaded.Condition(battle.KindField)
	assert.Equal(t, 2, duration)

	state, turns := loaded.SideEffect(battle.YourSide, battle.Tailwind)
	assert.Equal(t, battle.Off, state)
	assert.Equal(t, 0, turns)

	state, turns = loaded.SideEffect(battle.OpponentSide, battle.Reflect)
	assert.Equal(t, battle.On, state)
	assert.Equal(t, 0, turns)

	state, level, _ := loaded.Hazard(battle.OpponentSide, battle.Spikes)
	assert.Equal(t, battle.Unset, state)
	assert.Equal(t, 0, level)

	_, level, _ = loaded.Hazard(battle.YourSide, battle.ToxicSpikes)
	assert.Equal(t, 2, level)

	_, _, turns = loaded.Hazard(battle.OpponentSide, battle.StealthRock)
	assert.Equal(t, 0, turns)
}

func TestParsers(t *testing.T) {
	side, err := battle.ParseSide("Opponent")
	require.NoError(t, err)
	assert.Equal(t, battle.OpponentSide, side)

	hazard, err := battle.ParseHazard("stealth_rock")
	require.NoError(t, err)
	assert.Equal(t, battle.StealthRock, hazard)

	effect, err := battle.ParseSideEffect("Light Screen")
	require.NoError(t, err)
	assert.Equal(t, battle.LightScreen, effect)

	kind, err := battle.ParseKind("terrain")
	require.NoError(t, err)
	assert.Equal(t, battle.KindField, kind)

	state, err := battle.ParseTriState("off")
	require.NoError(t, err)
	assert.Equal(t, battle.Off, state)

	_, err = battle.ParseTriState("maybe")
	assert.Error(t, err)
}
