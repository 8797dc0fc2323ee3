package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	"github.com/bwmarrin/discordgo"
)

const (
	colorAnalysis = 0x3498db
	colorRankings = 0xf1c40f

	maxMoveLines     = 5
	maxRankingLines  = 12
	maxEmbedFieldLen = 1024
)

// BuildAnalysisEmbed summarizes a turn analysis for sharing
func BuildAnalysisEmbed(share *AnalysisShare) *discordgo.MessageEmbed {
	result := share.Result
	embed := &discordgo.MessageEmbed{
		Title:       "🎯 Turn Analysis",
		Description: fmt.Sprintf("**Win rate:** %.1f%% across %d matching scenarios", result.Data.WinRate*100, result.MatchingScenarios),
		Color:       colorAnalysis,
		Fields:      []*discordgo.MessageEmbedField{},
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:   "Your side",
			Value:  slotLine(share.Selection.TopLeft, share.Selection.TopRight),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "Opponent",
			Value:  slotLine(share.Selection.BottomLeft, share.Selection.BottomRight),
			Inline: true,
		},
	)

	if field := conditionsLine(share.Conditions); field != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Conditions",
			Value: field,
		})
	}

	if len(result.Data.TopCombinations) > 0 {
		var b strings.Builder
		for i, combo := range result.Data.TopCombinations {
			if i == maxMoveLines {
				break
			}
			moves := make([]string, 0, len(combo.Moves))
			for _, m := range combo.Moves {
				moves = append(moves, fmt.Sprintf("%s: %s", m.Pokemon, m.Move))
			}
			fmt.Fprintf(&b, "%d. %s (%.1f%%, n=%d)\n", i+1, strings.Join(moves, " + "), combo.WinRate*100, combo.Count)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Top combinations",
			Value: clip(b.String()),
		})
	}

	return embed
}

// BuildRankingsEmbed lists the top usage rankings
func BuildRankingsEmbed(share *RankingsShare) *discordgo.MessageEmbed {
	title := "📊 Usage Rankings"
	if share.Format != "" {
		title += " - " + share.Format
	}

	embed := &discordgo.MessageEmbed{
		Title:  title,
		Color:  colorRankings,
		Fields: []*discordgo.MessageEmbedField{},
	}
	if share.Month != "" {
		embed.Description = fmt.Sprintf("**Month:** %s", share.Month)
	}

	var b strings.Builder
	for i, r := range share.Rankings {
		if i == maxRankingLines {
			break
		}
		fmt.Fprintf(&b, "`%2d` **%s** %.2f%%\n", r.Rank, r.Name, r.Usage*100)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Top Pokémon",
		Value: clip(b.String()),
	})

	return embed
}

func slotLine(left, right *pokemon.Slot) string {
	names := make([]string, 0, 2)
	for _, s := range []*pokemon.Slot{left, right} {
		if s == nil {
			names = append(names, "?")
			continue
		}
		line := s.Name
		if s.Item != "" {
			line += " @ " + s.Item
		}
		names = append(names, line)
	}
	return strings.Join(names, "\n")
}

func conditionsLine(c *battle.Conditions) string {
	if c == nil {
		return ""
	}

	var parts []string
	for _, kind := range battle.Kinds {
		if value, turns := c.Condition(kind); value != "" && value != battle.None {
			parts = append(parts, fmt.Sprintf("%s (%d)", value, turns))
		}
	}
	for _, side := range battle.Sides {
		for _, effect := range battle.SideEffects {
			if state, turns := c.SideEffect(side, effect); state == battle.On {
				parts = append(parts, fmt.Sprintf("%s %s (%d)", side, effect, turns))
			}
		}
		for _, hazard := range battle.Hazards {
			if state, level, _ := c.Hazard(side, hazard); state == battle.On {
				if hazard.Stackable() {
					parts = append(parts, fmt.Sprintf("%s %s x%d", side, hazard, level))
				} else {
					parts = append(parts, fmt.Sprintf("%s %s", side, hazard))
				}
			}
		}
	}
	return clip(strings.Join(parts, ", "))
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxEmbedFieldLen {
		return s
	}
	return string(r[:maxEmbedFieldLen-3]) + "..."
}
