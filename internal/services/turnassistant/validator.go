package turnassistant

import (
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

const (
	msgIncompleteSelection = "Please select all four Pokémon before analyzing."
	msgDuplicateYourSide   = "You cannot select the same Pokémon twice on your side."
	msgDuplicateOpponent   = "You cannot select the same Pokémon twice on the opponent's side."
)

type attribute struct {
	label string
	slot  func(*pokemon.Slot) string
	team  func(*pokemon.Member) string
}

var attributes = []attribute{
	{
		label: "item",
		slot:  func(s *pokemon.Slot) string { return s.Item },
		team:  func(m *pokemon.Member) string { return m.Item },
	},
	{
		label: "ability",
		slot:  func(s *pokemon.Slot) string { return s.Ability },
		team:  func(m *pokemon.Member) string { return m.Ability },
	},
	{
		label: "tera type",
		slot:  func(s *pokemon.Slot) string { return s.TeraType },
		team:  func(m *pokemon.Member) string { return m.TeraType },
	},
}

// Validate runs the pre-analysis checks in order and returns the first
// failure as a validation error. Your side matches team names exactly; the
// opponent side ignores case and surrounding whitespace.
func Validate(sel *pokemon.Selection, yourTeam, opponentTeam pokemon.Team) error {
	if !sel.Complete() {
		return vgcerr.Validation(msgIncompleteSelection)
	}

	if sel.TopLeft.Name == sel.TopRight.Name {
		return vgcerr.Validation(msgDuplicateYourSide).WithMeta("pokemon", sel.TopLeft.Name)
	}
	if sel.BottomLeft.Name == sel.BottomRight.Name {
		return vgcerr.Validation(msgDuplicateOpponent).WithMeta("pokemon", sel.BottomLeft.Name)
	}

	opponentSlots := []*pokemon.Slot{sel.BottomLeft, sel.BottomRight}
	if opponentTeam.Specified() {
		for _, slot := range opponentSlots {
			if _, ok := opponentTeam.FindFold(slot.Name); !ok {
				return vgcerr.Validationf("%s is not part of the opponent's team.", slot.Name).
					WithMeta("pokemon", slot.Name)
			}
		}
	}

	if yourTeam.Specified() {
		for _, slot := range []*pokemon.Slot{sel.TopLeft, sel.TopRight} {
			member, ok := yourTeam.Find(slot.Name)
			if !ok {
				return vgcerr.Validationf("%s is not part of your team.", slot.Name).
					WithMeta("pokemon", slot.Name)
			}
			if err := checkAttributes(slot, member); err != nil {
				return err
			}
		}
	}

	if opponentTeam.Specified() {
		for _, slot := range opponentSlots {
			member, _ := opponentTeam.FindFold(slot.Name)
			if err := checkAttributes(slot, member); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkAttributes(slot *pokemon.Slot, member *pokemon.Member) error {
	for _, attr := range attributes {
		have, want := attr.slot(slot), attr.team(member)
		if have == "" || want == "" || have == want {
			continue
		}
		return vgcerr.Validationf("%s's %s (%s) does not match the team's %s (%s).",
			slot.Name, attr.label, have, attr.label, want).
			WithMeta("pokemon", slot.Name).
			WithMeta("field", attr.label)
	}
	return nil
}
