package pokemon

import (
	"strings"

	"golang.org/x/text/cases"
)

// TeamSize is the number of members in a full VGC team
const TeamSize = 6

// Slot is one active Pokémon on the field. Empty optional fields mean "not specified".
type Slot struct {
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
	Ability  string `json:"ability,omitempty"`
	TeraType string `json:"teraType,omitempty"`
}

// SlotPosition names one of the four active positions
type SlotPosition string

const (
	TopLeft     SlotPosition = "topLeft"
	TopRight    SlotPosition = "topRight"
	BottomLeft  SlotPosition = "bottomLeft"
	BottomRight SlotPosition = "bottomRight"
)

// Selection is the four active slots: top is your side, bottom the opponent's
type Selection struct {
	TopLeft     *Slot `json:"topLeft"`
	TopRight    *Slot `json:"topRight"`
	BottomLeft  *Slot `json:"bottomLeft"`
	BottomRight *Slot `json:"bottomRight"`
}

// Complete reports whether every slot is filled
func (s *Selection) Complete() bool {
	return s != nil && s.TopLeft != nil && s.TopRight != nil && s.BottomLeft != nil && s.BottomRight != nil
}

// Set places slot at pos; a nil slot clears it
func (s *Selection) Set(pos SlotPosition, slot *Slot) bool {
	switch pos {
	case TopLeft:
		s.TopLeft = slot
	case TopRight:
		s.TopRight = slot
	case BottomLeft:
		s.BottomLeft = slot
	case BottomRight:
		s.BottomRight = slot
	default:
		return false
	}
	return true
}

// Clone copies the selection and every filled slot
func (s Selection) Clone() Selection {
	return Selection{
		TopLeft:     s.TopLeft.clone(),
		TopRight:    s.TopRight.clone(),
		BottomLeft:  s.BottomLeft.clone(),
		BottomRight: s.BottomRight.clone(),
	}
}

func (s *Slot) clone() *Slot {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// Member is one Pokémon of a six-member team sheet
type Member struct {
	Name     string   `json:"name"`
	Item     string   `json:"item,omitempty"`
	Ability  string   `json:"ability,omitempty"`
	TeraType string   `json:"teraType,omitempty"`
	Moves    []string `json:"moves,omitempty"`
}

// Team is a team sheet; it only constrains a selection when Specified
type Team []Member

// Specified reports whether the team has exactly six members with names
func (t Team) Specified() bool {
	return len(t.valid()) == TeamSize
}

func (t Team) valid() []Member {
	out := make([]Member, 0, len(t))
	for _, m := range t {
		if strings.TrimSpace(m.Name) != "" {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the member with exactly this name
func (t Team) Find(name string) (*Member, bool) {
	for i := range t {
		if t[i].Name == name {
			return &t[i], true
		}
	}
	return nil, false
}

// FindFold matches names case-insensitively, ignoring surrounding whitespace
func (t Team) FindFold(name string) (*Member, bool) {
	want := Fold(name)
	for i := range t {
		if Fold(t[i].Name) == want {
			return &t[i], true
		}
	}
	return nil, false
}

// Fold normalizes a Pokémon name for case-insensitive comparison
func Fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
