package pokemon_test

import (
	"testing"

	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	"github.com/stretchr/testify/assert"
)

func sixMembers() pokemon.Team {
	return pokemon.Team{
		{Name: "Incineroar"},
		{Name: "Rillaboom"},
		{Name: "Urshifu-Rapid-Strike"},
		{Name: "Flutter Mane"},
		{Name: "Amoonguss"},
		{Name: "Tornadus"},
	}
}

func TestTeam_Specified(t *testing.T) {
	assert.True(t, sixMembers().Specified())
	assert.False(t, pokemon.Team{}.Specified())
	assert.False(t, sixMembers()[:5].Specified())

	withBlank := sixMembers()
	withBlank[2].Name = "  "
	assert.False(t, withBlank.Specified())
}

func TestTeam_Find(t *testing.T) {
	team := sixMembers()

	m, ok := team.Find("Amoonguss")
	assert.True(t, ok)
	assert.Equal(t, "Amoonguss", m.Name)

	_, ok = team.Find("amoonguss")
	assert.False(t, ok)

	m, ok = team.FindFold("  flutter mane ")
	assert.True(t, ok)
	assert.Equal(t, "Flutter Mane", m.Name)
}

func TestSelection_Complete(t *testing.T) {
	sel := &pokemon.Selection{}
	assert.False(t, sel.Complete())

	assert.True(t, sel.Set(pokemon.TopLeft, &pokemon.Slot{Name: "Incineroar"}))
	assert.True(t, sel.Set(pokemon.TopRight, &pokemon.Slot{Name: "Rillaboom"}))
	assert.True(t, sel.Set(pokemon.BottomLeft, &pokemon.Slot{Name: "Kingambit"}))
	assert.False(t, sel.Complete())

	assert.True(t, sel.Set(pokemon.BottomRight, &pokemon.Slot{Name: "Pelipper"}))
	assert.True(t, sel.Complete())

	assert.False(t, sel.Set("middle", nil))

	var nilSel *pokemon.Selection
	assert.False(t, nilSel.Complete())
}

func TestSelection_Clone(t *testing.T) {
	sel := pokemon.Selection{
		TopLeft:  &pokemon.Slot{Name: "Incineroar", Item: "Sitrus Berry"},
		TopRight: &pokemon.Slot{Name: "Rillaboom"},
	}

	clone := sel.Clone()
	assert.Equal(t, sel, clone)
	assert.NotSame(t, sel.TopLeft, clone.TopLeft)
	assert.Nil(t, clone.BottomLeft)

	sel.TopLeft.Item = "Safety Goggles"
	assert.Equal(t, "Sitrus Berry", clone.TopLeft.Item)
}
