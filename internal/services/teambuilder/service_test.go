package teambuilder_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	mockvgcapi "github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi/mock"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/services/teambuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mockvgcapi.MockClient, teambuilder.Service) {
	ctrl := gomock.NewController(t)
	client := mockvgcapi.NewMockClient(ctrl)
	return client, teambuilder.NewService(&teambuilder.ServiceConfig{Client: client})
}

func TestSuggest_FiltersTeamMembers(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()

	client.EXPECT().
		SuggestPokemon(ctx, &vgcapi.TeamRequest{Format: "gen9vgc2024regh", Team: []string{"Incineroar", "Amoonguss"}}).
		Return([]*vgcapi.Suggestion{
			{Name: "incineroar", Score: 0.99},
			{Name: "Flutter Mane", Score: 0.8},
		}, nil)

	got, err := svc.Suggest(ctx, &vgcapi.TeamRequest{
		Format: " gen9vgc2024regh ",
		Team:   []string{" Incineroar", "", "Amoonguss "},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Flutter Mane", got[0].Name)
}

func TestSuggest_FullTeam(t *testing.T) {
	_, svc := setup(t)

	got, err := svc.Suggest(context.Background(), &vgcapi.TeamRequest{
		Format: "gen9vgc2024regh",
		Team:   []string{"A", "B", "C", "D", "E", "F"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidation(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *vgcapi.TeamRequest
		want  string
	}{
		{
			name:  "missing format",
			input: &vgcapi.TeamRequest{Team: []string{"Incineroar"}},
			want:  "Please select a format.",
		},
		{
			name:  "duplicate species",
			input: &vgcapi.TeamRequest{Format: "f", Team: []string{"Incineroar", "INCINEROAR"}},
			want:  "INCINEROAR is already on your team.",
		},
		{
			name:  "too many",
			input: &vgcapi.TeamRequest{Format: "f", Team: []string{"A", "B", "C", "D", "E", "F", "G"}},
			want:  "A team can have at most 6 Pokémon.",
		},
		{
			name:  "empty team",
			input: &vgcapi.TeamRequest{Format: "f"},
			want:  "Add at least one Pokémon to your team first.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Optimize(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, vgcerr.IsValidation(err))
			assert.Equal(t, tt.want, vgcerr.UserMessage(err))
		})
	}
}

func TestOptimize(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()

	client.EXPECT().
		OptimizeTeam(ctx, &vgcapi.TeamRequest{Format: "f", Team: []string{"Incineroar"}}).
		Return(&vgcapi.OptimizedTeam{Team: []string{"Incineroar", "Rillaboom"}, Score: 0.7}, nil)

	team, err := svc.Optimize(ctx, &vgcapi.TeamRequest{Format: "f", Team: []string{"Incineroar"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Incineroar", "Rillaboom"}, team.Team)
}

func TestAvailablePokemon(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()

	client.EXPECT().AvailablePokemon(ctx, "f").Return(nil, vgcerr.FromStatus(500, ""))

	_, err := svc.AvailablePokemon(ctx, " f ")
	assert.True(t, vgcerr.IsUnavailable(err))
	assert.Equal(t, vgcerr.GenericNetworkMessage, vgcerr.UserMessage(err))
}
