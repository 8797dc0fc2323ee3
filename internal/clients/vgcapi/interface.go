package vgcapi

//go:generate mockgen -destination=mock/mock_client.go -package=mockvgcapi . Client

import "context"

type Client interface {
	ListPokemon(ctx context.Context) ([]*Pokemon, error)
	GetPokemon(ctx context.Context, id string) (*Pokemon, error)
	GetPokemonSpecies(ctx context.Context, id string) (*PokemonSpecies, error)

	ListGames(ctx context.Context) ([]*Game, error)
	ListGameFormats(ctx context.Context) ([]*GameFormat, error)
	MultiStats(ctx context.Context, input *MultiStatsRequest) (*MultiStatsResult, error)

	ListSavedReplays(ctx context.Context, uid string) ([]*SavedReplay, error)
	GetSavedReplay(ctx context.Context, uid, id string) (*SavedReplay, error)
	SaveReplay(ctx context.Context, uid string, input *SaveReplayInput) (*SavedReplay, error)
	DeleteSavedReplay(ctx context.Context, uid, id string) error

	ListForumTopics(ctx context.Context) ([]*ForumTopic, error)
	GetForumTopic(ctx context.Context, id string) (*ForumTopic, error)
	PostForumMessage(ctx context.Context, topicID string, input *PostMessageInput) (*ForumMessage, error)

	ListMonths(ctx context.Context) ([]string, error)
	ListFormats(ctx context.Context, month string) ([]string, error)
	GetRankings(ctx context.Context, query *RankingsQuery) ([]*Ranking, error)

	Analyze(ctx context.Context, input *AnalyzeRequest) (*AnalyzeResult, error)

	AvailablePokemon(ctx context.Context, format string) ([]string, error)
	SuggestPokemon(ctx context.Context, input *TeamRequest) ([]*Suggestion, error)
	OptimizeTeam(ctx context.Context, input *TeamRequest) (*OptimizedTeam, error)

	ListItems(ctx context.Context) ([]*Item, error)
	ListAbilities(ctx context.Context) ([]*Ability, error)
	ListMoves(ctx context.Context) ([]*Move, error)
}
