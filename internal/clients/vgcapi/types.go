package vgcapi

import (
	"time"

	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
)

type Pokemon struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Types  []string       `json:"types"`
	Sprite string         `json:"sprite,omitempty"`
	Stats  map[string]int `json:"stats,omitempty"`
}

type PokemonSpecies struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Generation  string `json:"generation,omitempty"`
	EvolvesFrom string `json:"evolvesFrom,omitempty"`
	FlavorText  string `json:"flavorText,omitempty"`
	IsLegendary bool   `json:"isLegendary"`
}

type Game struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Generation int    `json:"generation,omitempty"`
}

type GameFormat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Game string `json:"game,omitempty"`
}

type Item struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Ability struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Move struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	Power    int    `json:"power,omitempty"`
	Accuracy int    `json:"accuracy,omitempty"`
	PP       int    `json:"pp,omitempty"`
}

// MultiStatsRequest aggregates usage across a set of replays
type MultiStatsRequest struct {
	ReplayIDs []string `json:"replayIds"`
	Format    string   `json:"format,omitempty"`
}

type UsageStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Usage   float64 `json:"usage"`
	WinRate float64 `json:"winRate"`
}

type MultiStatsResult struct {
	TotalBattles int         `json:"totalBattles"`
	Pokemon      []UsageStat `json:"pokemon"`
	Moves        []UsageStat `json:"moves,omitempty"`
	Items        []UsageStat `json:"items,omitempty"`
	TeraTypes    []UsageStat `json:"teraTypes,omitempty"`
}

type SavedReplay struct {
	ID       string    `json:"id"`
	ReplayID string    `json:"replayId"`
	URL      string    `json:"url,omitempty"`
	Format   string    `json:"format,omitempty"`
	Players  []string  `json:"players,omitempty"`
	Winner   string    `json:"winner,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	SavedAt  time.Time `json:"savedAt"`
}

type SaveReplayInput struct {
	ReplayID string   `json:"replayId"`
	URL      string   `json:"url,omitempty"`
	Format   string   `json:"format,omitempty"`
	Players  []string `json:"players,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

type ForumTopic struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Author       string         `json:"author,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	MessageCount int            `json:"messageCount"`
	Messages     []ForumMessage `json:"messages,omitempty"`
}

type ForumMessage struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId,omitempty"`
	AuthorID  string    `json:"authorId,omitempty"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostMessageInput struct {
	Content string `json:"content"`
}

// RankingsQuery filters GET /api/rankings; zero values are omitted
type RankingsQuery struct {
	Month  string
	Format string
	Rating int
	Limit  int
}

type UsageEntry struct {
	Name  string  `json:"name"`
	Usage float64 `json:"usage"`
}

type Ranking struct {
	Rank      int          `json:"rank"`
	Name      string       `json:"name"`
	Usage     float64      `json:"usage"`
	RawCount  int          `json:"rawCount"`
	Items     []UsageEntry `json:"items,omitempty"`
	Abilities []UsageEntry `json:"abilities,omitempty"`
	Moves     []UsageEntry `json:"moves,omitempty"`
	Teammates []UsageEntry `json:"teammates,omitempty"`
	TeraTypes []UsageEntry `json:"teraTypes,omitempty"`
}

// AnalyzeRequest is the turn assistant submission
type AnalyzeRequest struct {
	PokemonData      pokemon.Selection  `json:"pokemonData"`
	BattleConditions *battle.Conditions `json:"battleConditions"`
	YourTeam         pokemon.Team       `json:"yourTeam"`
	OpponentTeam     pokemon.Team       `json:"opponentTeam"`
}

type MoveOption struct {
	Pokemon string  `json:"pokemon"`
	Move    string  `json:"move"`
	Target  string  `json:"target,omitempty"`
	Count   int     `json:"count"`
	WinRate float64 `json:"winRate"`
}

type MoveCombination struct {
	Moves   []MoveOption `json:"moves"`
	Count   int          `json:"count"`
	WinRate float64      `json:"winRate"`
}

type AnalyzeData struct {
	WinRate         float64           `json:"winRate"`
	AllMoveOptions  []MoveOption      `json:"allMoveOptions"`
	TopCombinations []MoveCombination `json:"topCombinations"`
}

type AnalyzeResult struct {
	MatchingScenarios int         `json:"matchingScenarios"`
	Data              AnalyzeData `json:"data"`
}

// TeamRequest drives the team builder suggest and optimize endpoints
type TeamRequest struct {
	Format string   `json:"format"`
	Team   []string `json:"team"`
}

type Suggestion struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

type OptimizedTeam struct {
	Team  []string `json:"team"`
	Score float64  `json:"score"`
	Notes []string `json:"notes,omitempty"`
}

// errorBody is the API's failure envelope
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
