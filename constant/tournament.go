package constant

import "time"

type TournamentStatus string

const (
	TournamentStatusUpcoming  TournamentStatus = "UPCOMING"
	TournamentStatusLive      TournamentStatus = "LIVE"
	TournamentStatusCompleted TournamentStatus = "COMPLETED"
	TournamentStatusCancelled TournamentStatus = "CANCELLED"
)

// TournamentDuration is how long a tournament stays LIVE after its start time.
const TournamentDuration = 2 * time.Hour

const DefaultMaxPlayers = 100

func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentStatusUpcoming, TournamentStatusLive, TournamentStatusCompleted, TournamentStatusCancelled:
		return true
	}
	return false
}

type GameType string

const (
	GameTypePUBG      GameType = "PUBG"
	GameTypeFreeFire  GameType = "FREE_FIRE"
	GameTypeCODMobile GameType = "COD_MOBILE"
	GameTypeBGMI      GameType = "BGMI"
)

// Sortable columns accepted by the public tournament listing, keyed by their wire name.
var TournamentSortColumns = map[string]string{
	"startTime":     "start_time",
	"createdAt":     "created_at",
	"entryFee":      "entry_fee",
	"winningAmount": "winning_amount",
	"title":         "title",
}

func (g GameType) Valid() bool {
	switch g {
	case GameTypePUBG, GameTypeFreeFire, GameTypeCODMobile, GameTypeBGMI:
		return true
	}
	return false
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	DefaultUserPageLimit = 20

	// MaxPage keeps (page-1)*limit far from int overflow.
	MaxPage = 1_000_000
)
