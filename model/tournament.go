package model

import (
	"time"

	"github.com/muhammadheryan/esports-tournament/constant"
)

// Tournament represents the tournament table entity together with its roster.
type Tournament struct {
	ID            string                    `db:"id" json:"id"`
	GameType      constant.GameType         `db:"game_type" json:"gameType"`
	Title         string                    `db:"title" json:"title"`
	StartTime     time.Time                 `db:"start_time" json:"startTime"`
	EntryFee      float64                   `db:"entry_fee" json:"entryFee"`
	PerKill       float64                   `db:"per_kill" json:"perKill"`
	WinningAmount float64                   `db:"winning_amount" json:"winningAmount"`
	MaxPlayers    int                       `db:"max_players" json:"maxPlayers"`
	RoomID        string                    `db:"room_id" json:"roomId"`
	RoomPassword  string                    `db:"room_password" json:"roomPassword"`
	Status        constant.TournamentStatus `db:"status" json:"status"`
	PlayerCount   int                       `db:"player_count" json:"-"`
	CreatedAt     time.Time                 `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time                `db:"updated_at" json:"updatedAt,omitempty"`

	// Players is ordered by registration.
	Players []Player `db:"-" json:"players"`
}

// Player is one registration entry in a tournament roster.
type Player struct {
	TournamentID string    `db:"tournament_id" json:"-"`
	Phone        string    `db:"phone" json:"phone"`
	GameName     string    `db:"game_name" json:"gameName"`
	UID          string    `db:"uid" json:"uid"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}

// PublicPlayer is a roster entry with the phone number removed.
type PublicPlayer struct {
	GameName     string    `json:"gameName"`
	UID          string    `json:"uid"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// DeriveStatus computes the lifecycle state of a tournament at now.
// CANCELLED is sticky; every other stored value is ignored.
func DeriveStatus(startTime time.Time, stored constant.TournamentStatus, now time.Time) constant.TournamentStatus {
	if stored == constant.TournamentStatusCancelled {
		return constant.TournamentStatusCancelled
	}
	switch {
	case now.Before(startTime):
		return constant.TournamentStatusUpcoming
	case now.Before(startTime.Add(constant.TournamentDuration)):
		return constant.TournamentStatusLive
	default:
		return constant.TournamentStatusCompleted
	}
}

// Refresh replaces the stored status with the one derived at now.
func (t *Tournament) Refresh(now time.Time) {
	t.Status = DeriveStatus(t.StartTime, t.Status, now)
}

func (t *Tournament) IsFull() bool {
	return t.PlayerCount >= t.MaxPlayers
}

func (t *Tournament) HasPlayer(phone string) bool {
	for _, p := range t.Players {
		if p.Phone == phone {
			return true
		}
	}
	return false
}

// Registration returns the roster entry for phone, if any.
func (t *Tournament) Registration(phone string) (Player, bool) {
	for _, p := range t.Players {
		if p.Phone == phone {
			return p, true
		}
	}
	return Player{}, false
}

func (t *Tournament) SpotsLeft() int {
	return t.MaxPlayers - t.PlayerCount
}

func (t *Tournament) TotalPrizePool() float64 {
	return t.EntryFee * float64(t.PlayerCount)
}

// Public returns the tournament without room secrets and with player phones redacted.
func (t *Tournament) Public() PublicTournament {
	players := make([]PublicPlayer, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, PublicPlayer{
			GameName:     p.GameName,
			UID:          p.UID,
			RegisteredAt: p.RegisteredAt,
		})
	}
	return PublicTournament{
		ID:             t.ID,
		GameType:       t.GameType,
		Title:          t.Title,
		StartTime:      t.StartTime,
		EntryFee:       t.EntryFee,
		PerKill:        t.PerKill,
		WinningAmount:  t.WinningAmount,
		MaxPlayers:     t.MaxPlayers,
		Status:         t.Status,
		SpotsLeft:      t.SpotsLeft(),
		TotalPrizePool: t.TotalPrizePool(),
		Players:        players,
		CreatedAt:      t.CreatedAt,
	}
}

// Detail returns the full admin view of the tournament.
func (t *Tournament) Detail() TournamentDetail {
	players := t.Players
	if players == nil {
		players = []Player{}
	}
	return TournamentDetail{
		ID:             t.ID,
		GameType:       t.GameType,
		Title:          t.Title,
		StartTime:      t.StartTime,
		EntryFee:       t.EntryFee,
		PerKill:        t.PerKill,
		WinningAmount:  t.WinningAmount,
		MaxPlayers:     t.MaxPlayers,
		RoomID:         t.RoomID,
		RoomPassword:   t.RoomPassword,
		Status:         t.Status,
		SpotsLeft:      t.SpotsLeft(),
		TotalPrizePool: t.TotalPrizePool(),
		Players:        players,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type PublicTournament struct {
	ID             string                    `json:"id"`
	GameType       constant.GameType         `json:"gameType"`
	Title          string                    `json:"title"`
	StartTime      time.Time                 `json:"startTime"`
	EntryFee       float64                   `json:"entryFee"`
	PerKill        float64                   `json:"perKill"`
	WinningAmount  float64                   `json:"winningAmount"`
	MaxPlayers     int                       `json:"maxPlayers"`
	Status         constant.TournamentStatus `json:"status"`
	SpotsLeft      int                       `json:"spotsLeft"`
	TotalPrizePool float64                   `json:"totalPrizePool"`
	Players        []PublicPlayer            `json:"players"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

type TournamentDetail struct {
	ID             string                    `json:"id"`
	GameType       constant.GameType         `json:"gameType"`
	Title          string                    `json:"title"`
	StartTime      time.Time                 `json:"startTime"`
	EntryFee       float64                   `json:"entryFee"`
	PerKill        float64                   `json:"perKill"`
	WinningAmount  float64                   `json:"winningAmount"`
	MaxPlayers     int                       `json:"maxPlayers"`
	RoomID         string                    `json:"roomId"`
	RoomPassword   string                    `json:"roomPassword"`
	Status         constant.TournamentStatus `json:"status"`
	SpotsLeft      int                       `json:"spotsLeft"`
	TotalPrizePool float64                   `json:"totalPrizePool"`
	Players        []Player                  `json:"players"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      *time.Time                `json:"updatedAt,omitempty"`
}

// UserTournament is a tournament joined with the caller's own registration.
type UserTournament struct {
	PublicTournament
	UserRegistration Player `json:"userRegistration"`
}

// TournamentFilter for querying tournaments
type TournamentFilter struct {
	GameType   constant.GameType
	Status     constant.TournamentStatus
	Now        time.Time
	SortColumn string
	Desc       bool
	Limit      int
	Offset     int
}

// AdmitRequest asks the store to append Player to a tournament roster if a
// seat is still free and registration is still open at Now.
type AdmitRequest struct {
	TournamentID string
	Player       Player
	Now          time.Time
}

type StatusCounts struct {
	Upcoming  int64 `db:"upcoming" json:"upcoming"`
	Live      int64 `db:"live" json:"live"`
	Completed int64 `db:"completed" json:"completed"`
	Cancelled int64 `db:"cancelled" json:"cancelled"`
}

// TournamentTotals aggregates every tournament row.
type TournamentTotals struct {
	Tournaments   int64   `db:"tournaments"`
	Registrations int64   `db:"registrations"`
	Earnings      float64 `db:"earnings"`
}

type CreateTournamentRequest struct {
	GameType      string     `json:"gameType" validate:"required,oneof=PUBG FREE_FIRE COD_MOBILE BGMI"`
	Title         string     `json:"title" validate:"required,max=100"`
	StartTime     *time.Time `json:"startTime" validate:"required"`
	EntryFee      *float64   `json:"entryFee" validate:"required,gte=0"`
	PerKill       *float64   `json:"perKill" validate:"required,gte=0"`
	WinningAmount *float64   `json:"winningAmount" validate:"required,gte=0"`
	MaxPlayers    *int       `json:"maxPlayers" validate:"omitempty,min=1,max=500"`
	RoomID        string     `json:"roomId" validate:"required,max=64"`
	RoomPassword  string     `json:"roomPassword" validate:"required,max=64"`
}

type RegisterRequest struct {
	Phone    string `json:"phone" validate:"required,phone"`
	GameName string `json:"gameName" validate:"required,min=2,max=30"`
	UID      string `json:"uid" validate:"required,max=64"`
}

type UpdateStatusRequest struct {
	Status constant.TournamentStatus `json:"status" validate:"required,oneof=UPCOMING LIVE COMPLETED CANCELLED"`
}

type ListTournamentsRequest struct {
	GameType  string
	Status    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Admission is returned on a successful registration; it is the only place a
// non-admin caller receives the room credentials.
type Admission struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	RoomID       string    `json:"roomId"`
	RoomPassword string    `json:"roomPassword"`
	StartTime    time.Time `json:"startTime"`
}

type Pagination struct {
	CurrentPage      int   `json:"currentPage"`
	TotalPages       int   `json:"totalPages"`
	TotalTournaments int64 `json:"totalTournaments"`
	HasNext          bool  `json:"hasNext"`
	HasPrev          bool  `json:"hasPrev"`
}

type TournamentListResponse struct {
	Tournaments []PublicTournament `json:"tournaments"`
	Pagination  Pagination         `json:"pagination"`
}
