package model

type Stats struct {
	TotalTournaments            int64        `json:"totalTournaments"`
	TotalUsers                  int64        `json:"totalUsers"`
	TotalEarnings               float64      `json:"totalEarnings"`
	TotalRegistrations          int64        `json:"totalRegistrations"`
	AveragePlayersPerTournament int64        `json:"averagePlayersPerTournament"`
	TournamentsByStatus         StatusCounts `json:"tournamentsByStatus"`
}

type ListUsersRequest struct {
	Page   int
	Limit  int
	Search string
}

type UserPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
}

type UserListResponse struct {
	Users      []Profile      `json:"users"`
	Pagination UserPagination `json:"pagination"`
}

type RosterSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	GameType     string `json:"gameType"`
	TotalPlayers int    `json:"totalPlayers"`
	MaxPlayers   int    `json:"maxPlayers"`
}

type RosterResponse struct {
	Tournament RosterSummary `json:"tournament"`
	Players    []Player      `json:"players"`
}

// PlayerExport is a rendered CSV roster.
type PlayerExport struct {
	Filename   string
	Content    []byte
	ArchiveURL string
}
