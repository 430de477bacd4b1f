package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/model"
	"github.com/muhammadheryan/esports-tournament/repository/tournament"
)

// TournamentStore keeps tournaments and their rosters in process memory.
// AddPlayer checks and appends inside one critical section, so it gives the
// same admission guarantee as the SQL seat claim.
type TournamentStore struct {
	tournaments map[string]*model.Tournament
	mu          sync.RWMutex
	now         func() time.Time
}

func NewTournamentStore() *TournamentStore {
	return &TournamentStore{
		tournaments: make(map[string]*model.Tournament),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ tournament.TournamentRepository = (*TournamentStore)(nil)

func (s *TournamentStore) Create(_ context.Context, t *model.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cloneTournament(t)
	c.PlayerCount = 0
	c.Players = make([]model.Player, 0)
	s.tournaments[t.ID] = c
	return nil
}

func (s *TournamentStore) GetByID(_ context.Context, id string) (*model.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tournaments[id]
	if !ok {
		return nil, nil
	}
	return cloneTournament(t), nil
}

func (s *TournamentStore) List(_ context.Context, filter *model.TournamentFilter) ([]model.Tournament, int64, error) {
	s.mu.RLock()
	matched := make([]model.Tournament, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		if filter.GameType != "" && t.GameType != filter.GameType {
			continue
		}
		if filter.Status != "" && model.DeriveStatus(t.StartTime, t.Status, filter.Now) != filter.Status {
			continue
		}
		matched = append(matched, *cloneTournament(t))
	}
	s.mu.RUnlock()

	less := tournamentLess(filter.SortColumn)
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if filter.Desc {
			a, b = b, a
		}
		if c := less(a, b); c != 0 {
			return c < 0
		}
		return matched[i].ID < matched[j].ID
	})

	return page(matched, filter.Offset, filter.Limit), int64(len(matched)), nil
}

func (s *TournamentStore) ListByPlayer(_ context.Context, phone string) ([]model.Tournament, error) {
	s.mu.RLock()
	items := make([]model.Tournament, 0)
	for _, t := range s.tournaments {
		if t.HasPlayer(phone) {
			items = append(items, *cloneTournament(t))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.After(items[j].StartTime)
	})
	return items, nil
}

func (s *TournamentStore) AddPlayer(_ context.Context, req *model.AdmitRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[req.TournamentID]
	if !ok ||
		t.Status == constant.TournamentStatusCancelled ||
		!req.Now.Before(t.StartTime) ||
		t.IsFull() {
		return tournament.ErrSeatUnavailable
	}
	if t.HasPlayer(req.Player.Phone) {
		return tournament.ErrDuplicatePlayer
	}

	p := req.Player
	p.TournamentID = t.ID
	t.Players = append(t.Players, p)
	t.PlayerCount = len(t.Players)
	t.Status = constant.TournamentStatusUpcoming
	t.UpdatedAt = ptr(s.now())
	return nil
}

func (s *TournamentStore) UpdateStatus(_ context.Context, id string, status constant.TournamentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tournaments[id]; ok {
		t.Status = status
		t.UpdatedAt = ptr(s.now())
	}
	return nil
}

func (s *TournamentStore) CountByStatus(_ context.Context, now time.Time) (*model.StatusCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts model.StatusCounts
	for _, t := range s.tournaments {
		switch model.DeriveStatus(t.StartTime, t.Status, now) {
		case constant.TournamentStatusUpcoming:
			counts.Upcoming++
		case constant.TournamentStatusLive:
			counts.Live++
		case constant.TournamentStatusCompleted:
			counts.Completed++
		case constant.TournamentStatusCancelled:
			counts.Cancelled++
		}
	}
	return &counts, nil
}

func (s *TournamentStore) Totals(_ context.Context) (*model.TournamentTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := model.TournamentTotals{Tournaments: int64(len(s.tournaments))}
	for _, t := range s.tournaments {
		totals.Registrations += int64(t.PlayerCount)
		totals.Earnings += t.TotalPrizePool()
	}
	return &totals, nil
}

// tournamentLess returns a three-way comparison for a sortable column.
func tournamentLess(column string) func(a, b *model.Tournament) int {
	switch column {
	case "created_at":
		return func(a, b *model.Tournament) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "entry_fee":
		return func(a, b *model.Tournament) int { return compareFloat(a.EntryFee, b.EntryFee) }
	case "winning_amount":
		return func(a, b *model.Tournament) int { return compareFloat(a.WinningAmount, b.WinningAmount) }
	case "title":
		return func(a, b *model.Tournament) int { return strings.Compare(a.Title, b.Title) }
	default:
		return func(a, b *model.Tournament) int { return a.StartTime.Compare(b.StartTime) }
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cloneTournament(t *model.Tournament) *model.Tournament {
	c := *t
	c.Players = append(make([]model.Player, 0, len(t.Players)), t.Players...)
	if t.UpdatedAt != nil {
		c.UpdatedAt = ptr(*t.UpdatedAt)
	}
	return &c
}
