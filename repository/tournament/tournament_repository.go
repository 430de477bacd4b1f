package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/model"
	txrepo "github.com/muhammadheryan/esports-tournament/repository/tx"
)

var (
	// ErrSeatUnavailable means the conditional seat claim matched no row: the
	// tournament is full, cancelled, already started or gone.
	ErrSeatUnavailable = errors.New("tournament seat unavailable")
	// ErrDuplicatePlayer means the phone already holds a seat in the tournament.
	ErrDuplicatePlayer = errors.New("player already registered")
)

const mysqlDuplicateEntry = 1062

type TournamentRepository interface {
	Create(ctx context.Context, t *model.Tournament) error
	// GetByID returns nil, nil when the tournament does not exist.
	GetByID(ctx context.Context, id string) (*model.Tournament, error)
	List(ctx context.Context, filter *model.TournamentFilter) ([]model.Tournament, int64, error)
	ListByPlayer(ctx context.Context, phone string) ([]model.Tournament, error)
	// AddPlayer appends req.Player as one atomic conditional write. It returns
	// ErrSeatUnavailable or ErrDuplicatePlayer when the write is rejected.
	AddPlayer(ctx context.Context, req *model.AdmitRequest) error
	UpdateStatus(ctx context.Context, id string, status constant.TournamentStatus) error
	CountByStatus(ctx context.Context, now time.Time) (*model.StatusCounts, error)
	Totals(ctx context.Context) (*model.TournamentTotals, error)
}

type SQL struct {
	conn   *sqlx.DB
	txRepo txrepo.TxRepository
}

func NewTournamentRepository(conn *sqlx.DB, txRepo txrepo.TxRepository) TournamentRepository {
	return &SQL{conn: conn, txRepo: txRepo}
}

const (
	tournamentColumns = `t.id, t.game_type, t.title, t.start_time, t.entry_fee, t.per_kill, t.winning_amount,
t.max_players, t.room_id, t.room_password, t.status, t.player_count, t.created_at, t.updated_at`

	insertTournamentQuery = `INSERT INTO tournament (id, game_type, title, start_time, entry_fee, per_kill, winning_amount,
max_players, room_id, room_password, status, player_count, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`

	getTournamentQuery = `SELECT ` + tournamentColumns + ` FROM tournament t WHERE t.id = ?`

	listTournamentBase  = `SELECT ` + tournamentColumns + ` FROM tournament t WHERE true`
	countTournamentBase = `SELECT COUNT(*) FROM tournament t WHERE true`

	listByPlayerQuery = `SELECT ` + tournamentColumns + ` FROM tournament t
JOIN tournament_player p ON p.tournament_id = t.id
WHERE p.phone = ? ORDER BY t.start_time DESC`

	playersQuery = `SELECT tournament_id, phone, game_name, uid, registered_at FROM tournament_player
WHERE tournament_id IN (?) ORDER BY id`

	claimSeatQuery = `UPDATE tournament SET player_count = player_count + 1, status = ?, updated_at = UTC_TIMESTAMP()
WHERE id = ? AND status <> ? AND start_time > ? AND player_count < max_players`

	insertPlayerQuery = `INSERT INTO tournament_player (tournament_id, phone, game_name, uid, registered_at) VALUES (?, ?, ?, ?, ?)`

	updateStatusQuery = `UPDATE tournament SET status = ?, updated_at = UTC_TIMESTAMP() WHERE id = ?`

	countByStatusQuery = `SELECT
COALESCE(SUM(CASE WHEN status <> ? AND start_time > ? THEN 1 ELSE 0 END), 0) AS upcoming,
COALESCE(SUM(CASE WHEN status <> ? AND start_time <= ? AND start_time > ? THEN 1 ELSE 0 END), 0) AS live,
COALESCE(SUM(CASE WHEN status <> ? AND start_time <= ? THEN 1 ELSE 0 END), 0) AS completed,
COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled
FROM tournament`

	totalsQuery = `SELECT COUNT(*) AS tournaments, COALESCE(SUM(player_count), 0) AS registrations,
COALESCE(SUM(entry_fee * player_count), 0) AS earnings FROM tournament`
)

func (s *SQL) Create(ctx context.Context, t *model.Tournament) error {
	_, err := s.conn.ExecContext(ctx, insertTournamentQuery,
		t.ID, t.GameType, t.Title, t.StartTime, t.EntryFee, t.PerKill, t.WinningAmount,
		t.MaxPlayers, t.RoomID, t.RoomPassword, t.Status, t.CreatedAt,
	)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Tournament, error) {
	var t model.Tournament
	if err := s.conn.QueryRowxContext(ctx, getTournamentQuery, id).StructScan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.Tournament{t}
	if err := s.attachPlayers(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *SQL) List(ctx context.Context, filter *model.TournamentFilter) ([]model.Tournament, int64, error) {
	where := ""
	args := make([]any, 0, 8)
	if filter.GameType != "" {
		where += " AND t.game_type = ?"
		args = append(args, filter.GameType)
	}
	if filter.Status != "" {
		predicate, predicateArgs := statusPredicate(filter.Status, filter.Now)
		where += " AND " + predicate
		args = append(args, predicateArgs...)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countTournamentBase+where, args...); err != nil {
		return nil, 0, err
	}

	column := filter.SortColumn
	if column == "" {
		column = "start_time"
	}
	direction := "ASC"
	if filter.Desc {
		direction = "DESC"
	}
	// column comes from constant.TournamentSortColumns, never from the request
	query := fmt.Sprintf("%s%s ORDER BY t.%s %s, t.id ASC LIMIT ? OFFSET ?", listTournamentBase, where, column, direction)

	items, err := s.selectTournaments(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	if err := s.attachPlayers(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) ListByPlayer(ctx context.Context, phone string) ([]model.Tournament, error) {
	items, err := s.selectTournaments(ctx, listByPlayerQuery, phone)
	if err != nil {
		return nil, err
	}
	if err := s.attachPlayers(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) AddPlayer(ctx context.Context, req *model.AdmitRequest) error {
	return s.txRepo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		// the row lock taken here serializes concurrent claims on the same tournament
		res, err := tx.ExecContext(ctx, claimSeatQuery,
			constant.TournamentStatusUpcoming, req.TournamentID, constant.TournamentStatusCancelled, req.Now)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrSeatUnavailable
		}

		p := req.Player
		if _, err := tx.ExecContext(ctx, insertPlayerQuery, req.TournamentID, p.Phone, p.GameName, p.UID, p.RegisteredAt); err != nil {
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
				return ErrDuplicatePlayer
			}
			return err
		}
		return nil
	})
}

func (s *SQL) UpdateStatus(ctx context.Context, id string, status constant.TournamentStatus) error {
	_, err := s.conn.ExecContext(ctx, updateStatusQuery, status, id)
	return err
}

func (s *SQL) CountByStatus(ctx context.Context, now time.Time) (*model.StatusCounts, error) {
	liveSince := now.Add(-constant.TournamentDuration)
	cancelled := constant.TournamentStatusCancelled

	var counts model.StatusCounts
	err := s.conn.QueryRowxContext(ctx, countByStatusQuery,
		cancelled, now,
		cancelled, now, liveSince,
		cancelled, liveSince,
		cancelled,
	).StructScan(&counts)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (s *SQL) Totals(ctx context.Context) (*model.TournamentTotals, error) {
	var totals model.TournamentTotals
	if err := s.conn.QueryRowxContext(ctx, totalsQuery).StructScan(&totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *SQL) selectTournaments(ctx context.Context, query string, args ...any) ([]model.Tournament, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Tournament, 0)
	for rows.Next() {
		var t model.Tournament
		if err := rows.StructScan(&t); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// attachPlayers loads the rosters of items with a single query.
func (s *SQL) attachPlayers(ctx context.Context, items []model.Tournament) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	index := make(map[string]int, len(items))
	for i := range items {
		items[i].Players = make([]model.Player, 0)
		ids = append(ids, items[i].ID)
		index[items[i].ID] = i
	}

	query, args, err := sqlx.In(playersQuery, ids)
	if err != nil {
		return err
	}

	var players []model.Player
	if err := s.conn.SelectContext(ctx, &players, s.conn.Rebind(query), args...); err != nil {
		return err
	}
	for _, p := range players {
		i := index[p.TournamentID]
		items[i].Players = append(items[i].Players, p)
	}
	return nil
}

// statusPredicate translates a derived status into a condition on start_time,
// so filtering never trusts the stored status of a non-cancelled row.
func statusPredicate(status constant.TournamentStatus, now time.Time) (string, []any) {
	liveSince := now.Add(-constant.TournamentDuration)
	cancelled := constant.TournamentStatusCancelled

	switch status {
	case constant.TournamentStatusUpcoming:
		return "t.status <> ? AND t.start_time > ?", []any{cancelled, now}
	case constant.TournamentStatusLive:
		return "t.status <> ? AND t.start_time <= ? AND t.start_time > ?", []any{cancelled, now, liveSince}
	case constant.TournamentStatusCompleted:
		return "t.status <> ? AND t.start_time <= ?", []any{cancelled, liveSince}
	default:
		return "t.status = ?", []any{cancelled}
	}
}
