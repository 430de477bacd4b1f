package admin

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strings"
	"time"

	"github.com/gosimple/slug"
	apptournament "github.com/muhammadheryan/esports-tournament/application/tournament"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/model"
	identityrepo "github.com/muhammadheryan/esports-tournament/repository/identity"
	tournamentrepo "github.com/muhammadheryan/esports-tournament/repository/tournament"
	"github.com/muhammadheryan/esports-tournament/thirdparty/storage"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const registeredAtLayout = "2006-01-02T15:04:05.000Z07:00"

var exportHeader = []string{"Phone", "Game Name", "UID", "Registered At"}

type AdminApp interface {
	Stats(ctx context.Context) (*model.Stats, error)
	ListUsers(ctx context.Context, req *model.ListUsersRequest) (*model.UserListResponse, error)
	ExportPlayers(ctx context.Context, tournamentID string) (*model.PlayerExport, error)
	IssueToken(ctx context.Context, subject string) (string, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

type AdminAppImpl struct {
	config         *config.Config
	tournamentRepo tournamentrepo.TournamentRepository
	identityRepo   identityrepo.IdentityRepository
	tournamentApp  apptournament.TournamentApp
	archiver       storage.Archiver
	now            func() time.Time
}

type Option func(*AdminAppImpl)

func WithClock(now func() time.Time) Option {
	return func(s *AdminAppImpl) {
		s.now = now
	}
}

// WithArchiver uploads every export to object storage as well.
func WithArchiver(archiver storage.Archiver) Option {
	return func(s *AdminAppImpl) {
		s.archiver = archiver
	}
}

func NewAdminApp(config *config.Config, tournamentRepo tournamentrepo.TournamentRepository, identityRepo identityrepo.IdentityRepository, tournamentApp apptournament.TournamentApp, opts ...Option) AdminApp {
	s := &AdminAppImpl{
		config:         config,
		tournamentRepo: tournamentRepo,
		identityRepo:   identityRepo,
		tournamentApp:  tournamentApp,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AdminAppImpl) Stats(ctx context.Context) (*model.Stats, error) {
	var (
		totals *model.TournamentTotals
		users  int64
		counts *model.StatusCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.tournamentRepo.Totals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.identityRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.tournamentRepo.CountByStatus(gctx, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("[Stats] err loading dashboard figures", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var average int64
	if totals.Tournaments > 0 {
		average = int64(math.Round(float64(totals.Registrations) / float64(totals.Tournaments)))
	}

	return &model.Stats{
		TotalTournaments:            totals.Tournaments,
		TotalUsers:                  users,
		TotalEarnings:               totals.Earnings,
		TotalRegistrations:          totals.Registrations,
		AveragePlayersPerTournament: average,
		TournamentsByStatus:         *counts,
	}, nil
}

func (s *AdminAppImpl) ListUsers(ctx context.Context, req *model.ListUsersRequest) (*model.UserListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	if page > constant.MaxPage {
		page = constant.MaxPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = constant.DefaultUserPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}

	items, total, err := s.identityRepo.List(ctx, &model.IdentityFilter{
		Search: strings.TrimSpace(req.Search),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error("[ListUsers] err identityRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	users := make([]model.Profile, 0, len(items))
	for i := range items {
		users = append(users, items[i].Profile())
	}
	return &model.UserListResponse{
		Users: users,
		Pagination: model.UserPagination{
			CurrentPage: page,
			TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
			TotalUsers:  total,
		},
	}, nil
}

// ExportPlayers renders the roster as CSV. Archiving is best effort: a failed
// upload is logged and the export is still returned.
func (s *AdminAppImpl) ExportPlayers(ctx context.Context, tournamentID string) (*model.PlayerExport, error) {
	roster, err := s.tournamentApp.ListPlayers(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := make([][]string, 0, len(roster.Players)+1)
	rows = append(rows, exportHeader)
	for _, p := range roster.Players {
		rows = append(rows, []string{p.Phone, p.GameName, p.UID, p.RegisteredAt.UTC().Format(registeredAtLayout)})
	}
	if err := w.WriteAll(rows); err != nil {
		logger.Error("[ExportPlayers] err csv.WriteAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	export := &model.PlayerExport{
		Filename: ExportFilename(roster.Tournament.Title),
		Content:  buf.Bytes(),
	}

	if s.archiver != nil {
		key := "exports/" + roster.Tournament.ID + "/" + s.now().Format("20060102T150405Z") + "_" + export.Filename
		url, err := s.archiver.Archive(ctx, key, "text/csv", export.Content)
		if err != nil {
			logger.Warn("[ExportPlayers] err archiver.Archive",
				zap.String("tournament_id", roster.Tournament.ID),
				zap.String("error", err.Error()))
		} else {
			export.ArchiveURL = url
		}
	}
	return export, nil
}

// ExportFilename turns a tournament title into "<slug>_players.csv".
func ExportFilename(title string) string {
	name := strings.ReplaceAll(slug.Make(title), "-", "_")
	if name == "" {
		name = "tournament"
	}
	return name + "_players.csv"
}
