package admin_test

import (
	"context"
	"encoding/csv"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	appadmin "github.com/muhammadheryan/esports-tournament/application/admin"
	apptournament "github.com/muhammadheryan/esports-tournament/application/tournament"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/constant"
	identitymocks "github.com/muhammadheryan/esports-tournament/mocks/repository/identity"
	tournamentmocks "github.com/muhammadheryan/esports-tournament/mocks/repository/tournament"
	storagemocks "github.com/muhammadheryan/esports-tournament/mocks/thirdparty/storage"
	"github.com/muhammadheryan/esports-tournament/model"
	"github.com/muhammadheryan/esports-tournament/repository/memory"
	cerr "github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
}

func TestAdminApp_Stats(t *testing.T) {
	type fields struct {
		tournamentRepo *tournamentmocks.TournamentRepository
		identityRepo   *identitymocks.IdentityRepository
	}
	counts := &model.StatusCounts{Upcoming: 2, Live: 1, Completed: 3, Cancelled: 1}
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.Stats
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: average is rounded",
			mockCall: func(f fields) {
				f.tournamentRepo.On("Totals", mock.Anything).
					Return(&model.TournamentTotals{Tournaments: 7, Registrations: 25, Earnings: 1250}, nil).Once()
				f.identityRepo.On("Count", mock.Anything).Return(int64(40), nil).Once()
				f.tournamentRepo.On("CountByStatus", mock.Anything, fixedNow).Return(counts, nil).Once()
			},
			want: &model.Stats{
				TotalTournaments:            7,
				TotalUsers:                  40,
				TotalEarnings:               1250,
				TotalRegistrations:          25,
				AveragePlayersPerTournament: 4,
				TournamentsByStatus:         *counts,
			},
		},
		{
			name: "success: no tournaments yields zero average",
			mockCall: func(f fields) {
				f.tournamentRepo.On("Totals", mock.Anything).Return(&model.TournamentTotals{}, nil).Once()
				f.identityRepo.On("Count", mock.Anything).Return(int64(3), nil).Once()
				f.tournamentRepo.On("CountByStatus", mock.Anything, fixedNow).Return(&model.StatusCounts{}, nil).Once()
			},
			want: &model.Stats{TotalUsers: 3},
		},
		{
			name: "error: identity count fails",
			mockCall: func(f fields) {
				f.tournamentRepo.On("Totals", mock.Anything).Return(&model.TournamentTotals{}, nil).Maybe()
				f.identityRepo.On("Count", mock.Anything).Return(int64(0), errors.New("db down")).Once()
				f.tournamentRepo.On("CountByStatus", mock.Anything, fixedNow).Return(&model.StatusCounts{}, nil).Maybe()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				tournamentRepo: tournamentmocks.NewTournamentRepository(t),
				identityRepo:   identitymocks.NewIdentityRepository(t),
			}
			tt.mockCall(f)

			app := appadmin.NewAdminApp(&config.Config{}, f.tournamentRepo, f.identityRepo, nil,
				appadmin.WithClock(func() time.Time { return fixedNow }))
			got, err := app.Stats(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminApp_ListUsers(t *testing.T) {
	type args struct {
		req *model.ListUsersRequest
	}
	name := "Asha"
	tests := []struct {
		name     string
		args     args
		mockCall func(m *identitymocks.IdentityRepository)
		want     *model.UserListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: defaults to first page of twenty",
			args: args{req: &model.ListUsersRequest{}},
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("List", mock.Anything, &model.IdentityFilter{Limit: 20, Offset: 0}).
					Return([]model.IdentityEntity{{Phone: "919876543210", Name: &name, ConsentGiven: true, IsActive: true, CreatedAt: fixedNow}}, int64(41), nil).
					Once()
			},
			want: &model.UserListResponse{
				Users: []model.Profile{{Phone: "919876543210", Name: "Asha", ConsentGiven: true, IsActive: true, CreatedAt: fixedNow}},
				Pagination: model.UserPagination{
					CurrentPage: 1,
					TotalPages:  3,
					TotalUsers:  41,
				},
			},
		},
		{
			name: "success: search is trimmed and limit capped",
			args: args{req: &model.ListUsersRequest{Page: 2, Limit: 500, Search: "  asha "}},
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("List", mock.Anything, &model.IdentityFilter{Search: "asha", Limit: 100, Offset: 100}).
					Return([]model.IdentityEntity{}, int64(0), nil).Once()
			},
			want: &model.UserListResponse{
				Users:      []model.Profile{},
				Pagination: model.UserPagination{CurrentPage: 2},
			},
		},
		{
			name: "success: huge page is clamped before the offset is computed",
			args: args{req: &model.ListUsersRequest{Page: math.MaxInt}},
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("List", mock.Anything, &model.IdentityFilter{Limit: 20, Offset: (constant.MaxPage - 1) * 20}).
					Return([]model.IdentityEntity{}, int64(3), nil).Once()
			},
			want: &model.UserListResponse{
				Users:      []model.Profile{},
				Pagination: model.UserPagination{CurrentPage: constant.MaxPage, TotalPages: 1, TotalUsers: 3},
			},
		},
		{
			name: "error: repository failure",
			args: args{req: &model.ListUsersRequest{Page: 1, Limit: 5}},
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("boom")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identityRepo := identitymocks.NewIdentityRepository(t)
			tt.mockCall(identityRepo)

			app := appadmin.NewAdminApp(&config.Config{}, tournamentmocks.NewTournamentRepository(t), identityRepo, nil)
			got, err := app.ListUsers(context.Background(), tt.args.req)
			if tt.wantErr {
				require.Error(t, err)
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type exportFixture struct {
	identities  *memory.IdentityStore
	tournaments *memory.TournamentStore
	tournament  apptournament.TournamentApp
	id          string
}

func newExportFixture(t *testing.T, title string, phones ...string) *exportFixture {
	t.Helper()
	ctx := context.Background()
	f := &exportFixture{
		identities:  memory.NewIdentityStore(),
		tournaments: memory.NewTournamentStore(),
	}
	f.tournament = apptournament.NewTournamentApp(f.tournaments, f.identities,
		apptournament.WithClock(func() time.Time { return fixedNow }))

	start := fixedNow.Add(2 * time.Hour)
	fee, perKill, prize, maxPlayers := 10.0, 2.0, 500.0, 10
	created, err := f.tournament.Create(ctx, &model.CreateTournamentRequest{
		GameType:      "FREE_FIRE",
		Title:         title,
		StartTime:     &start,
		EntryFee:      &fee,
		PerKill:       &perKill,
		WinningAmount: &prize,
		MaxPlayers:    &maxPlayers,
		RoomID:        "R1",
		RoomPassword:  "P1",
	})
	require.NoError(t, err)
	f.id = created.ID

	for i, phone := range phones {
		require.NoError(t, f.identities.UpsertCredential(ctx, &model.CredentialUpdate{
			Phone: phone, CodeHash: "x", ExpiresAt: fixedNow.Add(time.Minute),
		}))
		require.NoError(t, f.identities.UpdateProfile(ctx, &model.ProfileUpdate{
			Phone: phone, Name: "Player", Age: 20, ConsentGiven: true,
		}))
		_, err := f.tournament.Register(ctx, f.id, &model.RegisterRequest{
			Phone: phone, GameName: "gamer, " + string(rune('A'+i)), UID: "uid-" + phone,
		})
		require.NoError(t, err)
	}
	return f
}

func TestAdminApp_ExportPlayers(t *testing.T) {
	f := newExportFixture(t, "Free Fire: Clash Squad 3", "919000000001", "919000000002")

	app := appadmin.NewAdminApp(&config.Config{}, f.tournaments, f.identities, f.tournament,
		appadmin.WithClock(func() time.Time { return fixedNow }))
	export, err := app.ExportPlayers(context.Background(), f.id)
	require.NoError(t, err)

	assert.Equal(t, "free_fire_clash_squad_3_players.csv", export.Filename)
	assert.Empty(t, export.ArchiveURL)

	rows, err := csv.NewReader(strings.NewReader(string(export.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Phone", "Game Name", "UID", "Registered At"}, rows[0])
	assert.Equal(t, []string{"919000000001", "gamer, A", "uid-919000000001", "2025-03-01T10:00:00.000Z"}, rows[1])
	assert.Equal(t, "gamer, B", rows[2][1])
}

func TestAdminApp_ExportPlayers_EmptyRoster(t *testing.T) {
	f := newExportFixture(t, "!!!")

	app := appadmin.NewAdminApp(&config.Config{}, f.tournaments, f.identities, f.tournament)
	export, err := app.ExportPlayers(context.Background(), f.id)
	require.NoError(t, err)

	assert.Equal(t, "tournament_players.csv", export.Filename)
	assert.Equal(t, "Phone,Game Name,UID,Registered At\n", string(export.Content))
}

func TestAdminApp_ExportPlayers_Archive(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		err     error
		wantURL string
	}{
		{name: "archived", url: "https://cdn.example.com/exports/x.csv", wantURL: "https://cdn.example.com/exports/x.csv"},
		{name: "archive failure still exports", err: errors.New("bucket unavailable")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newExportFixture(t, "Night Cup", "919000000001")
			archiver := storagemocks.NewArchiver(t)
			archiver.On("Archive", mock.Anything,
				"exports/"+f.id+"/20250301T100000Z_night_cup_players.csv",
				"text/csv",
				mock.AnythingOfType("[]uint8"),
			).Return(tt.url, tt.err).Once()

			app := appadmin.NewAdminApp(&config.Config{}, f.tournaments, f.identities, f.tournament,
				appadmin.WithClock(func() time.Time { return fixedNow }),
				appadmin.WithArchiver(archiver))
			export, err := app.ExportPlayers(context.Background(), f.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, export.ArchiveURL)
			assert.NotEmpty(t, export.Content)
		})
	}
}

func TestAdminApp_ExportPlayers_UnknownTournament(t *testing.T) {
	f := newExportFixture(t, "Night Cup")
	app := appadmin.NewAdminApp(&config.Config{}, f.tournaments, f.identities, f.tournament)

	_, err := app.ExportPlayers(context.Background(), "not-a-uuid")
	assertErrType(t, err, constant.ErrInvalidID)

	_, err = app.ExportPlayers(context.Background(), "00000000-0000-4000-8000-000000000000")
	assertErrType(t, err, constant.ErrTournamentNotFound)
}

func TestAdminApp_Token(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{AdminJWTSecret: "s3cret", AdminTokenTTL: time.Hour}}
	now := fixedNow
	app := appadmin.NewAdminApp(cfg, nil, nil, nil, appadmin.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	token, err := app.IssueToken(ctx, "ops@example.com")
	require.NoError(t, err)

	sub, err := app.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", sub)

	other := appadmin.NewAdminApp(&config.Config{Auth: config.AuthConfig{AdminJWTSecret: "different", AdminTokenTTL: time.Hour}},
		nil, nil, nil, appadmin.WithClock(func() time.Time { return fixedNow }))
	_, err = other.ValidateToken(ctx, token)
	assert.Error(t, err, "signature from another secret")

	now = fixedNow.Add(2 * time.Hour)
	_, err = app.ValidateToken(ctx, token)
	assert.Error(t, err, "expired token")

	unconfigured := appadmin.NewAdminApp(&config.Config{}, nil, nil, nil)
	_, err = unconfigured.IssueToken(ctx, "x")
	assert.Error(t, err)
	_, err = unconfigured.ValidateToken(ctx, token)
	assert.Error(t, err)
}
