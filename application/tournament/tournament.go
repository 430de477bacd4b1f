package tournament

import (
	"context"
	stderrors "errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/model"
	identityrepo "github.com/muhammadheryan/esports-tournament/repository/identity"
	tournamentrepo "github.com/muhammadheryan/esports-tournament/repository/tournament"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	validatorx "github.com/muhammadheryan/esports-tournament/utils/validator"
	"go.uber.org/zap"
)

type TournamentApp interface {
	Create(ctx context.Context, req *model.CreateTournamentRequest) (*model.TournamentDetail, error)
	Register(ctx context.Context, tournamentID string, req *model.RegisterRequest) (*model.Admission, error)
	ListPublic(ctx context.Context, req *model.ListTournamentsRequest) (*model.TournamentListResponse, error)
	GetByID(ctx context.Context, id string) (*model.PublicTournament, error)
	ListForUser(ctx context.Context, phone string) ([]model.UserTournament, error)
	SetStatus(ctx context.Context, id string, req *model.UpdateStatusRequest) (*model.TournamentDetail, error)
	ListPlayers(ctx context.Context, id string) (*model.RosterResponse, error)
}

type TournamentAppImpl struct {
	tournamentRepo tournamentrepo.TournamentRepository
	identityRepo   identityrepo.IdentityRepository
	now            func() time.Time
}

type Option func(*TournamentAppImpl)

// WithClock replaces the wall clock used to derive status and stamp registrations.
func WithClock(now func() time.Time) Option {
	return func(s *TournamentAppImpl) {
		s.now = now
	}
}

func NewTournamentApp(tournamentRepo tournamentrepo.TournamentRepository, identityRepo identityrepo.IdentityRepository, opts ...Option) TournamentApp {
	s := &TournamentAppImpl{
		tournamentRepo: tournamentRepo,
		identityRepo:   identityRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TournamentAppImpl) Create(ctx context.Context, req *model.CreateTournamentRequest) (*model.TournamentDetail, error) {
	req.GameType = strings.TrimSpace(req.GameType)
	req.Title = strings.TrimSpace(req.Title)
	req.RoomID = strings.TrimSpace(req.RoomID)
	req.RoomPassword = strings.TrimSpace(req.RoomPassword)

	now := s.now()
	var msgs []string
	if err := validatorx.ValidateStruct(req); err != nil {
		msgs = validatorx.Messages(err)
	}
	if req.StartTime != nil && !req.StartTime.After(now) {
		msgs = append(msgs, "startTime must be in the future")
	}
	if len(msgs) > 0 {
		return nil, errors.NewValidationError(msgs)
	}

	maxPlayers := constant.DefaultMaxPlayers
	if req.MaxPlayers != nil {
		maxPlayers = *req.MaxPlayers
	}

	t := &model.Tournament{
		ID:            uuid.NewString(),
		GameType:      constant.GameType(req.GameType),
		Title:         req.Title,
		StartTime:     req.StartTime.UTC(),
		EntryFee:      *req.EntryFee,
		PerKill:       *req.PerKill,
		WinningAmount: *req.WinningAmount,
		MaxPlayers:    maxPlayers,
		RoomID:        req.RoomID,
		RoomPassword:  req.RoomPassword,
		Status:        constant.TournamentStatusUpcoming,
		CreatedAt:     now,
		Players:       make([]model.Player, 0),
	}
	if err := s.tournamentRepo.Create(ctx, t); err != nil {
		logger.Error("[Create] err tournamentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	detail := t.Detail()
	return &detail, nil
}

// Register admits the caller into a tournament. The checks run against a
// snapshot; the store's conditional append is what actually guarantees
// capacity and uniqueness, and its rejection is re-evaluated once.
func (s *TournamentAppImpl) Register(ctx context.Context, tournamentID string, req *model.RegisterRequest) (*model.Admission, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.GameName = strings.TrimSpace(req.GameName)
	req.UID = strings.TrimSpace(req.UID)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.NewValidationError(validatorx.Messages(err))
	}

	player, err := s.identityRepo.Get(ctx, req.Phone)
	if err != nil {
		logger.Error("[Register] err identityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	switch {
	case player == nil:
		return nil, errors.SetCustomError(constant.ErrIdentityNotFound)
	case !player.ConsentGiven:
		return nil, errors.SetCustomError(constant.ErrConsentRequired)
	case !player.IsActive:
		return nil, errors.SetCustomError(constant.ErrIdentityInactive)
	}

	t, err := s.load(ctx, "Register", tournamentID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		now := s.now()
		if err := admissible(t, req.Phone, now); err != nil {
			return nil, err
		}

		err := s.tournamentRepo.AddPlayer(ctx, &model.AdmitRequest{
			TournamentID: t.ID,
			Player: model.Player{
				TournamentID: t.ID,
				Phone:        req.Phone,
				GameName:     req.GameName,
				UID:          req.UID,
				RegisteredAt: now,
			},
			Now: now,
		})
		switch {
		case err == nil:
			return &model.Admission{
				ID:           t.ID,
				Title:        t.Title,
				RoomID:       t.RoomID,
				RoomPassword: t.RoomPassword,
				StartTime:    t.StartTime,
			}, nil
		case stderrors.Is(err, tournamentrepo.ErrDuplicatePlayer):
			return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
		case stderrors.Is(err, tournamentrepo.ErrSeatUnavailable):
			if attempt > 0 {
				return nil, errors.SetCustomError(constant.ErrTournamentFull)
			}
			if t, err = s.load(ctx, "Register", tournamentID); err != nil {
				return nil, err
			}
		default:
			logger.Error("[Register] err tournamentRepo.AddPlayer", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
}

// admissible reports why t cannot take phone at now, or nil.
func admissible(t *model.Tournament, phone string, now time.Time) error {
	t.Refresh(now)
	switch {
	case t.Status != constant.TournamentStatusUpcoming:
		return errors.SetCustomError(constant.ErrRegistrationClosed)
	case t.IsFull():
		return errors.SetCustomError(constant.ErrTournamentFull)
	case t.HasPlayer(phone):
		return errors.SetCustomError(constant.ErrAlreadyRegistered)
	}
	return nil
}

func (s *TournamentAppImpl) ListPublic(ctx context.Context, req *model.ListTournamentsRequest) (*model.TournamentListResponse, error) {
	var msgs []string
	if req.Status != "" && !constant.TournamentStatus(req.Status).Valid() {
		msgs = append(msgs, "status must be one of [UPCOMING LIVE COMPLETED CANCELLED]")
	}
	if req.GameType != "" && !constant.GameType(req.GameType).Valid() {
		msgs = append(msgs, "gameType must be one of [PUBG FREE_FIRE COD_MOBILE BGMI]")
	}
	if len(msgs) > 0 {
		return nil, errors.NewValidationError(msgs)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	if page > constant.MaxPage {
		page = constant.MaxPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}
	column, ok := constant.TournamentSortColumns[req.SortBy]
	if !ok {
		column = constant.TournamentSortColumns["startTime"]
	}

	now := s.now()
	items, total, err := s.tournamentRepo.List(ctx, &model.TournamentFilter{
		GameType:   constant.GameType(req.GameType),
		Status:     constant.TournamentStatus(req.Status),
		Now:        now,
		SortColumn: column,
		Desc:       strings.EqualFold(req.SortOrder, "desc"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		logger.Error("[ListPublic] err tournamentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tournaments := make([]model.PublicTournament, 0, len(items))
	for i := range items {
		items[i].Refresh(now)
		tournaments = append(tournaments, items[i].Public())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return &model.TournamentListResponse{
		Tournaments: tournaments,
		Pagination: model.Pagination{
			CurrentPage:      page,
			TotalPages:       totalPages,
			TotalTournaments: total,
			HasNext:          page < totalPages,
			HasPrev:          page > 1,
		},
	}, nil
}

func (s *TournamentAppImpl) GetByID(ctx context.Context, id string) (*model.PublicTournament, error) {
	t, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	t.Refresh(s.now())
	public := t.Public()
	return &public, nil
}

func (s *TournamentAppImpl) ListForUser(ctx context.Context, phone string) ([]model.UserTournament, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errors.NewValidationError([]string{"phone is required"})
	}
	if !validatorx.ValidPhone(phone) {
		return nil, errors.NewValidationError([]string{"phone must be a valid phone number"})
	}

	items, err := s.tournamentRepo.ListByPlayer(ctx, phone)
	if err != nil {
		logger.Error("[ListForUser] err tournamentRepo.ListByPlayer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now()
	out := make([]model.UserTournament, 0, len(items))
	for i := range items {
		reg, ok := items[i].Registration(phone)
		if !ok {
			continue
		}
		items[i].Refresh(now)
		out = append(out, model.UserTournament{
			PublicTournament: items[i].Public(),
			UserRegistration: reg,
		})
	}
	return out, nil
}

// SetStatus stores an admin override. Only CANCELLED outlives the next
// derivation; any other value simply reopens a cancelled tournament.
func (s *TournamentAppImpl) SetStatus(ctx context.Context, id string, req *model.UpdateStatusRequest) (*model.TournamentDetail, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.NewValidationError(validatorx.Messages(err))
	}

	t, err := s.load(ctx, "SetStatus", id)
	if err != nil {
		return nil, err
	}

	if err := s.tournamentRepo.UpdateStatus(ctx, t.ID, req.Status); err != nil {
		logger.Error("[SetStatus] err tournamentRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("[SetStatus] tournament status overridden",
		zap.String("tournament_id", t.ID),
		zap.String("from", string(t.Status)),
		zap.String("to", string(req.Status)))

	t.Status = req.Status
	t.Refresh(s.now())
	detail := t.Detail()
	return &detail, nil
}

func (s *TournamentAppImpl) ListPlayers(ctx context.Context, id string) (*model.RosterResponse, error) {
	t, err := s.load(ctx, "ListPlayers", id)
	if err != nil {
		return nil, err
	}

	players := t.Players
	if players == nil {
		players = []model.Player{}
	}
	return &model.RosterResponse{
		Tournament: model.RosterSummary{
			ID:           t.ID,
			Title:        t.Title,
			GameType:     string(t.GameType),
			TotalPlayers: len(players),
			MaxPlayers:   t.MaxPlayers,
		},
		Players: players,
	}, nil
}

// load fetches a tournament by id, mapping a malformed id and a missing row
// to their domain errors.
func (s *TournamentAppImpl) load(ctx context.Context, op, id string) (*model.Tournament, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidID)
	}

	t, err := s.tournamentRepo.GetByID(ctx, parsed.String())
	if err != nil {
		logger.Error("["+op+"] err tournamentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return nil, errors.SetCustomError(constant.ErrTournamentNotFound)
	}
	return t, nil
}
