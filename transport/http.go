package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/esports-tournament/application/admin"
	identityapp "github.com/muhammadheryan/esports-tournament/application/identity"
	tournamentapp "github.com/muhammadheryan/esports-tournament/application/tournament"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/model"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultListStatus = string(constant.TournamentStatusUpcoming)

type RestHandler struct {
	IdentityApp   identityapp.IdentityApp
	TournamentApp tournamentapp.TournamentApp
	AdminApp      adminapp.AdminApp
	version       string
	now           func() time.Time
}

func NewTransport(cfg *config.Config, identityApp identityapp.IdentityApp, tournamentApp tournamentapp.TournamentApp, adminApp adminapp.AdminApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		IdentityApp:   identityApp,
		TournamentApp: tournamentApp,
		AdminApp:      adminApp,
		version:       cfg.Version,
		now:           func() time.Time { return time.Now().UTC() },
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/otp/send", rh.SendOTP).Methods(http.MethodPost)
	api.HandleFunc("/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/otp/resend", rh.ResendOTP).Methods(http.MethodPost)
	api.HandleFunc("/consent", rh.RecordConsent).Methods(http.MethodPost)
	api.HandleFunc("/consent/profile", rh.GetProfile).Methods(http.MethodGet)

	api.HandleFunc("/tournaments", rh.ListTournaments).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/user/tournaments", rh.ListUserTournaments).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/register/{id}", rh.RegisterPlayer).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}", rh.GetTournament).Methods(http.MethodGet)

	// admin routes
	api.Handle("/tournaments/create",
		AdminMiddleware(adminApp)(http.HandlerFunc(rh.CreateTournament))).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware(adminApp))
	admin.HandleFunc("/stats", rh.AdminStats).Methods(http.MethodGet)
	admin.HandleFunc("/users", rh.AdminListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{phone}/active", rh.AdminSetUserActive).Methods(http.MethodPatch)
	admin.HandleFunc("/tournament/{id}/players", rh.AdminListPlayers).Methods(http.MethodGet)
	admin.HandleFunc("/tournament/{id}/export", rh.AdminExportPlayers).Methods(http.MethodGet)
	admin.HandleFunc("/tournament/{id}/status", rh.AdminSetStatus).Methods(http.MethodPatch)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrRouteNotFound))
	})

	// middleware
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader, "Content-Disposition", archiveURLHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return corsHandler(LoggingMiddleware(RecoverMiddleware(router)))
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"status":    "OK",
		"timestamp": s.now().Format(time.RFC3339Nano),
		"version":   s.version,
	})
}

// SendOTP handler
// @Summary Send OTP
// @Description Issue a one-time code to a phone number, creating the identity on first use
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} model.SendOTPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/otp/send [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.SendOTPRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.IdentityApp.IssueCredential(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "OTP sent successfully", envelope{"requestId": res.RequestID})
}

// VerifyOTP handler
// @Summary Verify OTP
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} model.VerifiedIdentity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.IdentityApp.VerifyCredential(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "OTP verified successfully", envelope{"user": user})
}

// ResendOTP handler
// @Summary Resend OTP
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Resend OTP Request"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/otp/resend [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.SendOTPRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.IdentityApp.ResendCredential(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "OTP resent successfully", nil)
}

// RecordConsent handler
// @Summary Complete profile and give consent
// @Tags Consent
// @Accept json
// @Produce json
// @Param request body model.ConsentRequest true "Consent Request"
// @Success 200 {object} model.ProfileSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/consent [post]
func (s *RestHandler) RecordConsent(w http.ResponseWriter, r *http.Request) {
	var req model.ConsentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.IdentityApp.RecordConsent(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Profile updated successfully", envelope{"user": user})
}

// GetProfile handler
// @Summary Get consent profile
// @Tags Consent
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} model.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/consent/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.IdentityApp.GetProfile(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{"user": user})
}

// CreateTournament handler
// @Summary Create tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTournamentRequest true "Create Tournament Request"
// @Success 201 {object} model.TournamentDetail
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/tournaments/create [post]
func (s *RestHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTournamentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	tournament, err := s.TournamentApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Tournament created successfully", envelope{"tournament": tournament})
}

// ListTournaments handler
// @Summary List tournaments
// @Description Lists tournaments with player phones removed. Status defaults to UPCOMING; pass an empty status for all.
// @Tags Tournaments
// @Produce json
// @Param gameType query string false "PUBG, FREE_FIRE, COD_MOBILE or BGMI"
// @Param status query string false "UPCOMING, LIVE, COMPLETED or CANCELLED"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10, max 100"
// @Param sortBy query string false "startTime, createdAt, entryFee, winningAmount or title"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.TournamentListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/tournaments [get]
func (s *RestHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := defaultListStatus
	if _, ok := q["status"]; ok {
		status = q.Get("status")
	}

	res, err := s.TournamentApp.ListPublic(r.Context(), &model.ListTournamentsRequest{
		GameType:  q.Get("gameType"),
		Status:    status,
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{
		"tournaments": res.Tournaments,
		"pagination":  res.Pagination,
	})
}

// GetTournament handler
// @Summary Get tournament
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} model.PublicTournament
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tournaments/{id} [get]
func (s *RestHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := s.TournamentApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{"tournament": tournament})
}

// RegisterPlayer handler
// @Summary Register for a tournament
// @Description Admits a consenting player while seats remain; the room credentials are returned only here.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.Admission
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/tournaments/register/{id} [post]
func (s *RestHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	admission, err := s.TournamentApp.Register(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Registration successful", envelope{"tournament": admission})
}

// ListUserTournaments handler
// @Summary List a player's tournaments
// @Tags Tournaments
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {array} model.UserTournament
// @Failure 400 {object} ErrorResponse
// @Router /api/tournaments/user/tournaments [get]
func (s *RestHandler) ListUserTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := s.TournamentApp.ListForUser(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{"tournaments": tournaments})
}
