package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appadmin "github.com/muhammadheryan/esports-tournament/application/admin"
	appidentity "github.com/muhammadheryan/esports-tournament/application/identity"
	apptournament "github.com/muhammadheryan/esports-tournament/application/tournament"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	smsmocks "github.com/muhammadheryan/esports-tournament/mocks/thirdparty/sms"
	"github.com/muhammadheryan/esports-tournament/repository/memory"
	redisrepo "github.com/muhammadheryan/esports-tournament/repository/redis"
	"github.com/muhammadheryan/esports-tournament/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminSecret = "test-admin-secret"
	playerPhone = "919876543210"
)

type testServer struct {
	handler http.Handler
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Version: "1.0.0",
		Auth:    config.AuthConfig{AdminJWTSecret: adminSecret, AdminTokenTTL: time.Hour},
		OTP: config.OTPConfig{
			TTL:               5 * time.Minute,
			ResendCooldown:    30 * time.Second,
			MaxVerifyAttempts: 5,
			BcryptCost:        4,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	sender := smsmocks.NewSender(t)
	sender.On("Send", mock.Anything, mock.Anything).Return("req-1", nil).Maybe()

	identities := memory.NewIdentityStore()
	tournaments := memory.NewTournamentStore()

	identityApp := appidentity.NewIdentityApp(cfg, identities, redisrepo.NewRepository(), sender,
		appidentity.WithCodeGenerator(func() (string, error) { return "123456", nil }))
	tournamentApp := apptournament.NewTournamentApp(tournaments, identities)
	adminApp := appadmin.NewAdminApp(cfg, tournaments, identities, tournamentApp)

	token, err := adminApp.IssueToken(context.Background(), "ops")
	require.NoError(t, err)

	return &testServer{
		handler: transport.NewTransport(cfg, identityApp, tournamentApp, adminApp),
		token:   token,
	}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// onboard takes phone through OTP verification and consent.
func (s *testServer) onboard(t *testing.T, phone string) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/otp/send", `{"phone":"`+phone+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/otp/verify", `{"phone":"`+phone+`","otp":"123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/consent", `{"phone":"`+phone+`","name":"Ravi","age":21,"consent":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (s *testServer) createTournament(t *testing.T, maxPlayers int) string {
	t.Helper()
	start := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
	body := `{"gameType":"BGMI","title":"Weekend Cup","startTime":"` + start + `","entryFee":30,"perKill":5,` +
		`"winningAmount":900,"maxPlayers":` + jsonInt(maxPlayers) + `,"roomId":"ROOM7","roomPassword":"pw7"}`
	rec := s.do(t, http.MethodPost, "/api/tournaments/create", body, s.token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	out := decode(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Tournament created successfully", out["message"])
	return out["tournament"].(map[string]interface{})["id"].(string)
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestTransport_Health(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode(t, rec)
	assert.Equal(t, "OK", out["status"])
	assert.Equal(t, "1.0.0", out["version"])
	assert.NotEmpty(t, out["timestamp"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestTransport_RouteNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/nope", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	out := decode(t, rec)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Route not found", out["message"])
}

func TestTransport_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantErrors int
	}{
		{name: "malformed body", path: "/api/otp/send", body: `{"phone":`, wantStatus: http.StatusBadRequest, wantErrors: 1},
		{name: "bad phone", path: "/api/otp/send", body: `{"phone":"abc"}`, wantStatus: http.StatusBadRequest, wantErrors: 1},
		{name: "consent missing every field", path: "/api/consent", body: `{}`, wantStatus: http.StatusBadRequest, wantErrors: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, tt.path, tt.body, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			out := decode(t, rec)
			assert.Equal(t, false, out["success"])
			assert.NotEmpty(t, out["code"])
			assert.Equal(t, "Validation failed", out["message"])
			assert.Len(t, out["errors"], tt.wantErrors)
		})
	}
}

func TestTransport_AdminAuth(t *testing.T) {
	s := newTestServer(t)

	userToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "player",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(adminSecret))
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "non-admin role", token: userToken, wantStatus: http.StatusForbidden},
		{name: "admin", token: s.token, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/api/admin/stats", "", tt.token)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	rec := s.do(t, http.MethodPost, "/api/tournaments/create", `{}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTransport_RegistrationFlow(t *testing.T) {
	s := newTestServer(t)
	id := s.createTournament(t, 1)
	s.onboard(t, playerPhone)

	// status defaults to UPCOMING; the new tournament is listed without phones
	rec := s.do(t, http.MethodGet, "/api/tournaments", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	require.Len(t, out["tournaments"], 1)
	assert.Equal(t, float64(1), out["pagination"].(map[string]interface{})["totalTournaments"])

	rec = s.do(t, http.MethodPost, "/api/tournaments/register/"+id,
		`{"phone":"`+playerPhone+`","gameName":"Ravi","uid":"77"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out = decode(t, rec)
	assert.Equal(t, "Registration successful", out["message"])
	admission := out["tournament"].(map[string]interface{})
	assert.Equal(t, "ROOM7", admission["roomId"])
	assert.Equal(t, "pw7", admission["roomPassword"])

	// the same player again
	rec = s.do(t, http.MethodPost, "/api/tournaments/register/"+id,
		`{"phone":"`+playerPhone+`","gameName":"Ravi","uid":"77"}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You are already registered for this tournament", decode(t, rec)["message"])

	// a second player finds the only seat taken
	other := "919811111111"
	s.onboard(t, other)
	rec = s.do(t, http.MethodPost, "/api/tournaments/register/"+id,
		`{"phone":"`+other+`","gameName":"Kiran","uid":"78"}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Tournament is full", decode(t, rec)["message"])

	// public detail hides phones and the room password
	rec = s.do(t, http.MethodGet, "/api/tournaments/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), playerPhone)
	assert.NotContains(t, rec.Body.String(), "pw7")

	rec = s.do(t, http.MethodGet, "/api/tournaments/user/tournaments?phone="+playerPhone, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode(t, rec)["tournaments"], 1)

	// admins see phones
	rec = s.do(t, http.MethodGet, "/api/admin/tournament/"+id+"/players", "", s.token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), playerPhone)

	rec = s.do(t, http.MethodGet, "/api/admin/tournament/"+id+"/export", "", s.token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=weekend_cup_players.csv`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Phone,Game Name,UID,Registered At\n"+playerPhone+",Ravi,77,"))

	rec = s.do(t, http.MethodPatch, "/api/admin/tournament/"+id+"/status", `{"status":"CANCELLED"}`, s.token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// cancelled tournaments drop out of the default listing but show with an empty status
	rec = s.do(t, http.MethodGet, "/api/tournaments", "", "")
	assert.Len(t, decode(t, rec)["tournaments"], 0)
	rec = s.do(t, http.MethodGet, "/api/tournaments?status=", "", "")
	assert.Len(t, decode(t, rec)["tournaments"], 1)

	rec = s.do(t, http.MethodGet, "/api/admin/stats", "", s.token)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["totalRegistrations"])
	assert.Equal(t, float64(2), stats["totalUsers"])
}

func TestTransport_AdminSetUserActive(t *testing.T) {
	s := newTestServer(t)
	s.onboard(t, playerPhone)

	rec := s.do(t, http.MethodPatch, "/api/admin/users/"+playerPhone+"/active", `{}`, s.token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/admin/users/"+playerPhone+"/active", `{"isActive":false}`, s.token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, decode(t, rec)["user"].(map[string]interface{})["isActive"])

	id := s.createTournament(t, 5)
	rec = s.do(t, http.MethodPost, "/api/tournaments/register/"+id,
		`{"phone":"`+playerPhone+`","gameName":"Ravi","uid":"77"}`, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Account is deactivated", decode(t, rec)["message"])

	rec = s.do(t, http.MethodGet, "/api/admin/users?search=9876", "", s.token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["users"], 1)
}

func TestRecoverMiddleware(t *testing.T) {
	h := transport.RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "Internal server error", out["message"])
	assert.NotContains(t, rec.Body.String(), "boom")
}
