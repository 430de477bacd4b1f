package transport

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/esports-tournament/model"
	utilsContext "github.com/muhammadheryan/esports-tournament/utils/context"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	validatorx "github.com/muhammadheryan/esports-tournament/utils/validator"
	"go.uber.org/zap"
)

const archiveURLHeader = "X-Archive-URL"

// AdminStats handler
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Stats
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/stats [get]
func (s *RestHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.AdminApp.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{"stats": stats})
}

// AdminListUsers handler
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20"
// @Param search query string false "Case-insensitive match on name or phone"
// @Success 200 {object} model.UserListResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/users [get]
func (s *RestHandler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.ListUsers(r.Context(), &model.ListUsersRequest{
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{
		"users":      res.Users,
		"pagination": res.Pagination,
	})
}

// AdminSetUserActive handler
// @Summary Activate or deactivate a user
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param phone path string true "Phone number"
// @Param request body model.SetActiveRequest true "Set Active Request"
// @Success 200 {object} model.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/users/{phone}/active [patch]
func (s *RestHandler) AdminSetUserActive(w http.ResponseWriter, r *http.Request) {
	var req model.SetActiveRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewValidationError(validatorx.Messages(err)))
		return
	}

	phone := mux.Vars(r)["phone"]
	user, err := s.IdentityApp.SetActive(r.Context(), phone, *req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}

	admin, _ := utilsContext.GetAdminSubject(r.Context())
	logger.Info("[AdminSetUserActive] user status changed",
		zap.String("admin", admin),
		zap.String("phone", phone),
		zap.Bool("is_active", *req.IsActive))

	writeSuccess(w, http.StatusOK, "User status updated successfully", envelope{"user": user})
}

// AdminListPlayers handler
// @Summary List registered players with phones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} model.RosterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/tournament/{id}/players [get]
func (s *RestHandler) AdminListPlayers(w http.ResponseWriter, r *http.Request) {
	roster, err := s.TournamentApp.ListPlayers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", envelope{
		"tournament": roster.Tournament,
		"players":    roster.Players,
	})
}

// AdminExportPlayers handler
// @Summary Export players as CSV
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/tournament/{id}/export [get]
func (s *RestHandler) AdminExportPlayers(w http.ResponseWriter, r *http.Request) {
	export, err := s.AdminApp.ExportPlayers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	if export.ArchiveURL != "" {
		w.Header().Set(archiveURLHeader, export.ArchiveURL)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}

// AdminSetStatus handler
// @Summary Override tournament status
// @Description CANCELLED sticks; any other value is re-derived from the start time on the next read.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Param request body model.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} model.TournamentDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/tournament/{id}/status [patch]
func (s *RestHandler) AdminSetStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	tournament, err := s.TournamentApp.SetStatus(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	admin, _ := utilsContext.GetAdminSubject(r.Context())
	logger.Info("[AdminSetStatus] status override",
		zap.String("admin", admin),
		zap.String("tournament_id", tournament.ID),
		zap.String("status", string(req.Status)))

	writeSuccess(w, http.StatusOK, "Tournament status updated successfully", envelope{"tournament": tournament})
}
