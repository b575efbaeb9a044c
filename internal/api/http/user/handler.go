package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"wordsolver/internal/api/http/logger"
	apimodel "wordsolver/internal/api/http/utils"
	coreuser "wordsolver/internal/core/user"
	"wordsolver/internal/store/users"
)

func NewRequestHandler(serviceHandler coreuser.UserServiceHandler) *RequestHandler {
	return &RequestHandler{
		serviceHandler: serviceHandler,
	}
}

type RequestHandler struct {
	serviceHandler coreuser.UserServiceHandler
}

// RegisterUser godoc
// @Summary register a user
// @Description create a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User Spec"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users/register [post]
func (h *RequestHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	id, err := h.serviceHandler.Register(r.Context(), coreuser.ServiceRegisterModel{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{UserId: id, Username: req.Username})
	apimodel.RespondSuccess(w, http.StatusOK, "user created", RegisterUserResponse{Id: id})
}

// GetUserList godoc
// @Summary list users
// @Description list all user accounts
// @Tags users
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users [get]
func (h *RequestHandler) GetUserList(w http.ResponseWriter, r *http.Request) {
	list, err := h.serviceHandler.List(r.Context())
	if err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "list failed: "+err.Error(), nil)
		return
	}

	res := make([]UserSummary, 0, len(list))
	for _, u := range list {
		res = append(res, toUserSummary(u))
	}
	apimodel.RespondSuccess(w, http.StatusOK, "user list", GetUserListResponse{Users: res})
}

// GetUserById godoc
// @Summary get a user
// @Description get one user account by id
// @Tags users
// @Param userId path int true "User ID"
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users/{userId} [get]
func (h *RequestHandler) GetUserById(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserId(w, r)
	if !ok {
		return
	}

	u, err := h.serviceHandler.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "user not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{UserId: u.Id, Username: u.Username})
	apimodel.RespondSuccess(w, http.StatusOK, "user detail", GetUserResponse{User: toUserSummary(u)})
}

// UpdateUser godoc
// @Summary update a user
// @Description update username, email and password
// @Tags users
// @Param userId path int true "User ID"
// @Param request body UpdateUserRequest true "User Spec"
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users/{userId} [put]
func (h *RequestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserId(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	err := h.serviceHandler.Update(r.Context(), id, coreuser.ServiceUpdateModel{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "user not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{UserId: id, Username: req.Username})
	apimodel.RespondSuccess(w, http.StatusOK, "user updated", nil)
}

// DeleteUser godoc
// @Summary delete a user
// @Description delete one user account by id
// @Tags users
// @Param userId path int true "User ID"
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users/{userId} [delete]
func (h *RequestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserId(w, r)
	if !ok {
		return
	}

	if err := h.serviceHandler.Delete(r.Context(), id); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "user not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{UserId: id})
	apimodel.RespondSuccess(w, http.StatusOK, "user deleted", nil)
}

// LoginUser godoc
// @Summary login
// @Description validate credentials and issue a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users/login [post]
func (h *RequestHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	token, err := h.serviceHandler.Login(r.Context(), coreuser.ServiceLoginModel{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, coreuser.ErrInvalidCredentials) {
			logger.SetAction(r.Context(), "user.login.failed")
			logger.SetTarget(r.Context(), logger.Target{Username: req.Username})
			apimodel.RespondFail(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{Username: req.Username})
	apimodel.RespondSuccess(w, http.StatusOK, "login ok", LoginResponse{Token: token})
}

// RevokeToken godoc
// @Summary revoke a token
// @Description add a bearer token to the revocation list
// @Tags users
// @Accept json
// @Produce json
// @Param request body RevokeTokenRequest true "Token"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/users/revoke [post]
func (h *RequestHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	var req RevokeTokenRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	if err := h.serviceHandler.Revoke(r.Context(), req.Token); err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	apimodel.RespondSuccess(w, http.StatusOK, "token revoked", nil)
}

func parseUserId(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "userId")
	if raw == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "missing userId", nil)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid userId", nil)
		return 0, false
	}
	return id, true
}

func toUserSummary(u users.UserInfo) UserSummary {
	return UserSummary{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
