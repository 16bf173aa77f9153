package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/request"
	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/pkg/jwthelper"
	"github.com/intellcap/association-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	SignupAdmin(ctx context.Context, user domain.User, setupCode string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email string) (domain.User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type AuthUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type AuthHandler struct {
	authService AuthService
	userService AuthUserService
	signingKey  []byte
}

func NewAuthHandler(authService AuthService, userService AuthUserService, signingKey []byte) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		signingKey:  signingKey,
	}
}

// HandleRegister godoc
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body       request.RegisterRequest  true  "registration payload"
// @Success      201      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.authService.Signup(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderAuthResponse(ctx, http.StatusCreated, user)
}

// HandleRegisterAdmin godoc
//
// @Summary      Register an admin account using the setup code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body       request.RegisterAdminRequest  true  "admin registration payload"
// @Success      201      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/auth/register-admin [post]
func (h *AuthHandler) HandleRegisterAdmin(ctx *gin.Context) {
	var req request.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.authService.SignupAdmin(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, req.SetupCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSetupCode):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrInvalidSetupCode.Error()))
		case errors.Is(err, service.ErrUserEmailExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	h.renderAuthResponse(ctx, http.StatusCreated, user)
}

// HandleLogin godoc
//
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body       request.LoginRequest  true  "login payload"
// @Success      200      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("invalid email or password")))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderAuthResponse(ctx, http.StatusOK, user)
}

// HandleGetMe godoc
//
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerToken
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/auth/me [get]
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	user, err := h.userService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", userID))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateProfile godoc
//
// @Summary      Update the authenticated user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        request  body       request.UpdateProfileRequest  true  "profile payload"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/auth/profile [put]
func (h *AuthHandler) HandleUpdateProfile(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.authService.UpdateProfile(ctx.Request.Context(), userID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleChangePassword godoc
//
// @Summary      Change the authenticated user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerToken
// @Param        request  body       request.ChangePasswordRequest  true  "password payload"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/auth/password [put]
func (h *AuthHandler) HandleChangePassword(ctx *gin.Context) {
	userID, errResp := getUserIDFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)

		return
	}

	var req request.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err := h.authService.ChangePassword(ctx.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrWrongPassword))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) renderAuthResponse(ctx *gin.Context, status int, user domain.User) {
	token, err := jwthelper.GenerateToken(h.signingKey, user.ID, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(status, response.AuthResponse{
		Token: token,
		User:  user,
	})
}
