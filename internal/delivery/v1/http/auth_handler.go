package http

import (
	"net/http"

	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register
//
//	@Summary		Регистрация пользователя
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerBody	true	"Данные пользователя"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &usecase.RegisterReq{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
	})
}

// login
//
//	@Summary		Вход по email и паролю
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginBody	true	"Учётные данные"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"token": res.Token,
	})
}
