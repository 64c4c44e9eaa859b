package httpapi

import (
	"net/http"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
)

type signupCodeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) requestSignupCode(w http.ResponseWriter, r *http.Request) {
	var req signupCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.identity.RequestSignupCode(r.Context(), req.Email); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

type verifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *Handler) verifySignupCode(w http.ResponseWriter, r *http.Request) {
	var req verifyCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.identity.VerifySignupCode(r.Context(), req.Email, req.Code); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	user, err := h.identity.SignUp(r.Context(), req.Email, req.Password, req.Code, req.Name, req.Phone)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	token, err := h.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.SignOut(r.Context(), middlewares.BearerToken(r)); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}
