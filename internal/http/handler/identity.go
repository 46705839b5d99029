package handler

import (
	"errors"
	"net/http"
	"net/url"

	"votehall/internal/core"
	"votehall/internal/http/handler/middleware"
	"votehall/internal/http/payload"
	"votehall/internal/http/view"
)

func (h *VoteHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if middleware.PrincipalFrom(r.Context()).Authenticated() {
		redirect(w, r, "/nominees", nil)
		return
	}

	h.render(w, r, http.StatusOK, view.PageRegister, view.Page{
		Title: "Register",
		Form:  payload.RegisterRequest{},
	}, RegisterForm)
}

func (h *VoteHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var form payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.rejectRegistration(w, r, form, err)
		return
	}

	if err := h.election.Register(r.Context(), form.ToRegistration()); err != nil {
		if !errors.Is(err, core.ErrValidation) {
			h.fail(w, r, err, Register)
			return
		}
		h.rejectRegistration(w, r, form, err)
		return
	}

	h.logs.Infow("user registered",
		"username", form.Username,
		"handler", Register,
		"request_id", middleware.RequestIDFrom(r.Context()))

	redirect(w, r, "/login", url.Values{"notice": {"registered"}})
}

func (h *VoteHandler) rejectRegistration(w http.ResponseWriter, r *http.Request, form payload.RegisterRequest, err error) {
	h.logs.Infow("registration rejected",
		"error", err,
		"handler", Register,
		"request_id", middleware.RequestIDFrom(r.Context()))

	message, fields := formErrors(err)
	form.Password, form.PasswordConfirm = "", ""
	h.render(w, r, http.StatusBadRequest, view.PageRegister, view.Page{
		Title:  "Register",
		Error:  message,
		Fields: fields,
		Form:   form,
	}, Register)
}

func (h *VoteHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.PrincipalFrom(r.Context()).Authenticated() {
		redirect(w, r, "/nominees", nil)
		return
	}

	h.render(w, r, http.StatusOK, view.PageLogin, view.Page{
		Title: "Log in",
		Form:  payload.LoginRequest{},
	}, LoginForm)
}

func (h *VoteHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var form payload.LoginRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &form)
	if err != nil {
		message, fields := formErrors(err)
		form.Password = ""
		h.render(w, r, http.StatusBadRequest, view.PageLogin, view.Page{
			Title:  "Log in",
			Error:  message,
			Fields: fields,
			Form:   form,
		}, Login)
		return
	}

	session, err := h.election.Login(r.Context(), form.ToCredentials())
	if err != nil {
		if !errors.Is(err, core.ErrAuthentication) {
			h.fail(w, r, err, Login)
			return
		}

		h.logs.Infow("login failed",
			"username", form.Username,
			"handler", Login,
			"request_id", requestId)
		form.Password = ""
		h.render(w, r, http.StatusUnauthorized, view.PageLogin, view.Page{
			Title: "Log in",
			Error: "Invalid username or password.",
			Form:  form,
		}, Login)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logs.Infow("user logged in",
		"userId", session.Principal.UserID,
		"handler", Login,
		"request_id", requestId)

	redirect(w, r, "/nominees", nil)
}

func (h *VoteHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		token = cookie.Value
	}

	if err := h.election.Logout(r.Context(), token); err != nil {
		h.fail(w, r, err, Logout)
		return
	}

	middleware.ClearSessionCookie(w, h.secureCookie)
	redirect(w, r, "/login", url.Values{"notice": {"logged_out"}})
}
