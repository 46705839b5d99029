package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"votehall/internal/core"
	"votehall/internal/http/handler/middleware"
	"votehall/internal/http/view"

	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

var (
	Home          = "GET /{$}"
	NotFound      = "/"
	Health        = "GET /healthz"
	RegisterForm  = "GET /register"
	Register      = "POST /register"
	LoginForm     = "GET /login"
	Login         = "POST /login"
	Logout        = "POST /logout"
	ListNominees  = "GET /nominees"
	NewNominee    = "GET /nominees/new"
	CreateNominee = "POST /nominees"
	ShowNominee   = "GET /nominees/{id}"
	CastVote      = "POST /votes"
	MyVotes       = "GET /votes/mine"
	Results       = "GET /results"
	AdminVotes    = "GET /admin/votes"
	RemoveVote    = "POST /admin/votes/{id}/delete"
)

type VoteHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	election         VotingService
	views            Renderer
	secureCookie     bool
}

func NewVoteHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, votingService VotingService, views Renderer, secureCookie bool) *VoteHandler {
	return &VoteHandler{
		logs:             logger,
		requestValidator: requestValidator,
		election:         votingService,
		views:            views,
		secureCookie:     secureCookie,
	}
}

func (h *VoteHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/nominees", http.StatusSeeOther)
}

func (h *VoteHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, core.ErrNotFound, NotFound)
}

func (h *VoteHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// render executes a page into a buffer first so a template error still
// produces a clean 500.
func (h *VoteHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.Page, handler string) {
	data.Principal = middleware.PrincipalFrom(r.Context())
	if data.Notice == "" {
		data.Notice = notices[r.URL.Query().Get("notice")]
	}

	var buf bytes.Buffer
	if err := h.views.Render(&buf, page, data); err != nil {
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", page,
			"handler", handler,
			"request_id", middleware.RequestIDFrom(r.Context()))
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail renders the error page for err with the status its kind maps to.
func (h *VoteHandler) fail(w http.ResponseWriter, r *http.Request, err error, handler string) {
	status, message := statusFor(err)
	requestId := middleware.RequestIDFrom(r.Context())

	if status == http.StatusInternalServerError {
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handler,
			"request_id", requestId)
	} else {
		h.logs.Infow("request rejected",
			"error", err,
			"status", status,
			"handler", handler,
			"request_id", requestId)
	}

	h.render(w, r, status, view.PageError, view.Page{
		Title: http.StatusText(status),
		Error: message,
	}, handler)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrValidation):
		return http.StatusBadRequest, "The request could not be processed. Please check your input."
	case errors.Is(err, core.ErrAuthentication):
		return http.StatusUnauthorized, "You need to be logged in to do that."
	case errors.Is(err, core.ErrAuthorization):
		return http.StatusForbidden, "You are not allowed to do that."
	case errors.Is(err, core.ErrAlreadyVoted):
		return http.StatusConflict, "You have already voted in this category."
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, "The page you are looking for does not exist."
	default:
		return http.StatusInternalServerError, oopsErr
	}
}

// formErrors splits a validation failure into a form level message and
// per-field messages.
func formErrors(err error) (string, map[string]string) {
	fields := map[string]string{}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for field, fieldErr := range fieldErrs {
			fields[field] = fieldErr.Error()
		}
		return "Please correct the errors below.", fields
	}

	switch {
	case errors.Is(err, core.ErrUsernameTaken):
		fields["username"] = "is already taken"
	case errors.Is(err, core.ErrEmailTaken):
		fields["email"] = "is already registered"
	case errors.Is(err, core.ErrNomineeExists):
		fields["name"] = "already exists in this category"
	case errors.Is(err, core.ErrAccountExists):
		return "That username or email is already registered.", fields
	default:
		return "The form could not be read.", fields
	}

	return "Please correct the errors below.", fields
}

func redirect(w http.ResponseWriter, r *http.Request, path string, query url.Values) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
