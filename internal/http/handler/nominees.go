package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"votehall/internal/core"
	"votehall/internal/http/handler/middleware"
	"votehall/internal/http/payload"
	"votehall/internal/http/view"
)

func (h *VoteHandler) HandleListNominees(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	nominees, err := h.election.ListNominees(r.Context(), category)
	if err != nil {
		h.fail(w, r, err, ListNominees)
		return
	}

	categories, err := h.election.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err, ListNominees)
		return
	}

	title := "Nominees"
	if category != "" {
		title = "Nominees: " + category
	}

	h.render(w, r, http.StatusOK, view.PageNominees, view.Page{
		Title: title,
		Data: view.NomineesData{
			Category:   category,
			Categories: categories,
			Nominees:   nominees,
		},
	}, ListNominees)
}

func (h *VoteHandler) HandleShowNominee(w http.ResponseWriter, r *http.Request) {
	nominee, err := h.election.GetNominee(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err, ShowNominee)
		return
	}

	h.render(w, r, http.StatusOK, view.PageNominee, view.Page{
		Title: nominee.Name,
		Data:  nominee,
	}, ShowNominee)
}

func (h *VoteHandler) HandleNewNominee(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(middleware.PrincipalFrom(r.Context())); err != nil {
		h.fail(w, r, err, NewNominee)
		return
	}

	categories, err := h.election.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err, NewNominee)
		return
	}

	h.render(w, r, http.StatusOK, view.PageNomineeForm, view.Page{
		Title: "Add nominee",
		Form:  payload.NomineeRequest{},
		Data:  categories,
	}, NewNominee)
}

func (h *VoteHandler) HandleCreateNominee(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	requestId := middleware.RequestIDFrom(r.Context())

	if err := requireAdmin(principal); err != nil {
		h.fail(w, r, err, CreateNominee)
		return
	}

	var form payload.NomineeRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &form)
	if err == nil {
		var nominee core.Nominee
		nominee, err = h.election.CreateNominee(r.Context(), principal, form.ToDraft())
		if err == nil {
			h.logs.Infow("nominee created",
				"nomineeId", nominee.ID,
				"handler", CreateNominee,
				"request_id", requestId)
			redirect(w, r, "/nominees/"+url.PathEscape(nominee.ID), url.Values{"notice": {"created"}})
			return
		}
		if !errors.Is(err, core.ErrValidation) {
			h.fail(w, r, err, CreateNominee)
			return
		}
	}

	h.logs.Infow("nominee rejected",
		"error", err,
		"handler", CreateNominee,
		"request_id", requestId)

	categories, listErr := h.election.ListCategories(r.Context())
	if listErr != nil {
		h.fail(w, r, listErr, CreateNominee)
		return
	}

	message, fields := formErrors(err)
	h.render(w, r, http.StatusBadRequest, view.PageNomineeForm, view.Page{
		Title:  "Add nominee",
		Error:  message,
		Fields: fields,
		Form:   form,
		Data:   categories,
	}, CreateNominee)
}

func requireAdmin(principal core.Principal) error {
	if !principal.Authenticated() {
		return core.ErrAuthentication
	}
	if !principal.IsAdmin {
		return core.ErrAuthorization
	}
	return nil
}
