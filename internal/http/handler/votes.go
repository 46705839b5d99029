package handler

import (
	"net/http"
	"net/url"
	"strings"

	"votehall/internal/core"
	"votehall/internal/http/handler/middleware"
	"votehall/internal/http/payload"
	"votehall/internal/http/view"
)

func (h *VoteHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	requestId := middleware.RequestIDFrom(r.Context())

	if !principal.Authenticated() {
		h.fail(w, r, core.ErrAuthentication, CastVote)
		return
	}

	var form payload.VoteRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.logs.Infow("invalid vote submission",
			"error", err,
			"handler", CastVote,
			"request_id", requestId)
		h.fail(w, r, core.ErrValidation, CastVote)
		return
	}

	vote, err := h.election.CastVote(r.Context(), principal, form.NomineeID)
	if err != nil {
		h.fail(w, r, err, CastVote)
		return
	}

	h.logs.Infow("vote cast",
		"voteId", vote.ID,
		"category", vote.Category,
		"handler", CastVote,
		"request_id", requestId)

	redirect(w, r, "/results", url.Values{
		"category": {vote.Category},
		"notice":   {"voted"},
	})
}

func (h *VoteHandler) HandleMyVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.election.MyVotes(r.Context(), middleware.PrincipalFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err, MyVotes)
		return
	}

	h.render(w, r, http.StatusOK, view.PageMyVotes, view.Page{
		Title: "My votes",
		Data:  votes,
	}, MyVotes)
}

// HandleResults shows the category index, or the ranking of one category
// when the category parameter is set.
func (h *VoteHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	if category == "" {
		categories, err := h.election.ListCategories(r.Context())
		if err != nil {
			h.fail(w, r, err, Results)
			return
		}

		h.render(w, r, http.StatusOK, view.PageCategories, view.Page{
			Title: "Results",
			Data:  categories,
		}, Results)
		return
	}

	results, err := h.election.Results(r.Context(), category)
	if err != nil {
		h.fail(w, r, err, Results)
		return
	}

	h.render(w, r, http.StatusOK, view.PageResults, view.Page{
		Title: "Results: " + results.Category,
		Data:  results,
	}, Results)
}

func (h *VoteHandler) HandleAdminVotes(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if err := requireAdmin(principal); err != nil {
		h.fail(w, r, err, AdminVotes)
		return
	}

	categories, err := h.election.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err, AdminVotes)
		return
	}

	data := view.AdminVotesData{
		Category:   strings.TrimSpace(r.URL.Query().Get("category")),
		Categories: categories,
	}
	if data.Category != "" {
		data.Votes, err = h.election.CategoryVotes(r.Context(), principal, data.Category)
		if err != nil {
			h.fail(w, r, err, AdminVotes)
			return
		}
	}

	h.render(w, r, http.StatusOK, view.PageAdminVotes, view.Page{
		Title: "Manage votes",
		Data:  data,
	}, AdminVotes)
}

func (h *VoteHandler) HandleRemoveVote(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	voteID := r.PathValue("id")

	category, err := h.election.RemoveVote(r.Context(), principal, voteID)
	if err != nil {
		h.fail(w, r, err, RemoveVote)
		return
	}

	h.logs.Infow("vote removed",
		"voteId", voteID,
		"category", category,
		"handler", RemoveVote,
		"request_id", middleware.RequestIDFrom(r.Context()))

	redirect(w, r, "/admin/votes", url.Values{
		"category": {category},
		"notice":   {"removed"},
	})
}
