package handler

import (
	"context"
	"io"
	"net/http"

	"votehall/internal/core"
	"votehall/internal/http/view"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name VotingService . VotingService
type VotingService interface {
	Register(ctx context.Context, reg core.Registration) error
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
	Logout(ctx context.Context, token string) error
	ListNominees(ctx context.Context, category string) ([]core.Nominee, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetNominee(ctx context.Context, nomineeID string) (core.Nominee, error)
	CreateNominee(ctx context.Context, actor core.Principal, draft core.NomineeDraft) (core.Nominee, error)
	CastVote(ctx context.Context, actor core.Principal, nomineeID string) (core.VoteRecord, error)
	Results(ctx context.Context, category string) (core.Results, error)
	MyVotes(ctx context.Context, actor core.Principal) ([]core.VoteRecord, error)
	CategoryVotes(ctx context.Context, actor core.Principal, category string) ([]core.VoteRecord, error)
	RemoveVote(ctx context.Context, actor core.Principal, voteID string) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object any) error
}

type Renderer interface {
	Render(w io.Writer, page string, data view.Page) error
}
