package core

import (
	"context"

	"votehall/internal/repository"
	tokenIssuer "votehall/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	CreateSession(ctx context.Context, session repository.Session) error
	GetSession(ctx context.Context, sessionID string) (repository.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	CreateNominee(ctx context.Context, nominee repository.Nominee) error
	GetNominee(ctx context.Context, nomineeID string) (repository.Nominee, error)
	ListNominees(ctx context.Context, category string) ([]repository.Nominee, error)
	ListCategories(ctx context.Context) ([]string, error)
	CastVote(ctx context.Context, vote repository.Vote) error
	DeleteVote(ctx context.Context, voteID string) (repository.Vote, error)
	Tally(ctx context.Context, category string) ([]repository.Tally, error)
	ListUserVotes(ctx context.Context, userID string) ([]repository.VoteDetail, error)
	ListCategoryVotes(ctx context.Context, category string) ([]repository.VoteDetail, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
