package core

import (
	"time"

	"go.uber.org/zap"
)

var TimeNow = time.Now

// Election serves the identity, nominee and voting operations of the site.
type Election struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	sessionTTL time.Duration
}

// NewElection is a constructor function for the Election type.
func NewElection(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, sessionTTL time.Duration) *Election {
	return &Election{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		sessionTTL: sessionTTL,
	}
}
