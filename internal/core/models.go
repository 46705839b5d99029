package core

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r Registration) normalize() Registration {
	return Registration{
		Username: strings.TrimSpace(r.Username),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

// Validate enforces the account rules. Passwords may not exceed 72 bytes,
// the most bcrypt will hash.
func (r Registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(3, 150),
			validation.Match(usernamePattern).Error("may contain only letters, digits and @.+-_"),
		),
		validation.Field(&r.Email,
			validation.Required,
			validation.Length(3, 254),
			is.EmailFormat,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 72),
			validation.Match(hasLetter).Error("must contain a letter"),
			validation.Match(hasDigit).Error("must contain a digit"),
			validation.By(fitsBcrypt),
			validation.By(differentFrom(r.Username)),
		),
	)
}

func differentFrom(username string) validation.RuleFunc {
	return func(value any) error {
		password, _ := value.(string)
		if username != "" && strings.EqualFold(password, username) {
			return errors.New("must differ from the username")
		}
		return nil
	}
}

func fitsBcrypt(value any) error {
	password, _ := value.(string)
	if len(password) > 72 {
		return errors.New("is too long")
	}
	return nil
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

// Principal is the authenticated user behind a request.
type Principal struct {
	UserID    string
	Username  string
	SessionID string
	IsAdmin   bool
}

func (p Principal) Authenticated() bool {
	return p.UserID != ""
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}

type NomineeDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (d NomineeDraft) normalize() NomineeDraft {
	return NomineeDraft{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Category:    strings.TrimSpace(d.Category),
	}
}

func (d NomineeDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.Category, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.Description, validation.Length(0, 2000)),
	)
}

type Nominee struct {
	ID          string
	Name        string
	Description string
	Category    string
	VoteCount   int64
	CreatedAt   time.Time
}

type VoteRecord struct {
	ID          string
	UserID      string
	Username    string
	NomineeID   string
	NomineeName string
	Category    string
	CastAt      time.Time
}

type Standing struct {
	Rank        int
	NomineeID   string
	Name        string
	Description string
	Votes       int64
}

type Results struct {
	Category   string
	Standings  []Standing
	TotalVotes int64
}
