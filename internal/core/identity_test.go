package core_test

import (
	"context"
	"errors"
	"time"

	"votehall/internal/core"
	"votehall/internal/core/fake"
	"votehall/internal/repository"
	tokenIssuer "votehall/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/jellydator/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Identity", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		now        time.Time

		election *core.Election

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { core.TimeNow = time.Now })

		election = core.NewElection(fakeLogger, fakeRepo, fakeJWT, 2*time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			reg core.Registration
			err error
		)

		BeforeEach(func() {
			reg = core.Registration{
				Username: "  alice ",
				Email:    "Alice@Example.com",
				Password: "wonderland1",
			}
		})

		JustBeforeEach(func() {
			err = election.Register(ctx, reg)
		})

		When("the registration is valid", func() {
			It("should store the user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))

				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Email).To(Equal("alice@example.com"))
				Expect(user.IsAdmin).To(BeFalse())
				Expect(user.CreatedAt).To(Equal(now))
				Expect(user.PasswordHash).NotTo(Equal(reg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reg.Password))).To(Succeed())
			})
		})

		When("the password has no digit", func() {
			BeforeEach(func() {
				reg.Password = "wonderland"
			})

			It("should return a validation error naming the field", func() {
				Expect(err).To(MatchError(core.ErrValidation))

				var fieldErrs validation.Errors
				Expect(errors.As(err, &fieldErrs)).To(BeTrue())
				Expect(fieldErrs).To(HaveKey("password"))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				reg.Password = "abc1"
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the password equals the username", func() {
			BeforeEach(func() {
				reg.Username = "alice2024"
				reg.Password = "ALICE2024"
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(err.Error()).To(ContainSubstring("must differ from the username"))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				reg.Email = "not-an-email"
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the username contains spaces", func() {
			BeforeEach(func() {
				reg.Username = "alice liddell"
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUsernameTaken)
			})

			It("should return a username taken validation error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(err).To(MatchError(core.ErrValidation))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrEmailTaken)
			})

			It("should return an email taken validation error", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
				Expect(err).To(MatchError(core.ErrValidation))
			})
		})

		When("a concurrent registration wins the insert", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUserExists)
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrAccountExists))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrValidation))
			})
		})
	})

	Describe("Login", func() {
		var (
			creds    core.Credentials
			session  core.Session
			err      error
			user     repository.User
			genToken *jwt.Token
		)

		BeforeEach(func() {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("wonderland1"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())

			user = repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: string(hash),
				IsAdmin:      true,
			}
			creds = core.Credentials{
				Username: "alice",
				Password: "wonderland1",
			}
			genToken = jwt.New(jwt.SigningMethodHS512)

			fakeRepo.GetUserByUsernameReturns(user, nil)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = election.Login(ctx, creds)
		})

		When("the credentials match", func() {
			It("should open a session and return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.ExpiresAt).To(Equal(now.Add(2 * time.Hour)))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal("alice"))

				Expect(fakeRepo.CreateSessionCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreateSessionArgsForCall(0)
				Expect(stored.UserID).To(Equal(user.ID))
				Expect(stored.ExpiresAt).To(Equal(now.Add(2 * time.Hour)))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "alice",
					Subject:    user.ID,
					SessionID:  stored.ID,
					Expiration: 2 * time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))

				Expect(session.Principal).To(Equal(core.Principal{
					UserID:    user.ID,
					Username:  "alice",
					SessionID: stored.ID,
					IsAdmin:   true,
				}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return invalid credentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(err).To(MatchError(core.ErrAuthentication))
				Expect(fakeRepo.CreateSessionCallCount()).To(Equal(0))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				creds.Password = "wonderland2"
			})

			It("should return the same error as an unknown user", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeRepo.CreateSessionCallCount()).To(Equal(0))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				creds.Password = ""
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(0))
			})
		})

		When("the session cannot be stored", func() {
			BeforeEach(func() {
				fakeRepo.CreateSessionReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeJWT.SignCallCount()).To(Equal(0))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Logout", func() {
		var (
			token string
			err   error
		)

		BeforeEach(func() {
			token = "signed.token"
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1", "jti": "session-1"}, nil)
		})

		JustBeforeEach(func() {
			err = election.Logout(ctx, token)
		})

		When("the token is valid", func() {
			It("should delete the session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(1))
				_, sessionID := fakeRepo.DeleteSessionArgsForCall(0)
				Expect(sessionID).To(Equal("session-1"))
			})
		})

		When("the session is already gone", func() {
			BeforeEach(func() {
				fakeRepo.DeleteSessionReturns(repository.ErrSessionNotFound)
			})

			It("should not fail", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("there is no token", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should do nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
				Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(0))
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should not fail", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(0))
			})
		})

		When("deleting fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteSessionReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			token     string
			principal core.Principal
			err       error
		)

		BeforeEach(func() {
			token = "signed.token"
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1", "jti": "session-1"}, nil)
			fakeRepo.GetSessionReturns(repository.Session{
				ID:        "session-1",
				UserID:    "user-1",
				ExpiresAt: now.Add(time.Hour),
			}, nil)
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:       "user-1",
				Username: "alice",
			}, nil)
		})

		JustBeforeEach(func() {
			principal, err = election.Authenticate(ctx, token)
		})

		When("the session is live", func() {
			It("should resolve the principal", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(principal).To(Equal(core.Principal{
					UserID:    "user-1",
					Username:  "alice",
					SessionID: "session-1",
				}))
				Expect(principal.Authenticated()).To(BeTrue())

				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))
				_, sessionID := fakeRepo.GetSessionArgsForCall(0)
				Expect(sessionID).To(Equal("session-1"))
			})
		})

		When("there is no token", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
				Expect(principal.Authenticated()).To(BeFalse())
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(fakeRepo.GetSessionCallCount()).To(Equal(0))
			})
		})

		When("the token has no session id", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
			})
		})

		When("the session was ended by logout", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{}, repository.ErrSessionNotFound)
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
			})
		})

		When("the session has expired", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{
					ID:        "session-1",
					UserID:    "user-1",
					ExpiresAt: now.Add(-time.Second),
				}, nil)
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(0))
			})
		})

		When("the session belongs to another user", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{
					ID:        "session-1",
					UserID:    "user-2",
					ExpiresAt: now.Add(time.Hour),
				}, nil)
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
			})
		})

		When("the user was removed", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
			})
		})

		When("the session lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{}, fakeErr)
			})

			It("should return the error without calling it an authentication failure", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrAuthentication))
			})
		})
	})

	Describe("NewAccount", func() {
		It("should build an administrator account", func() {
			user, err := core.NewAccount(core.Registration{
				Username: "admin",
				Email:    "admin@example.com",
				Password: "changeme123",
			}, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsAdmin).To(BeTrue())
			Expect(user.Username).To(Equal("admin"))
		})

		It("should reject an invalid account", func() {
			_, err := core.NewAccount(core.Registration{Username: "admin"}, true)
			Expect(err).To(MatchError(core.ErrValidation))
		})
	})
})
