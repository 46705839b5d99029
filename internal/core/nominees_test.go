package core_test

import (
	"context"
	"errors"
	"time"

	"votehall/internal/core"
	"votehall/internal/core/fake"
	"votehall/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Nominees", func() {
	var (
		fakeRepo *fake.Repository
		ctx      context.Context
		now      time.Time
		admin    core.Principal
		voter    core.Principal

		election *core.Election

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		ctx = context.Background()

		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { core.TimeNow = time.Now })

		admin = core.Principal{UserID: "admin-1", Username: "admin", SessionID: "s-1", IsAdmin: true}
		voter = core.Principal{UserID: "user-1", Username: "alice", SessionID: "s-2"}

		election = core.NewElection(zap.NewNop().Sugar(), fakeRepo, new(fake.JWTIssuer), time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("CreateNominee", func() {
		var (
			actor   core.Principal
			draft   core.NomineeDraft
			nominee core.Nominee
			err     error
		)

		BeforeEach(func() {
			actor = admin
			draft = core.NomineeDraft{
				Name:        " Cats ",
				Description: "Independent and curious",
				Category:    "Pets",
			}
		})

		JustBeforeEach(func() {
			nominee, err = election.CreateNominee(ctx, actor, draft)
		})

		When("an administrator submits a valid nominee", func() {
			It("should store it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateNomineeCallCount()).To(Equal(1))

				_, stored := fakeRepo.CreateNomineeArgsForCall(0)
				Expect(stored.Name).To(Equal("Cats"))
				Expect(stored.Category).To(Equal("Pets"))
				Expect(stored.CreatedBy).To(Equal("admin-1"))
				Expect(stored.CreatedAt).To(Equal(now))
				Expect(stored.VoteCount).To(BeZero())

				Expect(nominee.ID).To(Equal(stored.ID))
				Expect(nominee.Name).To(Equal("Cats"))
			})
		})

		When("the name is missing", func() {
			BeforeEach(func() {
				draft.Name = "   "
			})

			It("should return a validation error and persist nothing", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateNomineeCallCount()).To(Equal(0))
			})
		})

		When("the category is missing", func() {
			BeforeEach(func() {
				draft.Category = ""
			})

			It("should return a validation error and persist nothing", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateNomineeCallCount()).To(Equal(0))
			})
		})

		When("the caller is not an administrator", func() {
			BeforeEach(func() {
				actor = voter
			})

			It("should return an authorization error", func() {
				Expect(err).To(MatchError(core.ErrAuthorization))
				Expect(fakeRepo.CreateNomineeCallCount()).To(Equal(0))
			})
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				actor = core.Principal{}
			})

			It("should return an authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthentication))
				Expect(fakeRepo.CreateNomineeCallCount()).To(Equal(0))
			})
		})

		When("the name already exists in the category", func() {
			BeforeEach(func() {
				fakeRepo.CreateNomineeReturns(repository.ErrNomineeExists)
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrNomineeExists))
				Expect(err).To(MatchError(core.ErrValidation))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateNomineeReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListNominees", func() {
		It("should map the stored nominees", func() {
			fakeRepo.ListNomineesReturns([]repository.Nominee{
				{ID: "n-1", Name: "Cats", Category: "Pets", VoteCount: 3, CreatedAt: now},
				{ID: "n-2", Name: "Dogs", Category: "Pets", VoteCount: 1, CreatedAt: now},
			}, nil)

			nominees, err := election.ListNominees(ctx, "Pets")
			Expect(err).NotTo(HaveOccurred())
			Expect(nominees).To(Equal([]core.Nominee{
				{ID: "n-1", Name: "Cats", Category: "Pets", VoteCount: 3, CreatedAt: now},
				{ID: "n-2", Name: "Dogs", Category: "Pets", VoteCount: 1, CreatedAt: now},
			}))

			_, category := fakeRepo.ListNomineesArgsForCall(0)
			Expect(category).To(Equal("Pets"))
		})

		It("should return repository errors", func() {
			fakeRepo.ListNomineesReturns(nil, fakeErr)

			_, err := election.ListNominees(ctx, "")
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("ListCategories", func() {
		It("should return the stored categories", func() {
			fakeRepo.ListCategoriesReturns([]string{"Food", "Pets"}, nil)

			categories, err := election.ListCategories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(Equal([]string{"Food", "Pets"}))
		})
	})

	Describe("GetNominee", func() {
		It("should return not found for unknown nominees", func() {
			fakeRepo.GetNomineeReturns(repository.Nominee{}, repository.ErrNomineeNotFound)

			_, err := election.GetNominee(ctx, "missing")
			Expect(err).To(MatchError(core.ErrNotFound))
		})

		It("should return the nominee", func() {
			fakeRepo.GetNomineeReturns(repository.Nominee{ID: "n-1", Name: "Cats", Category: "Pets"}, nil)

			nominee, err := election.GetNominee(ctx, "n-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(nominee.Name).To(Equal("Cats"))
		})
	})
})
