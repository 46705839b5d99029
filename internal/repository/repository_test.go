package repository_test

import (
	"context"
	"errors"

	"votehall/internal/db"
	"votehall/internal/repository"
	"votehall/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VotingRepository", func() {
	var (
		repo        *repository.VotingRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewVotingRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeStorage.TransactionStub = func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}
	})

	Describe("MigrateAndSeed", func() {
		var (
			err    error
			admins []repository.User
		)

		BeforeEach(func() {
			admins = []repository.User{{ID: uuid.NewString(), Username: "root", IsAdmin: true}}
		})

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, admins)
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed admins", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(4))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Session{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Nominee{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.Vote{}))

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				Expect(records).To(Equal(&admins))
			})
		})

		When("there are no admins to seed", func() {
			BeforeEach(func() {
				admins = nil
			})

			It("should only migrate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("seed database")))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			err  error
			user repository.User
		)

		BeforeEach(func() {
			user = repository.User{ID: uuid.NewString(), Username: "alice", Email: "alice@example.com"}
			fakeStorage.GetOneByReturns(db.ErrNotFound)
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("username and email are free", func() {
			It("should create the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(2))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
				_, column, value, _ = fakeStorage.GetOneByArgsForCall(1)
				Expect(column).To(Equal("email"))
				Expect(value).To(Equal("alice@example.com"))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturnsOnCall(0, nil)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturnsOnCall(0, db.ErrNotFound)
				fakeStorage.GetOneByReturnsOnCall(1, nil)
			})

			It("should return ErrEmailTaken", func() {
				Expect(err).To(MatchError(repository.ErrEmailTaken))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})

		When("a concurrent registration wins the insert", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return ErrUserExists", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					u := entity.(*repository.User)
					u.ID = "user-1"
					u.Username = "alice"
					return nil
				}
			})

			It("should return it", func() {
				user, err := repo.GetUserByUsername(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := repo.GetUserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("sessions", func() {
		It("should map a missing session to ErrSessionNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetSession(ctx, "nope")
			Expect(err).To(MatchError(repository.ErrSessionNotFound))
		})

		It("should delete a session by id", func() {
			Expect(repo.DeleteSession(ctx, "sess-1")).To(Succeed())
			_, model, column, value := fakeStorage.DeleteByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Session{}))
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("sess-1"))
		})

		It("should report deleting an unknown session", func() {
			fakeStorage.DeleteByReturns(db.ErrNotFound)
			Expect(repo.DeleteSession(ctx, "sess-1")).To(MatchError(repository.ErrSessionNotFound))
		})
	})

	Describe("CreateNominee", func() {
		It("should map a duplicate to ErrNomineeExists", func() {
			fakeStorage.CreateReturns(db.ErrDuplicate)
			err := repo.CreateNominee(ctx, repository.Nominee{Name: "Cats", Category: "Pets"})
			Expect(err).To(MatchError(repository.ErrNomineeExists))
		})
	})

	Describe("ListNominees", func() {
		It("should filter by category", func() {
			_, err := repo.ListNominees(ctx, "Pets")
			Expect(err).NotTo(HaveOccurred())
			_, _, order, where, args := fakeStorage.FindArgsForCall(0)
			Expect(order).To(Equal("category ASC, created_at ASC, id ASC"))
			Expect(where).To(Equal("category = ?"))
			Expect(args).To(Equal([]any{"Pets"}))
		})

		It("should list everything without a category", func() {
			nominees, err := repo.ListNominees(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(nominees).To(BeEmpty())
			_, _, _, where, args := fakeStorage.FindArgsForCall(0)
			Expect(where).To(BeEmpty())
			Expect(args).To(BeEmpty())
		})

		It("should wrap storage errors", func() {
			fakeStorage.FindReturns(fakeErr)
			_, err := repo.ListNominees(ctx, "Pets")
			Expect(err).To(MatchError(ContainSubstring("list nominees")))
		})
	})

	Describe("CastVote", func() {
		var (
			err  error
			vote repository.Vote
		)

		BeforeEach(func() {
			vote = repository.Vote{ID: "vote-1", UserID: "user-1", Category: "Pets", NomineeID: "nominee-1"}
		})

		JustBeforeEach(func() {
			err = repo.CastVote(ctx, vote)
		})

		When("the vote is new", func() {
			It("should insert it and increment the tally in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(Equal(&vote))

				Expect(fakeStorage.IncrementCallCount()).To(Equal(1))
				_, model, id, column, delta := fakeStorage.IncrementArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Nominee{}))
				Expect(id).To(Equal("nominee-1"))
				Expect(column).To(Equal("vote_count"))
				Expect(delta).To(Equal(1))
			})
		})

		When("the user already voted in the category", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return ErrAlreadyVoted without touching the tally", func() {
				Expect(err).To(MatchError(repository.ErrAlreadyVoted))
				Expect(fakeStorage.IncrementCallCount()).To(Equal(0))
			})
		})

		When("the nominee row is gone", func() {
			BeforeEach(func() {
				fakeStorage.IncrementReturns(db.ErrNotFound)
			})

			It("should return ErrNomineeNotFound", func() {
				Expect(err).To(MatchError(repository.ErrNomineeNotFound))
			})
		})

		When("the transaction cannot start", func() {
			BeforeEach(func() {
				fakeStorage.TransactionStub = nil
				fakeStorage.TransactionReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteVote", func() {
		When("the vote exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					v := entity.(*repository.Vote)
					v.ID = "vote-1"
					v.NomineeID = "nominee-1"
					return nil
				}
			})

			It("should delete it and decrement the tally", func() {
				vote, err := repo.DeleteVote(ctx, "vote-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(vote.NomineeID).To(Equal("nominee-1"))

				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
				_, _, id, _, delta := fakeStorage.IncrementArgsForCall(0)
				Expect(id).To(Equal("nominee-1"))
				Expect(delta).To(Equal(-1))
			})
		})

		When("the vote does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrVoteNotFound", func() {
				_, err := repo.DeleteVote(ctx, "vote-404")
				Expect(err).To(MatchError(repository.ErrVoteNotFound))
				Expect(fakeStorage.DeleteByCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Tally", func() {
		It("should query by category", func() {
			_, err := repo.Tally(ctx, "Pets")
			Expect(err).NotTo(HaveOccurred())
			_, dest, query, args := fakeStorage.SelectArgsForCall(0)
			Expect(dest).To(BeAssignableToTypeOf(&[]repository.Tally{}))
			Expect(query).To(ContainSubstring("COUNT(v.id) AS votes"))
			Expect(args).To(Equal([]any{"Pets"}))
		})

		It("should wrap storage errors", func() {
			fakeStorage.SelectReturns(fakeErr)
			_, err := repo.Tally(ctx, "Pets")
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
