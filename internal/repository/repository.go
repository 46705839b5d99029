package repository

import (
	"context"
	"errors"
	"fmt"

	"votehall/internal/db"
)

var (
	ErrUserNotFound    error = errors.New("user not found")
	ErrUsernameTaken   error = errors.New("username already taken")
	ErrEmailTaken      error = errors.New("email already registered")
	ErrUserExists      error = errors.New("username or email already registered")
	ErrSessionNotFound error = errors.New("session not found")
	ErrNomineeNotFound error = errors.New("nominee not found")
	ErrNomineeExists   error = errors.New("nominee already exists in category")
	ErrVoteNotFound    error = errors.New("vote not found")
	ErrAlreadyVoted    error = errors.New("vote already cast in category")
)

const (
	tallyQuery = `SELECT n.id AS nominee_id, n.name, n.description, n.category, n.created_at, COUNT(v.id) AS votes
FROM nominees n
LEFT JOIN votes v ON v.nominee_id = n.id
WHERE n.category = ?
GROUP BY n.id, n.name, n.description, n.category, n.created_at
ORDER BY votes DESC, n.created_at ASC, n.id ASC`

	voteDetailQuery = `SELECT v.id, v.user_id, u.username, v.nominee_id, n.name AS nominee_name, v.category, v.created_at
FROM votes v
JOIN nominees n ON n.id = v.nominee_id
JOIN users u ON u.id = v.user_id
WHERE %s
ORDER BY %s`

	categoriesQuery = `SELECT DISTINCT category FROM nominees ORDER BY category`
)

type VotingRepository struct {
	db Storage
}

func NewVotingRepository(db Storage) *VotingRepository {
	return &VotingRepository{
		db: db,
	}
}

// MigrateAndSeed creates the tables and seeds admins into an empty users table.
func (r *VotingRepository) MigrateAndSeed(ctx context.Context, admins []User) error {
	err := r.db.MigrateModels(&User{}, &Session{}, &Nominee{}, &Vote{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(admins) == 0 {
		return nil
	}

	err = r.db.Seed(ctx, &admins)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *VotingRepository) CreateUser(ctx context.Context, user User) error {
	if _, err := r.getUserBy(ctx, "username", user.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	if _, err := r.getUserBy(ctx, "email", user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	if err := r.db.Create(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *VotingRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *VotingRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	return r.getUserBy(ctx, "id", userID)
}

func (r *VotingRepository) getUserBy(ctx context.Context, column string, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *VotingRepository) CreateSession(ctx context.Context, session Session) error {
	if err := r.db.Create(ctx, &session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *VotingRepository) GetSession(ctx context.Context, sessionID string) (Session, error) {
	var session Session

	err := r.db.GetOneBy(ctx, "id", sessionID, &session)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

func (r *VotingRepository) DeleteSession(ctx context.Context, sessionID string) error {
	err := r.db.DeleteBy(ctx, &Session{}, "id", sessionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *VotingRepository) CreateNominee(ctx context.Context, nominee Nominee) error {
	if err := r.db.Create(ctx, &nominee); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrNomineeExists
		}
		return fmt.Errorf("create nominee: %w", err)
	}
	return nil
}

func (r *VotingRepository) GetNominee(ctx context.Context, nomineeID string) (Nominee, error) {
	var nominee Nominee

	err := r.db.GetOneBy(ctx, "id", nomineeID, &nominee)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Nominee{}, ErrNomineeNotFound
		}
		return Nominee{}, fmt.Errorf("get nominee: %w", err)
	}

	return nominee, nil
}

// ListNominees returns the nominees of category, or all nominees when category is empty.
func (r *VotingRepository) ListNominees(ctx context.Context, category string) ([]Nominee, error) {
	nominees := []Nominee{}
	order := "category ASC, created_at ASC, id ASC"

	var err error
	if category == "" {
		err = r.db.Find(ctx, &nominees, order, "")
	} else {
		err = r.db.Find(ctx, &nominees, order, "category = ?", category)
	}
	if err != nil {
		return nil, fmt.Errorf("list nominees: %w", err)
	}

	return nominees, nil
}

func (r *VotingRepository) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := r.db.Select(ctx, &categories, categoriesQuery); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CastVote inserts the vote and bumps the nominee's running count in one
// transaction. The unique index on (user_id, category) rejects a second vote.
func (r *VotingRepository) CastVote(ctx context.Context, vote Vote) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		if err := r.db.Create(ctx, &vote); err != nil {
			if errors.Is(err, db.ErrDuplicate) {
				return ErrAlreadyVoted
			}
			return fmt.Errorf("create vote: %w", err)
		}

		if err := r.db.Increment(ctx, &Nominee{}, vote.NomineeID, "vote_count", 1); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrNomineeNotFound
			}
			return fmt.Errorf("increment vote count: %w", err)
		}

		return nil
	})
}

// DeleteVote removes a vote and takes it off the nominee's running count.
func (r *VotingRepository) DeleteVote(ctx context.Context, voteID string) (Vote, error) {
	var vote Vote

	err := r.db.Transaction(ctx, func(ctx context.Context) error {
		if err := r.db.GetOneBy(ctx, "id", voteID, &vote); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrVoteNotFound
			}
			return fmt.Errorf("get vote: %w", err)
		}

		if err := r.db.DeleteBy(ctx, &Vote{}, "id", voteID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrVoteNotFound
			}
			return fmt.Errorf("delete vote: %w", err)
		}

		if err := r.db.Increment(ctx, &Nominee{}, vote.NomineeID, "vote_count", -1); err != nil && !errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("decrement vote count: %w", err)
		}

		return nil
	})
	if err != nil {
		return Vote{}, err
	}

	return vote, nil
}

// Tally counts the votes of every nominee in category, highest first.
// Equal counts keep nominee creation order.
func (r *VotingRepository) Tally(ctx context.Context, category string) ([]Tally, error) {
	tallies := []Tally{}
	if err := r.db.Select(ctx, &tallies, tallyQuery, category); err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	return tallies, nil
}

func (r *VotingRepository) ListUserVotes(ctx context.Context, userID string) ([]VoteDetail, error) {
	votes := []VoteDetail{}
	query := fmt.Sprintf(voteDetailQuery, "v.user_id = ?", "v.category ASC")
	if err := r.db.Select(ctx, &votes, query, userID); err != nil {
		return nil, fmt.Errorf("list user votes: %w", err)
	}
	return votes, nil
}

func (r *VotingRepository) ListCategoryVotes(ctx context.Context, category string) ([]VoteDetail, error) {
	votes := []VoteDetail{}
	query := fmt.Sprintf(voteDetailQuery, "v.category = ?", "v.created_at ASC, v.id ASC")
	if err := r.db.Select(ctx, &votes, query, category); err != nil {
		return nil, fmt.Errorf("list category votes: %w", err)
	}
	return votes, nil
}
