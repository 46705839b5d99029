package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"votehall/internal/repository"

	"github.com/google/uuid"
)

// CastVote records actor's vote for a nominee. A second vote in the same
// category fails with ErrAlreadyVoted and changes nothing.
func (e *Election) CastVote(ctx context.Context, actor Principal, nomineeID string) (VoteRecord, error) {
	if err := requireUser(actor); err != nil {
		return VoteRecord{}, err
	}

	nominee, err := e.repo.GetNominee(ctx, nomineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNomineeNotFound) {
			return VoteRecord{}, fmt.Errorf("nominee %q: %w", nomineeID, ErrNotFound)
		}
		return VoteRecord{}, fmt.Errorf("get nominee: %w", err)
	}

	vote := repository.Vote{
		ID:        uuid.NewString(),
		UserID:    actor.UserID,
		Category:  nominee.Category,
		NomineeID: nominee.ID,
		CreatedAt: TimeNow().UTC(),
	}

	err = e.repo.CastVote(ctx, vote)
	switch {
	case errors.Is(err, repository.ErrAlreadyVoted):
		return VoteRecord{}, fmt.Errorf("category %q: %w", nominee.Category, ErrAlreadyVoted)
	case errors.Is(err, repository.ErrNomineeNotFound):
		return VoteRecord{}, fmt.Errorf("nominee %q: %w", nomineeID, ErrNotFound)
	case err != nil:
		return VoteRecord{}, fmt.Errorf("cast vote: %w", err)
	}

	e.logs.Infow("vote cast",
		"voteId", vote.ID,
		"userId", actor.UserID,
		"nomineeId", nominee.ID,
		"category", nominee.Category,
	)

	return VoteRecord{
		ID:          vote.ID,
		UserID:      actor.UserID,
		Username:    actor.Username,
		NomineeID:   nominee.ID,
		NomineeName: nominee.Name,
		Category:    nominee.Category,
		CastAt:      vote.CreatedAt,
	}, nil
}

// Results ranks the nominees of category by vote count. Equal counts share a
// rank and the next rank skips accordingly (1, 2, 2, 4).
func (e *Election) Results(ctx context.Context, category string) (Results, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Results{}, invalid(errors.New("category: cannot be blank"))
	}

	tallies, err := e.repo.Tally(ctx, category)
	if err != nil {
		return Results{}, fmt.Errorf("tally category: %w", err)
	}
	if len(tallies) == 0 {
		return Results{}, fmt.Errorf("category %q: %w", category, ErrNotFound)
	}

	results := Results{
		Category:  category,
		Standings: make([]Standing, 0, len(tallies)),
	}
	for i, t := range tallies {
		rank := i + 1
		if i > 0 && t.Votes == tallies[i-1].Votes {
			rank = results.Standings[i-1].Rank
		}
		results.Standings = append(results.Standings, Standing{
			Rank:        rank,
			NomineeID:   t.NomineeID,
			Name:        t.Name,
			Description: t.Description,
			Votes:       t.Votes,
		})
		results.TotalVotes += t.Votes
	}

	return results, nil
}

// MyVotes lists the votes actor has cast, one per category.
func (e *Election) MyVotes(ctx context.Context, actor Principal) ([]VoteRecord, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	details, err := e.repo.ListUserVotes(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list user votes: %w", err)
	}
	return toVoteRecords(details), nil
}

// CategoryVotes lists every vote cast in category for an administrator.
func (e *Election) CategoryVotes(ctx context.Context, actor Principal, category string) ([]VoteRecord, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, invalid(errors.New("category: cannot be blank"))
	}

	details, err := e.repo.ListCategoryVotes(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list category votes: %w", err)
	}
	return toVoteRecords(details), nil
}

// RemoveVote deletes a vote as administrative cleanup and returns the
// category it was cast in.
func (e *Election) RemoveVote(ctx context.Context, actor Principal, voteID string) (string, error) {
	if err := requireAdmin(actor); err != nil {
		return "", err
	}

	vote, err := e.repo.DeleteVote(ctx, voteID)
	if err != nil {
		if errors.Is(err, repository.ErrVoteNotFound) {
			return "", fmt.Errorf("vote %q: %w", voteID, ErrNotFound)
		}
		return "", fmt.Errorf("delete vote: %w", err)
	}

	e.logs.Warnw("vote removed",
		"voteId", vote.ID,
		"userId", vote.UserID,
		"nomineeId", vote.NomineeID,
		"category", vote.Category,
		"removedBy", actor.UserID,
	)

	return vote.Category, nil
}

func toVoteRecords(details []repository.VoteDetail) []VoteRecord {
	records := make([]VoteRecord, 0, len(details))
	for _, d := range details {
		records = append(records, VoteRecord{
			ID:          d.ID,
			UserID:      d.UserID,
			Username:    d.Username,
			NomineeID:   d.NomineeID,
			NomineeName: d.NomineeName,
			Category:    d.Category,
			CastAt:      d.CreatedAt,
		})
	}
	return records
}
