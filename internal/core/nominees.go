package core

import (
	"context"
	"errors"
	"fmt"

	"votehall/internal/repository"

	"github.com/google/uuid"
)

// ListNominees returns the nominees of category ordered by creation, or every
// nominee grouped by category when category is empty.
func (e *Election) ListNominees(ctx context.Context, category string) ([]Nominee, error) {
	records, err := e.repo.ListNominees(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list nominees: %w", err)
	}

	nominees := make([]Nominee, 0, len(records))
	for _, rec := range records {
		nominees = append(nominees, toNominee(rec))
	}
	return nominees, nil
}

func (e *Election) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := e.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (e *Election) GetNominee(ctx context.Context, nomineeID string) (Nominee, error) {
	rec, err := e.repo.GetNominee(ctx, nomineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNomineeNotFound) {
			return Nominee{}, fmt.Errorf("nominee %q: %w", nomineeID, ErrNotFound)
		}
		return Nominee{}, fmt.Errorf("get nominee: %w", err)
	}
	return toNominee(rec), nil
}

// CreateNominee adds a nominee on behalf of an administrator.
func (e *Election) CreateNominee(ctx context.Context, actor Principal, draft NomineeDraft) (Nominee, error) {
	if err := requireAdmin(actor); err != nil {
		return Nominee{}, err
	}

	draft = draft.normalize()
	if err := draft.Validate(); err != nil {
		return Nominee{}, invalid(err)
	}

	rec := repository.Nominee{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		CreatedBy:   actor.UserID,
		CreatedAt:   TimeNow().UTC(),
	}

	if err := e.repo.CreateNominee(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNomineeExists) {
			return Nominee{}, ErrNomineeExists
		}
		return Nominee{}, fmt.Errorf("create nominee: %w", err)
	}

	e.logs.Infow("nominee created",
		"nomineeId", rec.ID,
		"category", rec.Category,
		"createdBy", actor.UserID,
	)

	return toNominee(rec), nil
}

func requireUser(actor Principal) error {
	if !actor.Authenticated() {
		return ErrAuthentication
	}
	return nil
}

func requireAdmin(actor Principal) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.IsAdmin {
		return ErrAuthorization
	}
	return nil
}

func toNominee(rec repository.Nominee) Nominee {
	return Nominee{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    rec.Category,
		VoteCount:   rec.VoteCount,
		CreatedAt:   rec.CreatedAt,
	}
}
