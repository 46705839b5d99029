package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Seed(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, entity any, order string, where string, args ...any) error
	Select(ctx context.Context, dest any, query string, args ...any) error
	Increment(ctx context.Context, model any, id string, column string, delta int) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
