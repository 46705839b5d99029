package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

const uniqueViolationCode = "23505"

type txKey struct{}

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens a connection using the named driver ("postgres" or "sqlite").
func NewGormDB(driver, dsn string) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db conn: %w", err)
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records only when the table is still empty.
func (f *GormDB) Seed(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	elemType := slice.Index(0).Interface()
	var count int64
	if err := f.conn(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.conn(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.conn(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", translate(err))
	}
	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.conn(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// Find loads every row matching where (all rows when where is empty) in the given order.
func (f *GormDB) Find(ctx context.Context, entity any, order string, where string, args ...any) error {
	tx := f.conn(ctx)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

// Select runs a raw read query and scans the rows into dest.
func (f *GormDB) Select(ctx context.Context, dest any, query string, args ...any) error {
	if err := f.conn(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("raw select: %w", err)
	}
	return nil
}

// Increment adds delta to column on the row of model identified by id.
func (f *GormDB) Increment(ctx context.Context, model any, id string, column string, delta int) error {
	tx := f.conn(ctx).Model(model).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(fmt.Sprintf("%s + ?", column), delta))
	if tx.Error != nil {
		return fmt.Errorf("increment %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) DeleteBy(ctx context.Context, model any, column string, value any) error {
	tx := f.conn(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting record by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Transaction runs fn inside a database transaction. Calls made with the
// context handed to fn join the transaction; any error rolls it back.
func (f *GormDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (f *GormDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return f.DB.WithContext(ctx)
}

func translate(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
