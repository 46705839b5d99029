package repository

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	IsAdmin      bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Session struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	UserID    string    `gorm:"size:36;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type Nominee struct {
	ID          string    `gorm:"primaryKey;autoIncrement:false"`
	Name        string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_nominee_category_name"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);not null;index;uniqueIndex:idx_nominee_category_name"`
	VoteCount   int64     `gorm:"not null"` // kept in step with the votes table
	CreatedBy   string    `gorm:"size:36;not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// Vote copies the nominee's category so the one-vote-per-category rule is a
// plain unique index on (user_id, category).
type Vote struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_vote_user_category"`
	Category  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_vote_user_category"`
	NomineeID string    `gorm:"size:36;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// Tally is one row of the per-category vote count.
type Tally struct {
	NomineeID   string
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
	Votes       int64
}

// VoteDetail is a vote joined with its voter and nominee.
type VoteDetail struct {
	ID          string
	UserID      string
	Username    string
	NomineeID   string
	NomineeName string
	Category    string
	CreatedAt   time.Time
}
