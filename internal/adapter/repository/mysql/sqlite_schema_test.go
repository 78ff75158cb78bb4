package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type ideaSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	IdeaID          string         `gorm:"size:32;uniqueIndex;column:idea_id"`
	FounderID       string         `gorm:"size:32;index;column:founder_id"`
	Title           string         `gorm:"column:title"`
	Description     string         `gorm:"column:description"`
	Industry        string         `gorm:"column:industry"`
	Stage           string         `gorm:"type:text;column:stage"`
	FundingGoal     float64        `gorm:"column:funding_goal"`
	Status          string         `gorm:"type:text;column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (ideaSQLite) TableName() string { return "ideas" }

type investmentSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	InvestmentID    string    `gorm:"size:32;uniqueIndex;column:investment_id"`
	IdeaID          uint64    `gorm:"index;column:idea_id"`
	InvestorID      string    `gorm:"size:32;index;column:investor_id"`
	Amount          float64   `gorm:"column:amount"`
	PaymentStatus   string    `gorm:"type:text;column:payment_status"`
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type voteSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	IdeaID    uint64    `gorm:"uniqueIndex:ux_votes_idea_user;column:idea_id"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_votes_idea_user;column:user_id"`
	Value     string    `gorm:"type:text;column:value"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (voteSQLite) TableName() string { return "idea_votes" }

type bookmarkSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	IdeaID    uint64    `gorm:"uniqueIndex:ux_bookmarks_idea_user;column:idea_id"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_bookmarks_idea_user;column:user_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookmarkSQLite) TableName() string { return "bookmarks" }

type notificationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	NotificationID string    `gorm:"size:32;uniqueIndex;column:notification_id"`
	UserID         string    `gorm:"size:32;index;column:user_id"`
	Message        string    `gorm:"column:message"`
	IsRead         bool      `gorm:"column:is_read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

type profileSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      string    `gorm:"size:32;uniqueIndex;column:user_id"`
	FullName    string    `gorm:"column:full_name"`
	Email       string    `gorm:"column:email"`
	CompanyName string    `gorm:"column:company_name"`
	Bio         string    `gorm:"column:bio"`
	Role        string    `gorm:"type:text;column:role"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (profileSQLite) TableName() string { return "profiles" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models with their enum columns.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&ideaSQLite{}, &investmentSQLite{}, &voteSQLite{},
		&bookmarkSQLite{}, &notificationSQLite{}, &profileSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
