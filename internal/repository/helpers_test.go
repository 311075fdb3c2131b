package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/model"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

// setupSQLite returns a migrated in-memory database with foreign keys on.
func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{DBType: "sqlite", DBPath: ":memory:", DBLogLevel: "silent"}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8])}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBoard(t *testing.T, db *gorm.DB, owner *model.User, title string, createdAt time.Time) *model.Board {
	t.Helper()
	board := &model.Board{
		Title:      title,
		OwnerID:    owner.ID,
		Background: datatypes.NewJSONType(model.Background{Type: model.BackgroundColor, Value: "#ffffff"}),
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Omit("Owner", "Lists").Create(board).Error)
	return board
}

func seedList(t *testing.T, db *gorm.DB, board *model.Board) *model.List {
	t.Helper()
	list := &model.List{Title: "Todo", BoardID: board.ID}
	require.NoError(t, db.Omit("Board", "Cards").Create(list).Error)
	return list
}

var ctx = context.Background()
