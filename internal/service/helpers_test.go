package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

var ctx = context.Background()

type fixture struct {
	db     *gorm.DB
	boards *service.BoardService
	lists  *service.ListService
	cards  *service.CardService
	labels *service.LabelService
	access *service.AccessService
	clock  *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{DBType: "sqlite", DBPath: ":memory:", DBLogLevel: "silent"}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	clock := &fakeClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}

	return &fixture{
		db:     db,
		boards: service.NewBoardService(boardRepo, repository.NewRecentRepository(db)).WithClock(clock.Now),
		lists:  service.NewListService(boardRepo, listRepo),
		cards:  service.NewCardService(listRepo, cardRepo),
		labels: service.NewLabelService(boardRepo, listRepo, cardRepo, labelRepo),
		access: service.NewAccessService(boardRepo, listRepo, cardRepo),
		clock:  clock,
	}
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8])}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) board(t *testing.T, owner *model.User, title string) *model.Board {
	t.Helper()
	board, err := f.boards.CreateBoard(ctx, owner.ID, validation.CreateBoardInput{
		Title:      title,
		Background: validation.BackgroundInput{Type: "color", Value: "#0079bf"},
	})
	require.NoError(t, err)
	return board
}

func (f *fixture) list(t *testing.T, board *model.Board) *model.List {
	t.Helper()
	list, err := f.lists.CreateList(ctx, validation.CreateListInput{BoardID: board.ID.String(), Title: "Todo"})
	require.NoError(t, err)
	return list
}

func (f *fixture) card(t *testing.T, list *model.List, title string) *model.Card {
	t.Helper()
	card, err := f.cards.CreateCard(ctx, validation.CreateCardInput{ListID: list.ID.String(), Title: title})
	require.NoError(t, err)
	return card
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
