package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

func TestListRepository_CreateAppends(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewListRepository(db)
	board := seedBoard(t, db, seedUser(t, db, "ann"), "Board", time.Now())

	for i := 1; i <= 3; i++ {
		list := &model.List{Title: "List", BoardID: board.ID}
		require.NoError(t, repo.Create(ctx, list))
		assert.Equal(t, i, list.Position)
	}

	lists, err := repo.ListByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, lists, 3)
}

func TestListRepository_Create_MissingBoard(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewListRepository(db)

	err := repo.Create(ctx, &model.List{Title: "Orphan", BoardID: uuid.New()})

	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
}

func TestListRepository_Update(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewListRepository(db)
	board := seedBoard(t, db, seedUser(t, db, "ann"), "Board", time.Now())
	first := &model.List{Title: "A", BoardID: board.ID}
	second := &model.List{Title: "B", BoardID: board.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	title, position := "Done", 0
	updated, err := repo.Update(ctx, second.ID, repository.ListChanges{Title: &title, Position: &position})
	require.NoError(t, err)
	assert.Equal(t, "Done", updated.Title)
	assert.Equal(t, 0, updated.Position)

	untouched, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, untouched.Position)

	lists, err := repo.ListByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, lists[0].ID)

	_, err = repo.Update(ctx, uuid.New(), repository.ListChanges{Title: &title})
	assert.ErrorIs(t, err, repository.ErrListNotFound)
}
