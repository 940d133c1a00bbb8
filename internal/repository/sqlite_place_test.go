package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mariusbk/wander/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	place := testutil.NewTestPlace("Kyoto",
		testutil.WithLocation("Japan"),
		testutil.WithDescription("Temples in autumn"))
	require.NoError(t, repo.Create(ctx, place))

	fetched, err := repo.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, place.ID, fetched.ID)
	assert.Equal(t, "Kyoto", fetched.Name)
	assert.Equal(t, "Japan", fetched.Location)
	assert.Equal(t, "Temples in autumn", fetched.Description)
	assert.False(t, fetched.Visited)
	assert.Equal(t,
		place.CreatedAt.Format(time.RFC3339Nano),
		fetched.CreatedAt.Format(time.RFC3339Nano))
}

func TestPlaceRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlaceRepo_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	first := testutil.NewTestPlace("Lisbon")
	second := testutil.NewTestPlace("Oaxaca")
	third := testutil.NewTestPlace("Hanoi")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Hanoi", list[0].Name)
	assert.Equal(t, "Oaxaca", list[1].Name)
	assert.Equal(t, "Lisbon", list[2].Name)
}

func TestPlaceRepo_List_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPlaceRepo_SetVisited(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	place := testutil.NewTestPlace("Petra")
	require.NoError(t, repo.Create(ctx, place))

	require.NoError(t, repo.SetVisited(ctx, place.ID, true))
	fetched, err := repo.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Visited)

	require.NoError(t, repo.SetVisited(ctx, place.ID, false))
	fetched, err = repo.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Visited)
}

func TestPlaceRepo_SetVisited_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)

	err := repo.SetVisited(context.Background(), "nonexistent", true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlaceRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	place := testutil.NewTestPlace("Svalbard")
	require.NoError(t, repo.Create(ctx, place))
	require.NoError(t, repo.Delete(ctx, place.ID))

	_, err := repo.GetByID(ctx, place.ID)
	assert.Error(t, err)

	// Deleting again reports not found.
	err = repo.Delete(ctx, place.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlaceRepo_CreateDuplicateID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	place := testutil.NewTestPlace("Tbilisi")
	require.NoError(t, repo.Create(ctx, place))
	assert.Error(t, repo.Create(ctx, place))
}
