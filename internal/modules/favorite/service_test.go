package favorite

import (
	"context"
	"fmt"
	"testing"

	"estatehub/internal/database"
	"estatehub/internal/domain"
	"estatehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (*Service, int64, int64) {
	t.Helper()
	dsn := fmt.Sprintf("file:favorite_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.ConnectWithOptions(dsn, database.Options{Silent: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	users := repository.NewUserRepository(db)
	properties := repository.NewPropertyRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Bob Johnson", Email: "bob@example.com"}
	require.NoError(t, users.Create(ctx, u))
	p := &domain.Property{Title: "Downtown Apartment", Address: "789 Central Ave", City: "Chicago", Price: 320000, OwnerID: u.ID}
	require.NoError(t, properties.Create(ctx, p))

	return NewService(repository.NewFavoriteRepository(db), users, properties), u.ID, p.ID
}

func TestToggle_FlipsMembership(t *testing.T) {
	svc, userID, propertyID := setupTestService(t)
	ctx := context.Background()

	for i, want := range []bool{true, false, true} {
		added, err := svc.Toggle(ctx, userID, propertyID)
		require.NoError(t, err)
		assert.Equal(t, want, added, "toggle #%d", i+1)
	}

	favs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	resp := ToListResponse(favs)
	assert.Equal(t, []int64{propertyID}, resp.FavResidenciesID)
	require.Len(t, resp.FavResidencies, 1)
	assert.Equal(t, "Downtown Apartment", resp.FavResidencies[0].Title)
}

func TestToggle_NotFound(t *testing.T) {
	svc, userID, propertyID := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, userID+100, propertyID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Toggle(ctx, userID, propertyID+100)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = svc.List(ctx, userID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToListResponse_Empty(t *testing.T) {
	resp := ToListResponse(nil)
	assert.NotNil(t, resp.FavResidencies)
	assert.NotNil(t, resp.FavResidenciesID)
}
