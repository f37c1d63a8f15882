package addresses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.NewMemory()
	return NewService(st), st
}

func boolPtr(b bool) *bool { return &b }

func countDefaults(t *testing.T, svc *Service, userID primitive.ObjectID) int {
	t.Helper()
	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	n := 0
	for _, a := range list {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), userID, Input{City: "Pune"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Add(context.Background(), userID, Input{FullAddress: "12 FC Road"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAddDefaultsLabel(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	a, err := svc.Add(context.Background(), userID, Input{
		FullAddress: "12 FC Road",
		Pincode:     "411004",
	})
	require.NoError(t, err)
	assert.Equal(t, "Home", a.Label)
	assert.False(t, a.IsDefault)
}

func TestSingleDefaultInvariant(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	first, err := svc.Add(context.Background(), userID, Input{
		FullAddress: "12 FC Road",
		Pincode:     "411004",
		IsDefault:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.Add(context.Background(), userID, Input{
		Label:       "Work",
		FullAddress: "5 Baner Road",
		Pincode:     "411045",
		IsDefault:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	assert.Equal(t, 1, countDefaults(t, svc, userID))
}

func TestSetDefaultMoves(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	a, err := svc.Add(context.Background(), userID, Input{
		FullAddress: "12 FC Road", Pincode: "411004", IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	b, err := svc.Add(context.Background(), userID, Input{
		Label: "Work", FullAddress: "5 Baner Road", Pincode: "411045",
	})
	require.NoError(t, err)

	updated, err := svc.SetDefault(context.Background(), userID, b.Id.Hex())
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, 1, countDefaults(t, svc, userID))

	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	for _, addr := range list {
		if addr.Id == a.Id {
			assert.False(t, addr.IsDefault)
		}
	}
}

func TestDefaultScopedPerUser(t *testing.T) {
	svc, _ := newTestService(t)
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), alice, Input{
		FullAddress: "12 FC Road", Pincode: "411004", IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), bob, Input{
		FullAddress: "9 Link Road", Pincode: "400050", IsDefault: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countDefaults(t, svc, alice))
	assert.Equal(t, 1, countDefaults(t, svc, bob))
}

func TestUpdateMergesEmptyFields(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	a, err := svc.Add(context.Background(), userID, Input{
		FullAddress: "12 FC Road", City: "Pune", Pincode: "411004", IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	require.True(t, a.IsDefault)

	// A body that omits isDefault must not touch the flag.
	updated, err := svc.Update(context.Background(), userID, a.Id.Hex(), Input{
		City: "Mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "12 FC Road", updated.FullAddress)
	assert.Equal(t, "411004", updated.Pincode)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, 1, countDefaults(t, svc, userID))

	// An explicit false clears it.
	updated, err = svc.Update(context.Background(), userID, a.Id.Hex(), Input{
		IsDefault: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
	assert.Equal(t, 0, countDefaults(t, svc, userID))
}

func TestOwnershipScoping(t *testing.T) {
	svc, _ := newTestService(t)
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	a, err := svc.Add(context.Background(), owner, Input{
		FullAddress: "12 FC Road", Pincode: "411004",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), stranger, a.Id.Hex(), Input{City: "Delhi"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = svc.Delete(context.Background(), stranger, a.Id.Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.SetDefault(context.Background(), stranger, a.Id.Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	a, err := svc.Add(context.Background(), userID, Input{
		FullAddress: "12 FC Road", Pincode: "411004",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), userID, a.Id.Hex()))
	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = svc.Delete(context.Background(), userID, a.Id.Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
