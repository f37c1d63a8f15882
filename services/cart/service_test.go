package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.NewMemory()
	return NewService(st), st
}

func seedProduct(t *testing.T, st *store.Store, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{
		Id:     primitive.NewObjectID(),
		Name:   name,
		Images: []string{"https://cdn.example.com/" + name + ".png"},
		Price:  price,
		Status: true,
	}
	require.NoError(t, st.Products.Insert(context.Background(), p))
	return p
}

func TestGetAbsentCartIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	view, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, view.UserId)
	assert.Empty(t, view.Items)
	assert.NotNil(t, view.Items)
}

func TestAddItemMergesQuantities(t *testing.T) {
	svc, st := newTestService(t)
	userID := primitive.NewObjectID()
	product := seedProduct(t, st, "milk", 30)

	_, err := svc.AddItem(context.Background(), userID, product.Id.Hex(), 2)
	require.NoError(t, err)
	view, err := svc.AddItem(context.Background(), userID, product.Id.Hex(), 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	require.NotNil(t, view.Items[0].Product)
	assert.Equal(t, "milk", view.Items[0].Product.Name)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)
	userID := primitive.NewObjectID()

	_, err := svc.AddItem(context.Background(), userID, primitive.NewObjectID().Hex(), 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.AddItem(context.Background(), userID, "not-an-id", 1)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.AddItem(context.Background(), userID, primitive.NewObjectID().Hex(), 0)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateItemSetsQuantity(t *testing.T) {
	svc, st := newTestService(t)
	userID := primitive.NewObjectID()
	product := seedProduct(t, st, "bread", 45)

	_, err := svc.AddItem(context.Background(), userID, product.Id.Hex(), 2)
	require.NoError(t, err)

	view, err := svc.UpdateItem(context.Background(), userID, product.Id.Hex(), 7)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 7, view.Items[0].Quantity)
}

func TestUpdateItemNotInCart(t *testing.T) {
	svc, st := newTestService(t)
	userID := primitive.NewObjectID()
	inCart := seedProduct(t, st, "bread", 45)
	other := seedProduct(t, st, "jam", 80)

	_, err := svc.AddItem(context.Background(), userID, inCart.Id.Hex(), 1)
	require.NoError(t, err)

	_, err = svc.UpdateItem(context.Background(), userID, other.Id.Hex(), 2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc, st := newTestService(t)
	userID := primitive.NewObjectID()
	keep := seedProduct(t, st, "rice", 60)
	drop := seedProduct(t, st, "salt", 15)

	_, err := svc.AddItem(context.Background(), userID, keep.Id.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), userID, drop.Id.Hex(), 1)
	require.NoError(t, err)

	view, err := svc.RemoveItem(context.Background(), userID, drop.Id.Hex())
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, keep.Id, view.Items[0].ProductId)
}

func TestRemoveItemLeavesFetchedSnapshotIntact(t *testing.T) {
	svc, st := newTestService(t)
	userID := primitive.NewObjectID()
	first := seedProduct(t, st, "rice", 60)
	second := seedProduct(t, st, "salt", 15)

	_, err := svc.AddItem(context.Background(), userID, first.Id.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), userID, second.Id.Hex(), 1)
	require.NoError(t, err)

	snapshot, err := st.Carts.FindByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 2)

	_, err = svc.RemoveItem(context.Background(), userID, first.Id.Hex())
	require.NoError(t, err)

	// The earlier read must not see the filter's side effects.
	assert.Equal(t, first.Id, snapshot.Items[0].ProductId)
	assert.Equal(t, second.Id, snapshot.Items[1].ProductId)
}

func TestClearThenGet(t *testing.T) {
	svc, st := newTestService(t)
	userID := primitive.NewObjectID()
	product := seedProduct(t, st, "milk", 30)

	_, err := svc.AddItem(context.Background(), userID, product.Id.Hex(), 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), userID))
	// Clearing twice is not an error.
	require.NoError(t, svc.Clear(context.Background(), userID))

	view, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestAllResolvesUsers(t *testing.T) {
	svc, st := newTestService(t)
	user := models.User{
		Id:       primitive.NewObjectID(),
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "secret-hash",
	}
	require.NoError(t, st.Users.Insert(context.Background(), user))
	product := seedProduct(t, st, "tea", 120)

	_, err := svc.AddItem(context.Background(), user.Id, product.Id.Hex(), 1)
	require.NoError(t, err)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "ravi", all[0].User.Username)
	assert.Empty(t, all[0].User.Password)
}
