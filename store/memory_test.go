package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
)

func seedBanner(t *testing.T, st *Store, title, bannerType string, active bool, priority int, createdAt time.Time) models.Banner {
	t.Helper()
	b := models.Banner{
		Id:         primitive.NewObjectID(),
		Title:      title,
		ImageUrl:   "https://cdn.example.com/" + title + ".png",
		BannerType: bannerType,
		IsActive:   active,
		Priority:   priority,
		CreatedAt:  createdAt,
	}
	require.NoError(t, st.Banners.Insert(context.Background(), b))
	return b
}

func TestBannersListActiveFilterAndOrder(t *testing.T) {
	st := NewMemory()
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	seedBanner(t, st, "summer", models.BannerHome, true, 5, base)
	seedBanner(t, st, "monsoon", models.BannerHome, true, 10, base.Add(time.Hour))
	seedBanner(t, st, "hidden", models.BannerHome, false, 99, base)
	seedBanner(t, st, "diwali", models.BannerFestival, true, 1, base)

	all, err := st.Banners.ListActive(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "monsoon", all[0].Title)
	assert.Equal(t, "summer", all[1].Title)

	festival, err := st.Banners.ListActive(context.Background(), models.BannerFestival)
	require.NoError(t, err)
	require.Len(t, festival, 1)
	assert.Equal(t, "diwali", festival[0].Title)
}

func TestBannersPatchPartial(t *testing.T) {
	st := NewMemory()
	b := seedBanner(t, st, "summer", models.BannerHome, true, 5, time.Now())

	inactive := false
	title := "end of summer"
	patched, err := st.Banners.Patch(context.Background(), b.Id, models.BannerPatch{
		Title:    &title,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "end of summer", patched.Title)
	assert.False(t, patched.IsActive)
	assert.Equal(t, b.ImageUrl, patched.ImageUrl)
	assert.Equal(t, 5, patched.Priority)

	_, err = st.Banners.Patch(context.Background(), primitive.NewObjectID(), models.BannerPatch{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProfilesUpsertKeepsCreatedAt(t *testing.T) {
	st := NewMemory()
	userID := primitive.NewObjectID()
	first := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	created, err := st.Profiles.Upsert(context.Background(), models.Profile{
		UserId:    userID,
		FullName:  "Asha",
		CreatedAt: first,
		UpdatedAt: first,
	})
	require.NoError(t, err)
	assert.Equal(t, first, created.CreatedAt)

	later := first.Add(48 * time.Hour)
	updated, err := st.Profiles.Upsert(context.Background(), models.Profile{
		UserId:    userID,
		FullName:  "Asha K",
		CreatedAt: later,
		UpdatedAt: later,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, first, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
}

func TestAddressFindOwnedScoping(t *testing.T) {
	st := NewMemory()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	a := models.Address{Id: primitive.NewObjectID(), UserId: owner, FullAddress: "12 MG Road", Pincode: "560001"}
	require.NoError(t, st.Addresses.Insert(context.Background(), a))

	got, err := st.Addresses.FindOwned(context.Background(), a.Id, owner)
	require.NoError(t, err)
	assert.Equal(t, a.Id, got.Id)

	_, err = st.Addresses.FindOwned(context.Background(), a.Id, stranger)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
