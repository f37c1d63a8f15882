// Package store wraps the document store behind per-entity interfaces.
// Implementations must return apperr.ErrNotFound (wrapped) for missing
// documents so callers can map it to a 404 without knowing the driver.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/models"
)

type Users interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, u models.User) error
	SetOTP(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error
	ClearOTP(ctx context.Context, id primitive.ObjectID) error
	All(ctx context.Context) ([]models.User, error)
}

type Profiles interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Profile, error)
	Upsert(ctx context.Context, p models.Profile) (models.Profile, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	All(ctx context.Context) ([]models.Profile, error)
}

type Categories interface {
	Insert(ctx context.Context, c models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Subcategories interface {
	Insert(ctx context.Context, s models.Subcategory) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error)
	All(ctx context.Context) ([]models.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Subcategory, error)
	Update(ctx context.Context, s models.Subcategory) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Products interface {
	Insert(ctx context.Context, p models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Carts interface {
	// FindByUser returns apperr.ErrNotFound when the user has no cart
	// document; callers decide whether absence means "empty".
	FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error)
	Upsert(ctx context.Context, c models.Cart) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	All(ctx context.Context) ([]models.Cart, error)
}

type Addresses interface {
	// FindOwned scopes the lookup by owner; an address belonging to another
	// user is indistinguishable from a missing one.
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (models.Address, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error)
	Insert(ctx context.Context, a models.Address) error
	Replace(ctx context.Context, a models.Address) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	// UnsetDefaults clears isDefault on every address of the user.
	UnsetDefaults(ctx context.Context, userID primitive.ObjectID) error
	All(ctx context.Context) ([]models.Address, error)
}

type Orders interface {
	Insert(ctx context.Context, o models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	// UpdateStatus applies only the non-nil fields.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, paymentStatus, deliveryStatus *string) (models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// BulkUpdateDelivery moves every order of the user currently in `from`
	// to `to` and reports how many documents changed.
	BulkUpdateDelivery(ctx context.Context, userID primitive.ObjectID, from, to string) (int64, error)
}

type Banners interface {
	Insert(ctx context.Context, b models.Banner) error
	// ListActive returns active banners, optionally filtered by type,
	// sorted by priority then recency.
	ListActive(ctx context.Context, bannerType string) ([]models.Banner, error)
	Patch(ctx context.Context, id primitive.ObjectID, p models.BannerPatch) (models.Banner, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Store bundles every entity store for wiring.
type Store struct {
	Users         Users
	Profiles      Profiles
	Categories    Categories
	Subcategories Subcategories
	Products      Products
	Carts         Carts
	Addresses     Addresses
	Orders        Orders
	Banners       Banners
}
