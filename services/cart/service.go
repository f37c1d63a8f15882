// Package cart manages the per-user item list. One cart document per user;
// an absent document reads as an empty cart.
package cart

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/store"
)

type Service struct {
	carts    store.Carts
	products store.Products
	users    store.Users
	now      func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{
		carts:    st.Carts,
		products: st.Products,
		users:    st.Users,
		now:      time.Now,
	}
}

// ItemView is a cart line expanded with current product detail at read time.
type ItemView struct {
	ProductId primitive.ObjectID `json:"productId"`
	Quantity  int                `json:"quantity"`
	Product   *models.Product    `json:"product,omitempty"`
}

type View struct {
	Id     primitive.ObjectID `json:"id,omitempty"`
	UserId primitive.ObjectID `json:"userId,omitempty"`
	Items  []ItemView         `json:"items"`
}

func (s *Service) expand(ctx context.Context, c models.Cart) View {
	v := View{Id: c.Id, UserId: c.UserId, Items: make([]ItemView, 0, len(c.Items))}
	for _, item := range c.Items {
		iv := ItemView{ProductId: item.ProductId, Quantity: item.Quantity}
		if p, err := s.products.FindByID(ctx, item.ProductId); err == nil {
			iv.Product = &p
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

// Get never 404s: no cart document means an empty items list.
func (s *Service) Get(ctx context.Context, userID primitive.ObjectID) (View, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return View{UserId: userID, Items: []ItemView{}}, nil
		}
		return View{}, err
	}
	return s.expand(ctx, c), nil
}

// AddItem requires the product to exist. A line for the same product merges
// by quantity increment rather than duplicating.
func (s *Service) AddItem(ctx context.Context, userID primitive.ObjectID, productID string, quantity int) (View, error) {
	if productID == "" || quantity < 1 {
		return View{}, apperr.Validation("product id and valid quantity required")
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return View{}, apperr.Validation("invalid product id")
	}
	if _, err := s.products.FindByID(ctx, pid); err != nil {
		return View{}, err
	}

	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return View{}, err
		}
		c = models.Cart{
			Id:        primitive.NewObjectID(),
			UserId:    userID,
			Items:     []models.CartItem{},
			CreatedAt: s.now(),
		}
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ProductId == pid {
			c.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, models.CartItem{ProductId: pid, Quantity: quantity})
	}
	c.UpdatedAt = s.now()

	if err := s.carts.Upsert(ctx, c); err != nil {
		return View{}, err
	}
	return s.expand(ctx, c), nil
}

// UpdateItem sets the quantity of an existing line.
func (s *Service) UpdateItem(ctx context.Context, userID primitive.ObjectID, productID string, quantity int) (View, error) {
	if quantity < 1 {
		return View{}, apperr.Validation("valid quantity required")
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return View{}, apperr.Validation("invalid product id")
	}

	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return View{}, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ProductId == pid {
			c.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return View{}, apperr.NotFound("item not in cart")
	}
	c.UpdatedAt = s.now()

	if err := s.carts.Upsert(ctx, c); err != nil {
		return View{}, err
	}
	return s.expand(ctx, c), nil
}

// RemoveItem filters the line out of the cart.
func (s *Service) RemoveItem(ctx context.Context, userID primitive.ObjectID, productID string) (View, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return View{}, apperr.Validation("invalid product id")
	}

	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return View{}, err
	}

	// Fresh slice: the stored cart may share the backing array until the
	// upsert lands.
	items := make([]models.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductId != pid {
			items = append(items, item)
		}
	}
	c.Items = items
	c.UpdatedAt = s.now()

	if err := s.carts.Upsert(ctx, c); err != nil {
		return View{}, err
	}
	return s.expand(ctx, c), nil
}

// Clear deletes the cart document entirely. Clearing an absent cart is fine.
func (s *Service) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return s.carts.DeleteByUser(ctx, userID)
}

// AdminView is a cart with its owner resolved for the admin listing.
type AdminView struct {
	View
	User *models.User `json:"user,omitempty"`
}

func (s *Service) All(ctx context.Context) ([]AdminView, error) {
	carts, err := s.carts.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminView, 0, len(carts))
	for _, c := range carts {
		av := AdminView{View: s.expand(ctx, c)}
		if u, err := s.users.FindByID(ctx, c.UserId); err == nil {
			u.Password = ""
			av.User = &u
		}
		out = append(out, av)
	}
	return out, nil
}
