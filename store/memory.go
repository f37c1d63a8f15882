package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
)

// NewMemory builds an in-memory store set with the same not-found and
// per-document update semantics as the Mongo implementation. It backs the
// service tests; nothing in the server wires it.
func NewMemory() *Store {
	m := &memory{
		users:         map[primitive.ObjectID]models.User{},
		profiles:      map[primitive.ObjectID]models.Profile{},
		categories:    map[primitive.ObjectID]models.Category{},
		subcategories: map[primitive.ObjectID]models.Subcategory{},
		products:      map[primitive.ObjectID]models.Product{},
		carts:         map[primitive.ObjectID]models.Cart{},
		addresses:     map[primitive.ObjectID]models.Address{},
		orders:        map[primitive.ObjectID]models.Order{},
		banners:       map[primitive.ObjectID]models.Banner{},
	}
	return &Store{
		Users:         (*memUsers)(m),
		Profiles:      (*memProfiles)(m),
		Categories:    (*memCategories)(m),
		Subcategories: (*memSubcategories)(m),
		Products:      (*memProducts)(m),
		Carts:         (*memCarts)(m),
		Addresses:     (*memAddresses)(m),
		Orders:        (*memOrders)(m),
		Banners:       (*memBanners)(m),
	}
}

type memory struct {
	mu            sync.Mutex
	users         map[primitive.ObjectID]models.User
	profiles      map[primitive.ObjectID]models.Profile
	categories    map[primitive.ObjectID]models.Category
	subcategories map[primitive.ObjectID]models.Subcategory
	products      map[primitive.ObjectID]models.Product
	carts         map[primitive.ObjectID]models.Cart
	addresses     map[primitive.ObjectID]models.Address
	orders        map[primitive.ObjectID]models.Order
	banners       map[primitive.ObjectID]models.Banner
}

type (
	memUsers         memory
	memProfiles      memory
	memCategories    memory
	memSubcategories memory
	memProducts      memory
	memCarts         memory
	memAddresses     memory
	memOrders        memory
	memBanners       memory
)

func (s *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, apperr.NotFound("user not found")
	}
	return u, nil
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.NotFound("user not found")
}

func (s *memUsers) Insert(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Id] = u
	return nil
}

func (s *memUsers) SetOTP(_ context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.Otp = code
	u.OtpExpires = expires
	s.users[id] = u
	return nil
}

func (s *memUsers) ClearOTP(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.Otp = ""
	u.OtpExpires = time.Time{}
	s.users[id] = u
	return nil
}

func (s *memUsers) All(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memProfiles) FindByUser(_ context.Context, userID primitive.ObjectID) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.UserId == userID {
			return p, nil
		}
	}
	return models.Profile{}, apperr.NotFound("profile not found")
}

func (s *memProfiles) Upsert(_ context.Context, p models.Profile) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.profiles {
		if existing.UserId == p.UserId {
			p.Id = id
			p.IsVerified = existing.IsVerified
			p.CreatedAt = existing.CreatedAt
			s.profiles[id] = p
			return p, nil
		}
	}
	p.Id = primitive.NewObjectID()
	s.profiles[p.Id] = p
	return p, nil
}

func (s *memProfiles) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.profiles {
		if p.UserId == userID {
			delete(s.profiles, id)
			return nil
		}
	}
	return apperr.NotFound("profile not found")
}

func (s *memProfiles) All(_ context.Context) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (s *memCategories) Insert(_ context.Context, c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.Id] = c
	return nil
}

func (s *memCategories) FindByID(_ context.Context, id primitive.ObjectID) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, apperr.NotFound("category not found")
	}
	return c, nil
}

func (s *memCategories) All(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *memCategories) Update(_ context.Context, c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[c.Id]; !ok {
		return apperr.NotFound("category not found")
	}
	s.categories[c.Id] = c
	return nil
}

func (s *memCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return apperr.NotFound("category not found")
	}
	delete(s.categories, id)
	return nil
}

func (s *memSubcategories) Insert(_ context.Context, sc models.Subcategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subcategories[sc.Id] = sc
	return nil
}

func (s *memSubcategories) FindByID(_ context.Context, id primitive.ObjectID) (models.Subcategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.subcategories[id]
	if !ok {
		return models.Subcategory{}, apperr.NotFound("subcategory not found")
	}
	return sc, nil
}

func (s *memSubcategories) All(_ context.Context) ([]models.Subcategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Subcategory, 0, len(s.subcategories))
	for _, sc := range s.subcategories {
		out = append(out, sc)
	}
	return out, nil
}

func (s *memSubcategories) ListByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.Subcategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Subcategory, 0)
	for _, sc := range s.subcategories {
		if sc.Category == categoryID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *memSubcategories) Update(_ context.Context, sc models.Subcategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subcategories[sc.Id]; !ok {
		return apperr.NotFound("subcategory not found")
	}
	s.subcategories[sc.Id] = sc
	return nil
}

func (s *memSubcategories) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subcategories[id]; !ok {
		return apperr.NotFound("subcategory not found")
	}
	delete(s.subcategories, id)
	return nil
}

func (s *memProducts) Insert(_ context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.Id] = p
	return nil
}

func (s *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, apperr.NotFound("product not found")
	}
	return p, nil
}

func (s *memProducts) All(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *memProducts) Update(_ context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.Id]; !ok {
		return apperr.NotFound("product not found")
	}
	s.products[p.Id] = p
	return nil
}

func (s *memProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return apperr.NotFound("product not found")
	}
	delete(s.products, id)
	return nil
}

func (s *memCarts) FindByUser(_ context.Context, userID primitive.ObjectID) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.carts {
		if c.UserId == userID {
			return c, nil
		}
	}
	return models.Cart{}, apperr.NotFound("cart not found")
}

func (s *memCarts) Upsert(_ context.Context, c models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.carts {
		if existing.UserId == c.UserId {
			c.Id = id
			c.CreatedAt = existing.CreatedAt
			s.carts[id] = c
			return nil
		}
	}
	s.carts[c.Id] = c
	return nil
}

func (s *memCarts) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.carts {
		if c.UserId == userID {
			delete(s.carts, id)
			return nil
		}
	}
	return nil
}

func (s *memCarts) All(_ context.Context) ([]models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Cart, 0, len(s.carts))
	for _, c := range s.carts {
		out = append(out, c)
	}
	return out, nil
}

func (s *memAddresses) FindOwned(_ context.Context, id, userID primitive.ObjectID) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.addresses[id]
	if !ok || a.UserId != userID {
		return models.Address{}, apperr.NotFound("address not found")
	}
	return a, nil
}

func (s *memAddresses) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Address, 0)
	for _, a := range s.addresses {
		if a.UserId == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memAddresses) Insert(_ context.Context, a models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[a.Id] = a
	return nil
}

func (s *memAddresses) Replace(_ context.Context, a models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.addresses[a.Id]
	if !ok || existing.UserId != a.UserId {
		return apperr.NotFound("address not found")
	}
	s.addresses[a.Id] = a
	return nil
}

func (s *memAddresses) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.addresses[id]
	if !ok || a.UserId != userID {
		return apperr.NotFound("address not found")
	}
	delete(s.addresses, id)
	return nil
}

func (s *memAddresses) UnsetDefaults(_ context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.addresses {
		if a.UserId == userID && a.IsDefault {
			a.IsDefault = false
			s.addresses[id] = a
		}
	}
	return nil
}

func (s *memAddresses) All(_ context.Context) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Address, 0, len(s.addresses))
	for _, a := range s.addresses {
		out = append(out, a)
	}
	return out, nil
}

func (s *memOrders) Insert(_ context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Id] = o
	return nil
}

func (s *memOrders) FindByID(_ context.Context, id primitive.ObjectID) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("order not found")
	}
	return o, nil
}

func (s *memOrders) UpdateStatus(_ context.Context, id primitive.ObjectID, paymentStatus, deliveryStatus *string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("order not found")
	}
	if paymentStatus != nil {
		o.PaymentStatus = *paymentStatus
	}
	if deliveryStatus != nil {
		o.DeliveryStatus = *deliveryStatus
	}
	o.UpdatedAt = time.Now()
	s.orders[id] = o
	return o, nil
}

func (s *memOrders) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserId == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memOrders) All(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memOrders) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return apperr.NotFound("order not found")
	}
	delete(s.orders, id)
	return nil
}

func (s *memOrders) BulkUpdateDelivery(_ context.Context, userID primitive.ObjectID, from, to string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, o := range s.orders {
		if o.UserId == userID && o.DeliveryStatus == from && from != to {
			o.DeliveryStatus = to
			o.UpdatedAt = time.Now()
			s.orders[id] = o
			n++
		}
	}
	return n, nil
}

func (s *memBanners) Insert(_ context.Context, b models.Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banners[b.Id] = b
	return nil
}

func (s *memBanners) ListActive(_ context.Context, bannerType string) ([]models.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Banner, 0)
	for _, b := range s.banners {
		if !b.IsActive {
			continue
		}
		if bannerType != "" && b.BannerType != bannerType {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memBanners) Patch(_ context.Context, id primitive.ObjectID, p models.BannerPatch) (models.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.banners[id]
	if !ok {
		return models.Banner{}, apperr.NotFound("banner not found")
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.ImageUrl != nil {
		b.ImageUrl = *p.ImageUrl
	}
	if p.Link != nil {
		b.Link = *p.Link
	}
	if p.BannerType != nil {
		b.BannerType = *p.BannerType
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
	if p.StartDate != nil {
		b.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = p.EndDate
	}
	if p.Priority != nil {
		b.Priority = *p.Priority
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	b.UpdatedAt = time.Now()
	s.banners[id] = b
	return b, nil
}

func (s *memBanners) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banners[id]; !ok {
		return apperr.NotFound("banner not found")
	}
	delete(s.banners, id)
	return nil
}
