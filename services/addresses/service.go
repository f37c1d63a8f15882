// Package addresses keeps per-user addresses with a single-default invariant:
// setting a default first clears isDefault on every other address of the same
// user. Two persistence calls, not one atomic operation; concurrent set-default
// requests from the same user can race.
package addresses

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/store"
)

type Service struct {
	addresses store.Addresses
	users     store.Users
	now       func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{addresses: st.Addresses, users: st.Users, now: time.Now}
}

// Input carries address fields from the caller. IsDefault is a pointer so a
// partial update can leave the flag alone when the body omits it.
type Input struct {
	Label       string  `json:"label"`
	FullAddress string  `json:"fullAddress"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Pincode     string  `json:"pincode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsDefault   *bool   `json:"isDefault"`
}

func (in Input) wantsDefault() bool {
	return in.IsDefault != nil && *in.IsDefault
}

func (s *Service) Add(ctx context.Context, userID primitive.ObjectID, in Input) (models.Address, error) {
	if in.FullAddress == "" || in.Pincode == "" {
		return models.Address{}, apperr.Validation("full address and pincode are required")
	}
	if in.wantsDefault() {
		if err := s.addresses.UnsetDefaults(ctx, userID); err != nil {
			return models.Address{}, err
		}
	}

	label := in.Label
	if label == "" {
		label = "Home"
	}
	now := s.now()
	address := models.Address{
		Id:          primitive.NewObjectID(),
		UserId:      userID,
		Label:       label,
		FullAddress: in.FullAddress,
		City:        in.City,
		State:       in.State,
		Pincode:     in.Pincode,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		IsDefault:   in.wantsDefault(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.addresses.Insert(ctx, address); err != nil {
		return models.Address{}, err
	}
	return address, nil
}

// List returns the user's addresses newest first.
func (s *Service) List(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

// Update overwrites provided fields, keeping existing values for empty ones.
func (s *Service) Update(ctx context.Context, userID primitive.ObjectID, addressID string, in Input) (models.Address, error) {
	id, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return models.Address{}, apperr.Validation("invalid address id")
	}
	address, err := s.addresses.FindOwned(ctx, id, userID)
	if err != nil {
		return models.Address{}, err
	}

	if in.wantsDefault() {
		if err := s.addresses.UnsetDefaults(ctx, userID); err != nil {
			return models.Address{}, err
		}
	}

	if in.Label != "" {
		address.Label = in.Label
	}
	if in.FullAddress != "" {
		address.FullAddress = in.FullAddress
	}
	if in.City != "" {
		address.City = in.City
	}
	if in.State != "" {
		address.State = in.State
	}
	if in.Pincode != "" {
		address.Pincode = in.Pincode
	}
	if in.Latitude != 0 {
		address.Latitude = in.Latitude
	}
	if in.Longitude != 0 {
		address.Longitude = in.Longitude
	}
	if in.IsDefault != nil {
		address.IsDefault = *in.IsDefault
	}
	address.UpdatedAt = s.now()

	if err := s.addresses.Replace(ctx, address); err != nil {
		return models.Address{}, err
	}
	return address, nil
}

func (s *Service) Delete(ctx context.Context, userID primitive.ObjectID, addressID string) error {
	id, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return apperr.Validation("invalid address id")
	}
	return s.addresses.Delete(ctx, id, userID)
}

// SetDefault makes the address the user's single default.
func (s *Service) SetDefault(ctx context.Context, userID primitive.ObjectID, addressID string) (models.Address, error) {
	id, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return models.Address{}, apperr.Validation("invalid address id")
	}
	address, err := s.addresses.FindOwned(ctx, id, userID)
	if err != nil {
		return models.Address{}, err
	}

	if err := s.addresses.UnsetDefaults(ctx, userID); err != nil {
		return models.Address{}, err
	}
	address.IsDefault = true
	address.UpdatedAt = s.now()
	if err := s.addresses.Replace(ctx, address); err != nil {
		return models.Address{}, err
	}
	return address, nil
}

// AdminView resolves owner emails for the admin listing.
type AdminView struct {
	models.Address
	UserEmail string `json:"userEmail,omitempty"`
}

func (s *Service) All(ctx context.Context) ([]AdminView, error) {
	all, err := s.addresses.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminView, 0, len(all))
	for _, a := range all {
		av := AdminView{Address: a}
		if u, err := s.users.FindByID(ctx, a.UserId); err == nil {
			av.UserEmail = u.Email
		}
		out = append(out, av)
	}
	return out, nil
}
