package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
)

// NewMongo builds the store set over one database.
func NewMongo(db *mongo.Database) *Store {
	return &Store{
		Users:         &mongoUsers{col: db.Collection("users")},
		Profiles:      &mongoProfiles{col: db.Collection("profiles")},
		Categories:    &mongoCategories{col: db.Collection("categories")},
		Subcategories: &mongoSubcategories{col: db.Collection("subcategories")},
		Products:      &mongoProducts{col: db.Collection("products")},
		Carts:         &mongoCarts{col: db.Collection("carts")},
		Addresses:     &mongoAddresses{col: db.Collection("addresses")},
		Orders:        &mongoOrders{col: db.Collection("orders")},
		Banners:       &mongoBanners{col: db.Collection("banners")},
	}
}

func mapErr(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("%s not found", what)
	}
	return err
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)
	out := make([]T, 0)
	for cursor.Next(ctx) {
		var v T
		if err := cursor.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cursor.Err()
}

// --- users ---

type mongoUsers struct{ col *mongo.Collection }

func (s *mongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, mapErr(err, "user")
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, mapErr(err, "user")
}

func (s *mongoUsers) Insert(ctx context.Context, u models.User) error {
	_, err := s.col.InsertOne(ctx, u)
	return err
}

func (s *mongoUsers) SetOTP(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"otp": code, "otpExpires": expires, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (s *mongoUsers) ClearOTP(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$unset": bson.M{"otp": "", "otpExpires": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (s *mongoUsers) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](ctx, cursor)
}

// --- profiles ---

type mongoProfiles struct{ col *mongo.Collection }

func (s *mongoProfiles) FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Profile, error) {
	var p models.Profile
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	return p, mapErr(err, "profile")
}

func (s *mongoProfiles) Upsert(ctx context.Context, p models.Profile) (models.Profile, error) {
	after := options.After
	var out models.Profile
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"userId": p.UserId},
		bson.M{
			"$set": bson.M{
				"fullName":     p.FullName,
				"phoneNumber":  p.PhoneNumber,
				"gender":       p.Gender,
				"dateOfBirth":  p.DateOfBirth,
				"profileImage": p.ProfileImage,
				"bio":          p.Bio,
				"email":        p.Email,
				"updatedAt":    p.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"userId":     p.UserId,
				"isVerified": false,
				"createdAt":  p.CreatedAt,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	).Decode(&out)
	return out, err
}

func (s *mongoProfiles) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("profile not found")
	}
	return nil
}

func (s *mongoProfiles) All(ctx context.Context) ([]models.Profile, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Profile](ctx, cursor)
}

// --- categories ---

type mongoCategories struct{ col *mongo.Collection }

func (s *mongoCategories) Insert(ctx context.Context, c models.Category) error {
	_, err := s.col.InsertOne(ctx, c)
	return err
}

func (s *mongoCategories) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var c models.Category
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, mapErr(err, "category")
}

func (s *mongoCategories) All(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Category](ctx, cursor)
}

func (s *mongoCategories) Update(ctx context.Context, c models.Category) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": c.Id}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("category not found")
	}
	return nil
}

func (s *mongoCategories) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("category not found")
	}
	return nil
}

// --- subcategories ---

type mongoSubcategories struct{ col *mongo.Collection }

func (s *mongoSubcategories) Insert(ctx context.Context, sc models.Subcategory) error {
	_, err := s.col.InsertOne(ctx, sc)
	return err
}

func (s *mongoSubcategories) FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error) {
	var sc models.Subcategory
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&sc)
	return sc, mapErr(err, "subcategory")
}

func (s *mongoSubcategories) All(ctx context.Context) ([]models.Subcategory, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Subcategory](ctx, cursor)
}

func (s *mongoSubcategories) ListByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Subcategory, error) {
	cursor, err := s.col.Find(ctx, bson.M{"category": categoryID})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Subcategory](ctx, cursor)
}

func (s *mongoSubcategories) Update(ctx context.Context, sc models.Subcategory) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": sc.Id}, sc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("subcategory not found")
	}
	return nil
}

func (s *mongoSubcategories) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("subcategory not found")
	}
	return nil
}

// --- products ---

type mongoProducts struct{ col *mongo.Collection }

func (s *mongoProducts) Insert(ctx context.Context, p models.Product) error {
	_, err := s.col.InsertOne(ctx, p)
	return err
}

func (s *mongoProducts) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, mapErr(err, "product")
}

func (s *mongoProducts) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Product](ctx, cursor)
}

func (s *mongoProducts) Update(ctx context.Context, p models.Product) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": p.Id}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("product not found")
	}
	return nil
}

func (s *mongoProducts) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("product not found")
	}
	return nil
}

// --- carts ---

type mongoCarts struct{ col *mongo.Collection }

func (s *mongoCarts) FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	var c models.Cart
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	return c, mapErr(err, "cart")
}

func (s *mongoCarts) Upsert(ctx context.Context, c models.Cart) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"userId": c.UserId},
		bson.M{
			"$set": bson.M{"items": c.Items, "updatedAt": c.UpdatedAt},
			"$setOnInsert": bson.M{
				"_id":       c.Id,
				"userId":    c.UserId,
				"createdAt": c.CreatedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *mongoCarts) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}

func (s *mongoCarts) All(ctx context.Context) ([]models.Cart, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Cart](ctx, cursor)
}

// --- addresses ---

type mongoAddresses struct{ col *mongo.Collection }

func (s *mongoAddresses) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (models.Address, error) {
	var a models.Address
	err := s.col.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&a)
	return a, mapErr(err, "address")
}

func (s *mongoAddresses) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Address](ctx, cursor)
}

func (s *mongoAddresses) Insert(ctx context.Context, a models.Address) error {
	_, err := s.col.InsertOne(ctx, a)
	return err
}

func (s *mongoAddresses) Replace(ctx context.Context, a models.Address) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": a.Id, "userId": a.UserId}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("address not found")
	}
	return nil
}

func (s *mongoAddresses) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("address not found")
	}
	return nil
}

func (s *mongoAddresses) UnsetDefaults(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.col.UpdateMany(ctx, bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isDefault": false}})
	return err
}

func (s *mongoAddresses) All(ctx context.Context) ([]models.Address, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Address](ctx, cursor)
}

// --- orders ---

type mongoOrders struct{ col *mongo.Collection }

func (s *mongoOrders) Insert(ctx context.Context, o models.Order) error {
	_, err := s.col.InsertOne(ctx, o)
	return err
}

func (s *mongoOrders) FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var o models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	return o, mapErr(err, "order")
}

func (s *mongoOrders) UpdateStatus(ctx context.Context, id primitive.ObjectID, paymentStatus, deliveryStatus *string) (models.Order, error) {
	set := bson.M{"updatedAt": time.Now()}
	if paymentStatus != nil {
		set["paymentStatus"] = *paymentStatus
	}
	if deliveryStatus != nil {
		set["deliveryStatus"] = *deliveryStatus
	}

	after := options.After
	var out models.Order
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&out)
	return out, mapErr(err, "order")
}

func (s *mongoOrders) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

func (s *mongoOrders) All(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

func (s *mongoOrders) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

func (s *mongoOrders) BulkUpdateDelivery(ctx context.Context, userID primitive.ObjectID, from, to string) (int64, error) {
	res, err := s.col.UpdateMany(ctx,
		bson.M{"userId": userID, "deliveryStatus": from},
		bson.M{"$set": bson.M{"deliveryStatus": to, "updatedAt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// --- banners ---

type mongoBanners struct{ col *mongo.Collection }

func (s *mongoBanners) Insert(ctx context.Context, b models.Banner) error {
	_, err := s.col.InsertOne(ctx, b)
	return err
}

func (s *mongoBanners) ListActive(ctx context.Context, bannerType string) ([]models.Banner, error) {
	filter := bson.M{"isActive": true}
	if bannerType != "" {
		filter["bannerType"] = bannerType
	}
	cursor, err := s.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{
			{Key: "priority", Value: -1},
			{Key: "createdAt", Value: -1},
		}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Banner](ctx, cursor)
}

func (s *mongoBanners) Patch(ctx context.Context, id primitive.ObjectID, p models.BannerPatch) (models.Banner, error) {
	set := bson.M{"updatedAt": time.Now()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.ImageUrl != nil {
		set["imageUrl"] = *p.ImageUrl
	}
	if p.Link != nil {
		set["link"] = *p.Link
	}
	if p.BannerType != nil {
		set["bannerType"] = *p.BannerType
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	if p.Priority != nil {
		set["priority"] = *p.Priority
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}

	after := options.After
	var out models.Banner
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&out)
	return out, mapErr(err, "banner")
}

func (s *mongoBanners) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("banner not found")
	}
	return nil
}
