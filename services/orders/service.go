// Package orders implements the order placement and status transition
// workflow over cart, address, catalog and order records.
package orders

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/store"
)

// Notifier is the gateway for order emails. Calls are fire-and-forget; a lost
// notification never fails the operation that triggered it.
type Notifier interface {
	OrderConfirmation(order models.Order, user models.User, address models.Address)
	OrderStatusUpdate(order models.Order, user models.User, address models.Address, oldStatus, newStatus string)
}

type Service struct {
	orders    store.Orders
	addresses store.Addresses
	products  store.Products
	carts     store.Carts
	users     store.Users
	notifier  Notifier
	now       func() time.Time
}

func NewService(st *store.Store, notifier Notifier) *Service {
	return &Service{
		orders:    st.Orders,
		addresses: st.Addresses,
		products:  st.Products,
		carts:     st.Carts,
		users:     st.Users,
		notifier:  notifier,
		now:       time.Now,
	}
}

type ItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

type CreateInput struct {
	AddressID     string      `json:"addressId"`
	Items         []ItemInput `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	DeliveryTime  string      `json:"deliveryTime"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentID     string      `json:"paymentId"`
}

// Create places an order: validates address ownership, snapshots product
// prices into the items, persists, then clears the cart and queues a
// confirmation mail as isolated best-effort steps.
func (s *Service) Create(ctx context.Context, userID primitive.ObjectID, in CreateInput) (models.Order, error) {
	if in.AddressID == "" || len(in.Items) == 0 {
		return models.Order{}, apperr.Validation("address and items are required")
	}
	addressID, err := primitive.ObjectIDFromHex(in.AddressID)
	if err != nil {
		return models.Order{}, apperr.Validation("invalid address id")
	}
	if in.PaymentMethod != "" && !models.ValidPaymentMethod(in.PaymentMethod) {
		return models.Order{}, apperr.Validation("invalid payment method %q", in.PaymentMethod)
	}

	address, err := s.addresses.FindOwned(ctx, addressID, userID)
	if err != nil {
		return models.Order{}, err
	}

	// Snapshot prices. A product missing from the catalog is skipped from
	// the total but its line is still stored (tolerant degradation).
	items := make([]models.OrderItem, 0, len(in.Items))
	var calculatedTotal float64
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return models.Order{}, apperr.Validation("item quantity must be at least 1")
		}
		productID, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return models.Order{}, apperr.Validation("invalid product id %q", it.ProductID)
		}

		item := models.OrderItem{
			ProductId: productID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		}
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			log.Printf("orders: product not found: %s, skipping validation", it.ProductID)
		} else {
			item.Price = product.Price
			if item.Image == "" {
				item.Image = product.FirstImage()
			}
			calculatedTotal += product.Price * float64(it.Quantity)
		}
		items = append(items, item)
	}

	// The caller-supplied total wins over the computed one. Divergence is
	// logged so the trust boundary stays observable.
	total := in.TotalAmount
	if total == 0 {
		total = calculatedTotal
	} else if total != calculatedTotal {
		log.Printf("orders: caller total %.2f differs from calculated %.2f for user %s",
			total, calculatedTotal, userID.Hex())
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCashOnDelivery
	}
	paymentStatus := models.PaymentPending
	if paymentMethod == models.PaymentOnline {
		paymentStatus = models.PaymentPaid
	}

	now := s.now()
	order := models.Order{
		Id:             primitive.NewObjectID(),
		UserId:         userID,
		AddressId:      addressID,
		Items:          items,
		TotalAmount:    total,
		PaymentMethod:  paymentMethod,
		PaymentId:      in.PaymentID,
		PaymentStatus:  paymentStatus,
		DeliveryStatus: models.DeliveryPending,
		DeliveryTime:   in.DeliveryTime,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return models.Order{}, err
	}

	// Best effort from here: the order is placed.
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		log.Printf("orders: failed to clear cart after order %s: %v", order.Id.Hex(), err)
	}

	if user, err := s.users.FindByID(ctx, userID); err != nil {
		log.Printf("orders: cannot resolve user %s for confirmation mail: %v", userID.Hex(), err)
	} else {
		s.notifier.OrderConfirmation(order, user, address)
	}

	return order, nil
}

type StatusUpdate struct {
	PaymentStatus  *string `json:"paymentStatus"`
	DeliveryStatus *string `json:"deliveryStatus"`
}

// UpdateStatus applies a partial status update. Absent fields stay untouched.
// A delivery status that actually changed queues exactly one notification.
func (s *Service) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, up StatusUpdate) (models.Order, error) {
	if up.PaymentStatus != nil && !models.ValidPaymentStatus(*up.PaymentStatus) {
		return models.Order{}, apperr.Validation("invalid payment status %q", *up.PaymentStatus)
	}
	if up.DeliveryStatus != nil && !models.ValidDeliveryStatus(*up.DeliveryStatus) {
		return models.Order{}, apperr.Validation("invalid delivery status %q", *up.DeliveryStatus)
	}

	existing, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	oldDeliveryStatus := existing.DeliveryStatus

	order, err := s.orders.UpdateStatus(ctx, orderID, up.PaymentStatus, up.DeliveryStatus)
	if err != nil {
		return models.Order{}, err
	}

	if up.DeliveryStatus != nil && *up.DeliveryStatus != oldDeliveryStatus {
		s.notifyStatusChange(ctx, order, oldDeliveryStatus, *up.DeliveryStatus)
	}
	return order, nil
}

func (s *Service) notifyStatusChange(ctx context.Context, order models.Order, oldStatus, newStatus string) {
	user, err := s.users.FindByID(ctx, order.UserId)
	if err != nil {
		log.Printf("orders: cannot resolve user %s for status mail: %v", order.UserId.Hex(), err)
		return
	}
	address, err := s.addresses.FindOwned(ctx, order.AddressId, order.UserId)
	if err != nil {
		// The address may have been deleted since the order was placed.
		address = models.Address{}
	}
	s.notifier.OrderStatusUpdate(order, user, address, oldStatus, newStatus)
}

func (s *Service) Get(ctx context.Context, orderID primitive.ObjectID) (models.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

// ListByUser returns the user's orders newest first.
func (s *Service) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ItemDetail is an order line with its current catalog product attached, when
// the product still exists.
type ItemDetail struct {
	models.OrderItem
	Product *models.Product `json:"product,omitempty"`
}

// Detail is an order with its address and per-line products resolved for
// display.
type Detail struct {
	models.Order
	Address *models.Address `json:"address,omitempty"`
	Items   []ItemDetail    `json:"items"`
}

func (s *Service) detail(ctx context.Context, o models.Order) Detail {
	d := Detail{Order: o, Items: make([]ItemDetail, 0, len(o.Items))}
	if a, err := s.addresses.FindOwned(ctx, o.AddressId, o.UserId); err == nil {
		d.Address = &a
	}
	for _, item := range o.Items {
		id := ItemDetail{OrderItem: item}
		if p, err := s.products.FindByID(ctx, item.ProductId); err == nil {
			id.Product = &p
		}
		d.Items = append(d.Items, id)
	}
	return d
}

// ListByUserDetailed is ListByUser with addresses and products resolved.
// Missing references resolve to nil rather than failing the listing.
func (s *Service) ListByUserDetailed(ctx context.Context, userID primitive.ObjectID) ([]Detail, error) {
	list, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Detail, 0, len(list))
	for _, o := range list {
		out = append(out, s.detail(ctx, o))
	}
	return out, nil
}

func (s *Service) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

func (s *Service) Delete(ctx context.Context, orderID primitive.ObjectID) error {
	return s.orders.Delete(ctx, orderID)
}

// BulkUpdateByUser moves every order of the user in fromStatus to toStatus
// and reports the modified count.
func (s *Service) BulkUpdateByUser(ctx context.Context, userID primitive.ObjectID, fromStatus, toStatus string) (int64, error) {
	if !models.ValidDeliveryStatus(fromStatus) || !models.ValidDeliveryStatus(toStatus) {
		return 0, apperr.Validation("invalid delivery status")
	}
	return s.orders.BulkUpdateDelivery(ctx, userID, fromStatus, toStatus)
}

// UserSummary is the admin per-user aggregation: counters per delivery status
// plus totals, recomputed from scratch on every call.
type UserSummary struct {
	User                 UserRef        `json:"user"`
	Orders               []models.Order `json:"orders"`
	TotalOrders          int            `json:"totalOrders"`
	TotalAmount          float64        `json:"totalAmount"`
	PendingOrders        int            `json:"pendingOrders"`
	ConfirmedOrders      int            `json:"confirmedOrders"`
	OutForDeliveryOrders int            `json:"outForDeliveryOrders"`
	DeliveredOrders      int            `json:"deliveredOrders"`
	CancelledOrders      int            `json:"cancelledOrders"`
}

type UserRef struct {
	Id       primitive.ObjectID `json:"id"`
	Username string             `json:"username,omitempty"`
	Email    string             `json:"email,omitempty"`
}

// GroupedByUser fetches every order and groups client-side by user.
func (s *Service) GroupedByUser(ctx context.Context) ([]UserSummary, error) {
	all, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	byUser := map[primitive.ObjectID]*UserSummary{}
	orderOfUsers := make([]primitive.ObjectID, 0)
	for _, o := range all {
		summary, ok := byUser[o.UserId]
		if !ok {
			ref := UserRef{Id: o.UserId}
			if user, err := s.users.FindByID(ctx, o.UserId); err == nil {
				ref.Username = user.Username
				ref.Email = user.Email
			}
			summary = &UserSummary{User: ref, Orders: []models.Order{}}
			byUser[o.UserId] = summary
			orderOfUsers = append(orderOfUsers, o.UserId)
		}

		summary.Orders = append(summary.Orders, o)
		summary.TotalOrders++
		summary.TotalAmount += o.TotalAmount

		switch o.DeliveryStatus {
		case models.DeliveryPending:
			summary.PendingOrders++
		case models.DeliveryConfirmed:
			summary.ConfirmedOrders++
		case models.DeliveryOutForDelivery:
			summary.OutForDeliveryOrders++
		case models.DeliveryDelivered:
			summary.DeliveredOrders++
		case models.DeliveryCancelled:
			summary.CancelledOrders++
		}
	}

	out := make([]UserSummary, 0, len(orderOfUsers))
	for _, id := range orderOfUsers {
		out = append(out, *byUser[id])
	}
	return out, nil
}
