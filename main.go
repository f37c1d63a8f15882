package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/monupal1122/grocery-backend/configs"
	addressController "github.com/monupal1122/grocery-backend/controllers/addresses"
	authController "github.com/monupal1122/grocery-backend/controllers/auth"
	bannerController "github.com/monupal1122/grocery-backend/controllers/banners"
	cartController "github.com/monupal1122/grocery-backend/controllers/cart"
	catalogController "github.com/monupal1122/grocery-backend/controllers/catalog"
	orderController "github.com/monupal1122/grocery-backend/controllers/orders"
	paymentController "github.com/monupal1122/grocery-backend/controllers/payment"
	profileController "github.com/monupal1122/grocery-backend/controllers/profile"
	"github.com/monupal1122/grocery-backend/notify"
	"github.com/monupal1122/grocery-backend/payment"
	"github.com/monupal1122/grocery-backend/routes"
	"github.com/monupal1122/grocery-backend/services/addresses"
	"github.com/monupal1122/grocery-backend/services/auth"
	"github.com/monupal1122/grocery-backend/services/cart"
	"github.com/monupal1122/grocery-backend/services/orders"
	"github.com/monupal1122/grocery-backend/store"
)

func main() {
	configs.Load()

	client := configs.ConnectDB()
	db := client.Database(configs.EnvMongoDB())
	st := store.NewMongo(db)

	mailer := &notify.SMTPMailer{
		Host: configs.EnvSMTPHost(),
		Port: configs.EnvSMTPPort(),
		User: configs.EnvSMTPUser(),
		Pass: configs.EnvSMTPPass(),
		From: configs.EnvSMTPFrom(),
	}
	queue := notify.NewQueue(mailer, 128)
	defer queue.Close()

	gateway := payment.NewGateway(configs.EnvRazorpayKeyId(), configs.EnvRazorpayKeySecret())

	authSvc := auth.NewService(st, mailer, auth.Config{
		JWTSecret:         configs.EnvJWTSecret(),
		AdminEmail:        configs.EnvAdminEmail(),
		AdminPasswordHash: configs.EnvAdminPasswordHash(),
	})
	cartSvc := cart.NewService(st)
	addressSvc := addresses.NewService(st)
	orderSvc := orders.NewService(st, queue)

	app := fiber.New()

	routes.UserRoutes(app, authController.New(authSvc))
	routes.CartRoutes(app, cartController.New(cartSvc))
	routes.AddressRoutes(app, addressController.New(addressSvc))
	routes.OrderRoutes(app, orderController.New(orderSvc))
	routes.CatalogRoutes(app, catalogController.New(st))
	routes.BannerRoutes(app, bannerController.New(st))
	routes.PaymentRoutes(app, paymentController.New(gateway))
	routes.ProfileRoutes(app, profileController.New(st))

	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		log.Fatal(err)
	}
}
