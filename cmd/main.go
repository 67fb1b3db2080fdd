package main

import (
	"os"

	"github.com/gyanbakery/storefront/config"
	"github.com/gyanbakery/storefront/internal/analytics"
	"github.com/gyanbakery/storefront/internal/app"
	"github.com/gyanbakery/storefront/internal/cart"
	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/content"
	"github.com/gyanbakery/storefront/internal/media"
	"github.com/gyanbakery/storefront/internal/order"
	"github.com/gyanbakery/storefront/internal/reservation"
	"github.com/gyanbakery/storefront/internal/user"
	"github.com/gyanbakery/storefront/pkg/kvstore"
	"github.com/gyanbakery/storefront/pkg/logger"
)

func main() {
	log := logger.NewLogger("debug", &logger.MainLogHook{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment(cfg.Store.Backend == "db" && cfg.Store.Driver == "postgres")
	if err != nil {
		log.Fatalf(err.Error())
	}

	storeLog := logger.NewLogger(env.LogLvl, &kvstore.StoreLogHook{})
	store := app.OpenStore(cfg.Store, env, storeLog)

	appLog := logger.NewLogger(env.LogLvl, &app.AppLogHook{})
	app.EnsureSeeded(store, env, appLog)

	decoder := media.NewDecoder(logger.NewLogger(env.LogLvl, &media.MediaLogHook{}))
	confirm := app.NewConsoleConfirmer(os.Stdin, os.Stdout)

	catalogLog := logger.NewLogger(env.LogLvl, &catalog.CatalogLogHook{})
	products := catalog.NewRepository(store, catalog.AdminSeed)
	productCtl := catalog.NewController(products, decoder, confirm, catalogLog)

	orderLog := logger.NewLogger(env.LogLvl, &order.OrderLogHook{})
	orders := order.NewRepository(store)
	orderCtl := order.NewController(orders, confirm, orderLog)

	cartLog := logger.NewLogger(env.LogLvl, &cart.CartLogHook{})
	carts := cart.NewRepository(store)
	cartCtl := cart.NewController(carts, orders, cartLog)

	userLog := logger.NewLogger(env.LogLvl, &user.UserLogHook{})
	users := user.NewRepository(store, func() []user.User { return user.Seed(env.AdminName, env.AdminEmail) })
	userCtl := user.NewController(users, confirm, userLog)

	contentLog := logger.NewLogger(env.LogLvl, &content.ContentLogHook{})
	galleryCtl := content.NewGalleryController(
		content.NewFeed(store, content.GalleryKey, content.GallerySeed), decoder, confirm, contentLog)
	blogCtl := content.NewBlogController(
		content.NewFeed(store, content.BlogsKey, content.BlogSeed), decoder, confirm, contentLog)
	reviewCtl := content.NewReviewController(
		content.NewFeed(store, content.ReviewsKey, content.ReviewSeed), confirm, contentLog)
	videoCtl := content.NewVideoController(
		content.NewFeed(store, content.VideosKey, content.VideoSeed), decoder, confirm, contentLog)

	reservationLog := logger.NewLogger(env.LogLvl, &reservation.ReservationLogHook{})
	reservations := reservation.NewRepository(store, reservationLog)

	render := app.NewConsoleRenderer(os.Stdout)

	orderRows := orderCtl.List()
	render.RenderStats(analytics.ComputeStats(orders.List()))
	render.RenderOrders(orderRows)
	render.RenderProducts(productCtl.List())
	render.RenderSeries("Order value (last 7)", analytics.OrderSeries(orders.List()))
	render.RenderSeries("Revenue by category", analytics.RevenueByCategory(orders.List(), products.List()))

	log.Infof("catalog: %d products, cart badge %q, gallery %d, blogs %d, reviews %d, videos %d, users %d, reservations %d",
		len(productCtl.List()), cartCtl.Badge(), len(galleryCtl.List()), len(blogCtl.List()),
		len(reviewCtl.List()), len(videoCtl.List()), len(userCtl.List()), len(reservations.List()))
}
