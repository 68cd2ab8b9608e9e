package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mallkit/cart-service/internal/api/handlers"
	"github.com/mallkit/cart-service/internal/api/middleware"
	"github.com/mallkit/cart-service/internal/repository"
	"github.com/mallkit/cart-service/internal/service"
)

// NewRouter wires repositories, services and handlers onto the HTTP routes.
func NewRouter(db *sql.DB, logger zerolog.Logger) http.Handler {
	memberRepo := repository.NewMemberRepo(db)
	productRepo := repository.NewProductRepo(db)
	cartItemRepo := repository.NewCartItemRepo(db)
	couponRepo := repository.NewCouponRepo(db)
	memberCouponRepo := repository.NewMemberCouponRepo(db)

	memberHandler := handlers.NewMemberHandler(service.NewMemberService(memberRepo))
	productHandler := handlers.NewProductHandler(service.NewProductService(productRepo, cartItemRepo))
	cartHandler := handlers.NewCartHandler(service.NewCartItemService(productRepo, cartItemRepo))
	couponHandler := handlers.NewCouponHandler(couponRepo, service.NewMemberCouponService(couponRepo, memberCouponRepo))

	auth := middleware.BasicAuth(memberRepo)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))

	r.Route("/users", func(r chi.Router) {
		r.Post("/join", memberHandler.Join)
		r.Post("/login", memberHandler.Login)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Get("/{id}", productHandler.Get)
		r.Post("/", productHandler.Create)
		r.Delete("/{id}", productHandler.Remove)
	})

	r.Route("/cart-items", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", cartHandler.List)
		r.Post("/", cartHandler.Add)
		r.Patch("/{id}", cartHandler.UpdateQuantity)
		r.Delete("/", cartHandler.RemoveBulk)
		r.Delete("/{id}", cartHandler.Remove)
	})

	r.Route("/coupons", func(r chi.Router) {
		r.Get("/", couponHandler.List)
		r.With(auth).Post("/{id}", couponHandler.Issue)
	})

	r.Route("/members/coupons", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", couponHandler.MyCoupons)
		r.Post("/{id}/use", couponHandler.Use)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
