package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gigmarket/billing-service/internal/config"
	"github.com/gigmarket/billing-service/internal/interaction"
	"github.com/gigmarket/billing-service/internal/restapi/middleware"
	v1contracts "github.com/gigmarket/billing-service/internal/restapi/v1/contracts"
	v1health "github.com/gigmarket/billing-service/internal/restapi/v1/health"
	v1invoices "github.com/gigmarket/billing-service/internal/restapi/v1/invoices"
	v1wallets "github.com/gigmarket/billing-service/internal/restapi/v1/wallets"
)

func NewServer(ctx context.Context, conf *config.ServerConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

func CreateRouter(i interaction.Interactor, conf *config.SecurityConfig) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())
	router.Use(middleware.CorsHeadersMiddleware(conf))

	setupV1Routes(router, i, conf)

	return router
}

func setupV1Routes(router chi.Router, i interaction.Interactor, conf *config.SecurityConfig) {
	v1health.Create(router)

	router.Route("/api/rest/v1", func(r chi.Router) {
		r.Use(middleware.CheckRequestAuthorization(conf))
		v1contracts.Create(r, i)
		v1invoices.Create(r, i)
		v1wallets.Create(r, i)
	})
}
