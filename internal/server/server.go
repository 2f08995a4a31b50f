// Package server expose a small status http server: health, metrics and
// a read-only catalog view.
package server

//
// server.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/db"
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

type Configuration struct {
	Address       string
	EnableMetrics bool
}

const (
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 60 * time.Second
	defaultMaxHeaderBytes = 1 << 16
)

type Server struct {
	router chi.Router
	conf   *Configuration
	s      *http.Server
}

func New(injector do.Injector) (*Server, error) {
	conf := do.MustInvoke[*Configuration](injector)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.CleanPath)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(newRecoverMiddleware)

	router.Get("/health", newHealthChecker(do.MustInvoke[*db.Database](injector)))

	if conf.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", newMetricsHandler())
	}

	handlers := &catalogHandlers{
		podcastsSrv: do.MustInvoke[*service.PodcastsSrv](injector),
		episodesSrv: do.MustInvoke[*service.EpisodesSrv](injector),
		syncSrv:     do.MustInvoke[*service.SyncSrv](injector),
	}
	handlers.routes(router)

	return &Server{
		router: router,
		conf:   conf,
		s: &http.Server{
			Addr:           conf.Address,
			Handler:        router,
			ReadTimeout:    defaultReadTimeout,
			WriteTimeout:   defaultWriteTimeout,
			MaxHeaderBytes: defaultMaxHeaderBytes,
		},
	}, nil
}

func (s *Server) Start(ctx context.Context) error {
	logger := log.Ctx(ctx)

	listener, err := net.Listen("tcp", s.conf.Address)
	if err != nil {
		return aerr.Wrapf(err, "start listen error")
	}

	logger.Log().Msgf("Server: listen on address=%s", s.conf.Address)

	go func() {
		if err := s.s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msgf("Server: serve error: %s", err)
		}
	}()

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger := log.Ctx(ctx)
	logger.Debug().Msg("Server: stopping...")

	if err := s.s.Shutdown(ctx); err != nil {
		return aerr.Wrapf(err, "shutdown server failed")
	}

	logger.Debug().Msg("Server: stopped")

	return nil
}

//-------------------------------------------------------------

func newHealthChecker(database *db.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.HealthCheck(r.Context()); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func newRecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log.Ctx(r.Context()).Error().Interface("panic", p).Msg("handler panic")
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
