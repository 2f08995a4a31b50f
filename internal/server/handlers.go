package server

//
// handlers.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/model"
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

type catalogHandlers struct {
	podcastsSrv *service.PodcastsSrv
	episodesSrv *service.EpisodesSrv
	syncSrv     *service.SyncSrv
}

func (h *catalogHandlers) routes(router chi.Router) {
	router.Get("/podcasts", h.listPodcasts)
	router.Get("/podcasts/{podcastID}/episodes", h.listEpisodes)
	router.Post("/sync", h.triggerSync)
}

type podcastView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	SortTitle string `json:"sort_title"`
	URL       string `json:"url"`
	Episodes  int    `json:"episodes"`
}

func (h *catalogHandlers) listPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := h.podcastsSrv.GetPodcasts(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	view := make([]podcastView, len(podcasts))
	for idx := range podcasts {
		p := &podcasts[idx]
		view[idx] = podcastView{
			ID:        p.ID,
			Title:     p.Title,
			SortTitle: p.SortTitle(),
			URL:       p.URL,
			Episodes:  len(p.Episodes),
		}
	}

	render.JSON(w, r, view)
}

type episodeView struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Duration string  `json:"duration"`
	Played   bool    `json:"played"`
	File     *string `json:"file,omitempty"`
}

func (h *catalogHandlers) listEpisodes(w http.ResponseWriter, r *http.Request) {
	podcastid, err := strconv.ParseInt(chi.URLParam(r, "podcastID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid podcast id", http.StatusBadRequest)

		return
	}

	includeHidden := r.URL.Query().Get("hidden") == "1"

	episodes, err := h.episodesSrv.GetEpisodes(r.Context(), podcastid, includeHidden)
	if err != nil {
		renderError(w, r, err)

		return
	}

	view := make([]episodeView, len(episodes))
	for idx := range episodes {
		e := &episodes[idx]
		view[idx] = episodeView{
			ID:       e.ID,
			Title:    e.Title,
			URL:      e.URL,
			Duration: e.FormatDuration(),
			Played:   e.Played,
			File:     e.File,
		}
	}

	render.JSON(w, r, view)
}

type syncView struct {
	Added   int          `json:"added"`
	Updated int          `json:"updated"`
	Failed  []model.Feed `json:"failed,omitempty"`
}

func (h *catalogHandlers) triggerSync(w http.ResponseWriter, r *http.Request) {
	summary, err := h.syncSrv.RefreshAll(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	render.JSON(w, r, syncView{
		Added:   summary.Added,
		Updated: summary.Updated,
		Failed:  summary.Failed,
	})
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	log.Ctx(r.Context()).Error().Err(err).Msg("request failed")

	msg := aerr.GetUserMessageOr(err, "internal error")
	http.Error(w, msg, http.StatusInternalServerError)
}

func newMetricsHandler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{DisableCompression: true}),
	)
}
