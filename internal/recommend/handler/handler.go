package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"smartcart-service/internal/config"
	"smartcart-service/internal/fileio"
	"smartcart-service/internal/model"
	"smartcart-service/internal/recommend"
	"smartcart-service/internal/store"
)

// Build rebuilds the model from the corpus under DATA_DIR and saves the
// bundle. Optional form value "sample" subsamples the corpus for the
// co-occurrence pass.
func Build(cfg config.Config, logger zerolog.Logger, st *store.ArtifactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		sample := atoi(r.FormValue("sample"), 0)
		orders, err := model.LoadOrders(cfg.DataDir)
		if err != nil {
			if errors.Is(err, model.ErrMissingInput) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			log.Error().Err(err).Msg("load corpus")
			writeError(w, http.StatusInternalServerError, "load corpus failed")
			return
		}

		art := model.Build(orders, sample)
		if err := st.Save(store.DefaultArtifact, art); err != nil {
			log.Error().Err(err).Msg("save artifacts")
			writeError(w, http.StatusInternalServerError, "save artifacts failed")
			return
		}

		log.Info().
			Int("orders", art.OrderCount).
			Int("items", len(art.Items)).
			Int("sample", sample).
			Dur("elapsed", time.Since(start)).
			Msg("model built")
		writeJSON(w, http.StatusOK, map[string]any{
			"orders": art.OrderCount,
			"items":  len(art.Items),
			"sample": sample,
		})
	}
}

type recommendRequest struct {
	Items []string `json:"items"`
}

type recommendResponse struct {
	Cart            []string           `json:"cart"`
	Recommendations []recommend.Scored `json:"recommendations"`
}

// Recommend resolves the submitted item names against the catalog and
// returns the ranked suggestions. 409 when no model has been built yet.
func Recommend(cfg config.Config, logger zerolog.Logger, st *store.ArtifactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)
		defer r.Body.Close()

		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		if len(req.Items) > 3 {
			writeError(w, http.StatusBadRequest, "cart holds at most 3 items")
			return
		}

		art, err := st.Load(store.DefaultArtifact)
		if err != nil {
			if errors.Is(err, store.ErrArtifactNotFound) {
				writeError(w, http.StatusConflict, "model not ready")
				return
			}
			log.Error().Err(err).Msg("load artifacts")
			writeError(w, http.StatusInternalServerError, "load artifacts failed")
			return
		}

		cart := recommend.ResolveCart(req.Items, art, cfg.MatchCutoff)
		recs, err := recommend.Recommend(cart, art, engineOptions(cfg))
		if err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}

		log.Info().Strs("cart", cart).Int("recs", len(recs)).Msg("recommend")
		writeJSON(w, http.StatusOK, recommendResponse{Cart: cart, Recommendations: recs})
	}
}

// Batch accepts a multipart upload ("file": csv/xls/xlsx with item1..item3
// columns, optional "header_row") and returns the rows with the
// recommendation columns filled. format=csv streams CSV instead of JSON.
func Batch(cfg config.Config, logger zerolog.Logger, st *store.ArtifactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		rows, err := fileio.ReadAnyMaps(file, header.Filename, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read table: "+err.Error())
			return
		}

		art, err := st.Load(store.DefaultArtifact)
		if err != nil {
			if errors.Is(err, store.ErrArtifactNotFound) {
				writeError(w, http.StatusConflict, "model not ready")
				return
			}
			log.Error().Err(err).Msg("load artifacts")
			writeError(w, http.StatusInternalServerError, "load artifacts failed")
			return
		}

		out, err := recommend.BatchPredict(rows, art, cfg.MatchCutoff, engineOptions(cfg))
		if err != nil {
			log.Error().Err(err).Msg("batch predict")
			writeError(w, http.StatusInternalServerError, "batch predict failed")
			return
		}

		log.Info().
			Int("rows", len(out)).
			Dur("elapsed", time.Since(start)).
			Msg("batch done")

		if r.FormValue("format") == "csv" {
			headers := append(append([]string{}, recommend.ItemColumns...), recommend.RecommendationColumns...)
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="recommendations.csv"`)
			if err := fileio.WriteCSV(w, headers, out); err != nil {
				log.Error().Err(err).Msg("write csv")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"rows": out})
	}
}

func engineOptions(cfg config.Config) recommend.Options {
	opts := recommend.DefaultOptions()
	if cfg.TopN > 0 {
		opts.TopN = cfg.TopN
	}
	if cfg.BoostFactor > 0 {
		opts.BoostFactor = cfg.BoostFactor
	}
	return opts
}

func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
