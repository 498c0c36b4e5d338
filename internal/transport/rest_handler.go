// Package transport exposes the reputation API over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const (
	defaultHistoryPeriod  = "30d"
	defaultStatsPeriod    = "30d"
	defaultActivityPeriod = "30d"
	defaultFeaturePeriod  = "180d"
	maxBodyBytes          = 1 << 20
)

// RESTHandler serves the score, wallet and transaction routes.
type RESTHandler struct {
	scores       ScoreService
	wallets      WalletService
	transactions TransactionService
	features     FeatureExtractor
	logger       *zap.Logger
}

// NewRESTHandler returns a RESTHandler instance.
func NewRESTHandler(scores ScoreService, wallets WalletService, transactions TransactionService, features FeatureExtractor, logger *zap.Logger) *RESTHandler {
	return &RESTHandler{
		scores:       scores,
		wallets:      wallets,
		transactions: transactions,
		features:     features,
		logger:       logger.Named("rest"),
	}
}

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type route struct {
	method  string
	pattern string
	handler gwruntime.HandlerFunc
}

// Register mounts every route on mux.
func (h *RESTHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []route{
		{http.MethodGet, "/v1/scores/{address}", h.getScore},
		{http.MethodGet, "/v1/scores/{address}/enhanced", h.getEnhancedScore},
		{http.MethodGet, "/v1/scores/history/{address}", h.getScoreHistory},
		{http.MethodPost, "/v1/scores/calculate", h.calculateScore},
		{http.MethodPost, "/v1/scores/recalculate-all", h.recalculateAll},
		{http.MethodPut, "/v1/scores/config", h.updateScoreConfig},
		{http.MethodGet, "/v1/wallets/{address}", h.getWallet},
		{http.MethodPost, "/v1/wallets/{address}/register", h.registerWallet},
		{http.MethodGet, "/v1/wallets/{address}/transactions", h.getWalletTransactions},
		{http.MethodGet, "/v1/wallets/{address}/stats", h.getTransactionStats},
		{http.MethodGet, "/v1/wallets/{address}/features", h.getFeatures},
		{http.MethodPost, "/v1/wallets/{address}/sync", h.syncWallet},
		{http.MethodGet, "/v1/transactions/{hash}", h.getTransaction},
		{http.MethodGet, "/v1/network/activity", h.getNetworkActivity},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (h *RESTHandler) getScore(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.scores.GetReputationScore(r.Context(), params["address"])
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) getEnhancedScore(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.scores.GetEnhancedReputationScore(r.Context(), params["address"])
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) getScoreHistory(w http.ResponseWriter, r *http.Request, params map[string]string) {
	period, err := queryPeriod(r, defaultHistoryPeriod)
	if err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	res, err := h.scores.GetScoreHistory(r.Context(), params["address"], period)
	h.reply(w, r, http.StatusOK, res, err)
}

type calculateRequest struct {
	WalletAddress string `json:"walletAddress"`
	ForceRefresh  bool   `json:"forceRefresh"`
}

func (h *RESTHandler) calculateScore(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req calculateRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	if req.WalletAddress == "" {
		h.reply(w, r, 0, nil, model.NewValidationError("walletAddress", "", "is required"))
		return
	}
	res, err := h.scores.CalculateReputationScore(r.Context(), req.WalletAddress, req.ForceRefresh)
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) recalculateAll(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	res, err := h.scores.RecalculateAllScores(r.Context())
	h.reply(w, r, http.StatusOK, res, err)
}

type scoreConfigRequest struct {
	Weights model.ScoreWeights `json:"weights"`
}

func (h *RESTHandler) updateScoreConfig(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req scoreConfigRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	if len(req.Weights) == 0 {
		h.reply(w, r, 0, nil, model.NewValidationError("weights", "", "is required"))
		return
	}
	res, err := h.scores.UpdateScoreWeights(r.Context(), req.Weights)
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) getWallet(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.wallets.GetWalletInfo(r.Context(), params["address"])
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) registerWallet(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.wallets.RegisterWallet(r.Context(), params["address"])
	h.reply(w, r, http.StatusCreated, res, err)
}

func (h *RESTHandler) getWalletTransactions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	q := r.URL.Query()
	page, err := queryInt(q.Get("page"), "page", 1)
	if err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	limit, err := queryInt(q.Get("limit"), "limit", 20)
	if err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	order := model.SortDesc
	if s := q.Get("sort"); s != "" {
		order = model.SortOrder(s)
	}
	res, err := h.transactions.GetWalletTransactions(r.Context(), params["address"], page, limit, order)
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) getTransactionStats(w http.ResponseWriter, r *http.Request, params map[string]string) {
	period, err := queryPeriod(r, defaultStatsPeriod)
	if err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	res, err := h.transactions.GetTransactionStats(r.Context(), params["address"], period)
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) getFeatures(w http.ResponseWriter, r *http.Request, params map[string]string) {
	period, err := queryPeriod(r, defaultFeaturePeriod)
	if err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	res, err := h.features.ExtractFeatures(r.Context(), params["address"], period)
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) syncWallet(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if _, err := model.NormalizeAddress(params["address"]); err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	res := h.transactions.SyncWalletTransactions(r.Context(), params["address"])
	if !res.Success {
		writeJSON(w, http.StatusBadGateway, response{Success: false, Data: res, Message: res.Message})
		return
	}
	h.reply(w, r, http.StatusOK, res, nil)
}

func (h *RESTHandler) getTransaction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.transactions.GetTransaction(r.Context(), params["hash"])
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) getNetworkActivity(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	period, err := queryPeriod(r, defaultActivityPeriod)
	if err != nil {
		h.reply(w, r, 0, nil, err)
		return
	}
	res, err := h.transactions.GetNetworkActivity(r.Context(), period)
	h.reply(w, r, http.StatusOK, res, err)
}

func (h *RESTHandler) reply(w http.ResponseWriter, r *http.Request, status int, data any, err error) {
	if err == nil {
		writeJSON(w, status, response{Success: true, Data: data})
		return
	}

	status = statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		message = "internal server error"
	}
	writeJSON(w, status, response{Success: false, Message: message})
}

func statusOf(err error) int {
	switch {
	case model.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return model.NewValidationError("body", "", err.Error())
	}
	return nil
}

func queryPeriod(r *http.Request, fallback string) (model.Period, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		raw = fallback
	}
	return model.ParsePeriod(raw)
}

func queryInt(raw, field string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewValidationError(field, raw, "must be an integer")
	}
	return n, nil
}
