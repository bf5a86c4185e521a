package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const defaultAction = "projects"

// Handler action 选择器形式的 JSON 接口
type Handler struct {
	dashboard port.Dashboard
	logger    logrus.FieldLogger
	demoMode  bool
}

// NewRouter 组装路由: GET /api/github?action=... 和 GET /healthz
func NewRouter(dashboard port.Dashboard, logger logrus.FieldLogger, demoMode bool) http.Handler {
	h := &Handler{dashboard: dashboard, logger: logger, demoMode: demoMode}

	r := chi.NewRouter()
	r.Use(recoverer(logger))
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.Health)
	r.Get("/api/github", h.GitHub)
	return r
}

// Health 存活检查
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"demo_mode": h.demoMode,
	})
}

// GitHub 按 action 分发；缺省为 projects
func (h *Handler) GitHub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	action := query.Get("action")
	if action == "" {
		action = defaultAction
	}

	var (
		payload any
		err     error
	)
	switch action {
	case "projects":
		payload, err = h.dashboard.Projects(ctx)
	case "discover":
		payload, err = h.dashboard.Discoveries(ctx)
	case "trending":
		payload, err = h.dashboard.Trending(ctx)
	case "search":
		payload, err = h.dashboard.Search(ctx, parseSearchFilters(query))
	case "analytics":
		payload, err = h.dashboard.Analytics(ctx, query.Get("owner"), query.Get("repo"))
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid action"})
		return
	}

	if err != nil {
		h.writeError(w, action, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// parseSearchFilters 解析搜索参数；数字参数不合法时按未提供处理
func parseSearchFilters(query map[string][]string) domain.SearchFilters {
	get := func(key string) string {
		if v := query[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	filters := domain.SearchFilters{
		Query:    get("q"),
		Language: get("language"),
		Topics:   []string{},
	}
	if n, err := strconv.Atoi(get("minStars")); err == nil && n > 0 {
		filters.MinStars = n
	}
	if n, err := strconv.Atoi(get("limit")); err == nil && n > 0 {
		filters.Limit = n
	}
	for _, topic := range strings.Split(get("topics"), ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			filters.Topics = append(filters.Topics, topic)
		}
	}
	return filters
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, action string, err error) {
	if common.IsClientError(err) {
		status := http.StatusBadRequest
		if common.CodeOf(err) == common.ErrCodeNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorBody{Error: common.MessageOf(err)})
		return
	}

	h.logger.WithError(err).WithField("action", action).Error("❌ 请求处理失败")
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Error:   "Internal server error",
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
