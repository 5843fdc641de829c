package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hazyhaar/wordmill/pkg/kit"
	"github.com/hazyhaar/wordmill/pkg/langpack"
)

// NewRouter returns an http.Handler with all wordmill API routes.
func NewRouter(reg *langpack.Registry, logger *slog.Logger) http.Handler {
	wrap := func(name string, e kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.Recover(), kit.Logging(logger, name))(e)
	}

	mux := http.NewServeMux()
	h := &handler{
		preprocess:      wrap("preprocess", preprocessEndpoint(reg)),
		preprocessBatch: wrap("preprocess_batch", preprocessBatchEndpoint(reg)),
		stemWord:        wrap("stem", stemEndpoint()),
		listFilters:     wrap("list_filters", listFiltersEndpoint()),
		listPacks:       wrap("list_packs", listPacksEndpoint(reg)),
		reg:             reg,
	}

	mux.HandleFunc("GET /v1/preprocess", methodNotAllowed) // body required, POST only
	mux.HandleFunc("POST /v1/preprocess", h.handlePreprocess)
	mux.HandleFunc("POST /v1/preprocess/batch", h.handlePreprocessBatch)
	mux.HandleFunc("GET /v1/stem/{word}", h.handleStem)
	mux.HandleFunc("GET /v1/filters", h.handleListFilters)
	mux.HandleFunc("GET /v1/packs", h.handleListPacks)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(requestContext(mux))
}

// requestContext tags each request with its transport and a
// correlation ID before it reaches the endpoints.
func requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := kit.WithTransport(r.Context(), "http")
		ctx = kit.WithRequestID(ctx, kit.NewRequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type handler struct {
	preprocess      kit.Endpoint
	preprocessBatch kit.Endpoint
	stemWord        kit.Endpoint
	listFilters     kit.Endpoint
	listPacks       kit.Endpoint
	reg             *langpack.Registry
}

// --- preprocess single document ---

type httpPreprocessRequest struct {
	Text     string   `json:"text"`
	Language string   `json:"language,omitempty"`
	Filters  []string `json:"filters,omitempty"`
}

func (h *handler) handlePreprocess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB max
	var req httpPreprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.preprocess(r.Context(), &preprocessReq{
		Text:     req.Text,
		Language: req.Language,
		Filters:  req.Filters,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- preprocess batch ---

type httpBatchRequest struct {
	Texts    []string `json:"texts"`
	Language string   `json:"language,omitempty"`
	Filters  []string `json:"filters,omitempty"`
}

func (h *handler) handlePreprocessBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4<<20) // 4 MiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.preprocessBatch(r.Context(), &batchReq{
		Texts:    req.Texts,
		Language: req.Language,
		Filters:  req.Filters,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- stem one word ---

func (h *handler) handleStem(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing word")
		return
	}
	resp, err := h.stemWord(r.Context(), &stemReq{Word: word})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- listings ---

func (h *handler) handleListFilters(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listFilters(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleListPacks(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listPacks(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status string `json:"status"`
	Packs  int    `json:"packs"`
	Words  int    `json:"words"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Packs:  h.reg.PackCount(),
		Words:  h.reg.TotalWords(),
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
