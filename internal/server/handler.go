package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
	"github.com/jobdeck/flaggate/pkg/httperr"
)

const flagsPrefix = "/api/v1/flags"

type HandlerOptions struct {
	Flags  flags.Service
	Probes []Probe
	Logger *zap.Logger
}

type handler struct {
	flags  flags.Service
	probes []Probe
	logger *zap.Logger
}

func NewHandler(opts HandlerOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{
		flags:  opts.Flags,
		probes: opts.Probes,
		logger: logger.Named("http"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.health)
	mux.HandleFunc(flagsPrefix, h.flagCollection)
	mux.HandleFunc(flagsPrefix+"/", h.flagResource)
	return mux
}

type flagResponse struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Rollout int    `json:"rollout"`
}

type evalResponse struct {
	Name    string `json:"name"`
	UserID  string `json:"user_id,omitempty"`
	Bucket  *int   `json:"bucket,omitempty"`
	Enabled bool   `json:"enabled"`
}

type updateRequest struct {
	Enabled *bool `json:"enabled"`
}

func (h *handler) flagCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	snapshot := h.flags.Snapshot()
	response := make([]flagResponse, 0, len(snapshot))
	for _, flag := range flags.All() {
		response = append(response, flagResponse{
			Name:    flag.String(),
			Enabled: snapshot[flag],
			Rollout: h.flags.Rollout(flag),
		})
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) flagResource(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, flagsPrefix+"/")
	name, action, _ := strings.Cut(rest, "/")

	flag := flags.Flag(name)
	if !flag.Known() {
		h.writeError(w, httperr.NewNotFound("unrecognized flag: "+name))
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.getFlag(w, flag)
	case action == "" && r.Method == http.MethodPut:
		h.updateFlag(w, r, flag)
	case action == "eval" && r.Method == http.MethodGet:
		h.evalFlag(w, r, flag)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) getFlag(w http.ResponseWriter, flag flags.Flag) {
	h.writeJSON(w, http.StatusOK, flagResponse{
		Name:    flag.String(),
		Enabled: h.flags.IsEnabled(flag),
		Rollout: h.flags.Rollout(flag),
	})
}

func (h *handler) updateFlag(w http.ResponseWriter, r *http.Request, flag flags.Flag) {
	var request updateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeError(w, httperr.NewBadRequest("malformed request body"))
		return
	}
	if request.Enabled == nil {
		h.writeError(w, httperr.NewBadRequest("missing field: enabled"))
		return
	}

	h.flags.Update(flag, *request.Enabled)
	h.getFlag(w, flag)
}

func (h *handler) evalFlag(w http.ResponseWriter, r *http.Request, flag flags.Flag) {
	userID := r.URL.Query().Get("user")

	response := evalResponse{
		Name:    flag.String(),
		UserID:  userID,
		Enabled: h.flags.IsEnabledForUser(flag, userID),
	}
	if userID != "" {
		bucket := flags.Bucket(userID)
		response.Bucket = &bucket
	}

	h.writeJSON(w, http.StatusOK, response)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case httperr.IsNotFound(err):
		status = http.StatusNotFound
	case httperr.IsBadRequest(err):
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
