package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/internal/version"
)

const probeTimeout = 2 * time.Second

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	response := healthResponse{
		Status:  "ok",
		Version: version.Version(),
		Checks:  make(map[string]string, len(h.probes)),
	}

	status := http.StatusOK
	for _, probe := range h.probes {
		err := runProbe(r.Context(), probe)
		if err == nil {
			response.Checks[probe.Name()] = "ok"
			continue
		}

		h.logger.Warn("health probe failed",
			zap.String("probe", probe.Name()),
			zap.Error(err),
		)
		response.Checks[probe.Name()] = err.Error()
		response.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	h.writeJSON(w, status, response)
}

// runProbe bounds each check so one stuck dependency cannot hang the
// whole endpoint.
func runProbe(ctx context.Context, probe Probe) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- probe.Check(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
