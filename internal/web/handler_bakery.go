package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vbonduro/bakeryapi/internal/service"
)

const indexHTML = "<h1>Bakery GET API</h1>"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		s.logger.Debug("failed to write response", "error", err)
	}
}

func (s *Server) handleListBakeries(w http.ResponseWriter, r *http.Request) {
	bakeries, err := s.service.ListBakeries(r.Context())
	if err != nil {
		s.internalError(w, r, "list bakeries", err)
		return
	}

	resp := make([]bakeryResponse, 0, len(bakeries))
	for _, b := range bakeries {
		resp = append(resp, newBakeryResponse(b))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBakery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Bakery not found")
		return
	}

	detail, err := s.service.GetBakery(r.Context(), id)
	if errors.Is(err, service.ErrBakeryNotFound) {
		s.writeError(w, http.StatusNotFound, "Bakery not found")
		return
	}
	if err != nil {
		s.internalError(w, r, "get bakery", err)
		return
	}

	s.writeJSON(w, http.StatusOK, newBakeryDetailResponse(detail))
}

// internalError logs err and answers with a generic 500 so driver messages
// never reach the client.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op+" failed", "error", err, "request_id", requestIDFrom(r.Context()))
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}

// parseID extracts the {id} path variable. Only positive integers are valid.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
