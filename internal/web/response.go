package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vbonduro/bakeryapi/internal/domain"
	"github.com/vbonduro/bakeryapi/internal/service"
)

// timestampLayout is strftime's %Y-%m-%d %H:%M:%S.
const timestampLayout = "2006-01-02 15:04:05"

type bakeryResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type bakedGoodSummary struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

type bakeryDetailResponse struct {
	bakeryResponse
	BakedGoods []bakedGoodSummary `json:"baked_goods"`
}

type bakedGoodResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Price     json.Number `json:"price"`
	CreatedAt *string     `json:"created_at"`
	UpdatedAt *string     `json:"updated_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// formatTimestamp renders t in timestampLayout, or nil for a NULL column.
func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}

func newBakeryResponse(b *domain.Bakery) bakeryResponse {
	return bakeryResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: formatTimestamp(b.CreatedAt),
		UpdatedAt: formatTimestamp(b.UpdatedAt),
	}
}

func newBakeryDetailResponse(d *service.BakeryDetail) bakeryDetailResponse {
	goods := make([]bakedGoodSummary, 0, len(d.BakedGoods))
	for _, g := range d.BakedGoods {
		goods = append(goods, bakedGoodSummary{
			ID:    g.ID,
			Name:  g.Name,
			Price: json.Number(g.Price.String()),
		})
	}
	return bakeryDetailResponse{
		bakeryResponse: newBakeryResponse(d.Bakery),
		BakedGoods:     goods,
	}
}

func newBakedGoodResponse(g *domain.BakedGood) bakedGoodResponse {
	return bakedGoodResponse{
		ID:        g.ID,
		Name:      g.Name,
		Price:     json.Number(g.Price.String()),
		CreatedAt: formatTimestamp(g.CreatedAt),
		UpdatedAt: formatTimestamp(g.UpdatedAt),
	}
}

const encodeFailureBody = "{\n  \"error\": \"internal server error\"\n}\n"

// writeJSON encodes v with two-space indentation.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodeFailureBody))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Debug("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
