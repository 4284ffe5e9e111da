package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/bakeryapi/internal/service"
)

func (s *Server) handleBakedGoodsByPrice(w http.ResponseWriter, r *http.Request) {
	goods, err := s.service.ListBakedGoodsByPrice(r.Context())
	if err != nil {
		s.internalError(w, r, "list baked goods by price", err)
		return
	}

	resp := make([]bakedGoodResponse, 0, len(goods))
	for _, g := range goods {
		resp = append(resp, newBakedGoodResponse(g))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMostExpensiveBakedGood(w http.ResponseWriter, r *http.Request) {
	good, err := s.service.MostExpensiveBakedGood(r.Context())
	if errors.Is(err, service.ErrNoBakedGoods) {
		s.writeError(w, http.StatusNotFound, "No baked goods found")
		return
	}
	if err != nil {
		s.internalError(w, r, "get most expensive baked good", err)
		return
	}

	s.writeJSON(w, http.StatusOK, newBakedGoodResponse(good))
}
