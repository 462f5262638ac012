package httpserver

import (
	"net/http"
	"net/url"

	catalogdto "artjury/contexts/competition/artwork-catalog/transport/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListArtworksHandler(r.Context(), actorFrom(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetArtwork(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetArtworkHandler(r.Context(), actorFrom(r), chi.URLParam(r, "artwork_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if unescaped, err := url.PathUnescape(category); err == nil {
		category = unescaped
	}
	resp, err := s.catalog.Handler.GalleryHandler(r.Context(), actorFrom(r), category)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateArtwork(w http.ResponseWriter, r *http.Request) {
	var req catalogdto.CreateArtworkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.catalog.Handler.CreateArtworkHandler(r.Context(), actorFrom(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateArtwork(w http.ResponseWriter, r *http.Request) {
	var req catalogdto.UpdateArtworkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.catalog.Handler.UpdateArtworkHandler(r.Context(), actorFrom(r), chi.URLParam(r, "artwork_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetOrder(w http.ResponseWriter, r *http.Request) {
	var req catalogdto.SetOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.catalog.Handler.SetOrderHandler(r.Context(), actorFrom(r), chi.URLParam(r, "artwork_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSwapOrder(w http.ResponseWriter, r *http.Request) {
	var req catalogdto.SwapOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.catalog.Handler.SwapOrderHandler(r.Context(), actorFrom(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	var req catalogdto.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.catalog.Handler.ReorderHandler(r.Context(), actorFrom(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBulkUpload(w http.ResponseWriter, r *http.Request) {
	var req catalogdto.BulkUploadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.catalog.Handler.BulkUploadHandler(r.Context(), actorFrom(r), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
