package handler

import (
	"net/http"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/model"
	"agrive-admin/internal/service"

	"github.com/rs/zerolog"
)

// MediaHandler handles banners, deals and product galleries.
type MediaHandler struct {
	service service.MediaService
	logger  zerolog.Logger
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(service service.MediaService, logger zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		logger:  logger.With().Str("handler", "media").Logger(),
	}
}

// ListFor returns the GET handler for one media kind.
func (h *MediaHandler) ListFor(kind apiclient.MediaKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context(), kind)
		h.respond(w, r, http.StatusOK, list, err)
	}
}

// UploadFor returns the POST handler for one media kind. Every "image"
// part is uploaded.
func (h *MediaHandler) UploadFor(kind apiclient.MediaKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.images(w, r, "image")
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		list, err := h.service.Upload(r.Context(), kind, images)
		h.respond(w, r, http.StatusCreated, list, err)
	}
}

// ReplaceFor returns the PUT /{id} handler for one media kind.
func (h *MediaHandler) ReplaceFor(kind apiclient.MediaKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := objectID(r, "id")
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		image, err := h.image(w, r)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		list, err := h.service.Replace(r.Context(), kind, id, image)
		h.respond(w, r, http.StatusOK, list, err)
	}
}

// DeleteFor returns the DELETE /{id} handler for one media kind.
func (h *MediaHandler) DeleteFor(kind apiclient.MediaKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := objectID(r, "id")
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		list, err := h.service.Delete(r.Context(), kind, id)
		h.respond(w, r, http.StatusOK, list, err)
	}
}

// ListProductImages handles GET /api/product-images/{variantId}.
func (h *MediaHandler) ListProductImages(w http.ResponseWriter, r *http.Request) {
	variantID, err := objectID(r, "variantId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.service.ListProductImages(r.Context(), variantID)
	h.respond(w, r, http.StatusOK, list, err)
}

// UploadProductImages handles POST /api/product-images/{variantId} with
// one or more "images" parts.
func (h *MediaHandler) UploadProductImages(w http.ResponseWriter, r *http.Request) {
	variantID, err := objectID(r, "variantId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	images, err := h.images(w, r, "images")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.service.UploadProductImages(r.Context(), variantID, images)
	h.respond(w, r, http.StatusCreated, list, err)
}

// ReplaceProductImage handles PUT /api/product-images/item/{id}.
func (h *MediaHandler) ReplaceProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	image, err := h.image(w, r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if err := h.service.ReplaceProductImage(r.Context(), id, image); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Image replaced"}, h.logger)
}

// DeleteProductImage handles DELETE /api/product-images/item/{id}.
func (h *MediaHandler) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if err := h.service.DeleteProductImage(r.Context(), id); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Image deleted"}, h.logger)
}

func (h *MediaHandler) images(w http.ResponseWriter, r *http.Request, field string) ([]model.FileUpload, error) {
	if !isMultipart(r) {
		return nil, model.Validation("multipart/form-data body is required")
	}
	if err := parseMultipart(w, r); err != nil {
		return nil, err
	}
	return formFiles(r, field)
}

func (h *MediaHandler) image(w http.ResponseWriter, r *http.Request) (model.FileUpload, error) {
	images, err := h.images(w, r, "image")
	if err != nil {
		return model.FileUpload{}, err
	}
	if len(images) == 0 {
		return model.FileUpload{}, model.Validation("image is required")
	}
	return images[0], nil
}

func (h *MediaHandler) respond(w http.ResponseWriter, r *http.Request, status int, list []model.MediaImage, err error) {
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, status, list, h.logger)
}
