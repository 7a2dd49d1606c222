package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"agrive-admin/internal/catalog"
	"agrive-admin/internal/model"
	"agrive-admin/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles the product catalog screen.
type CatalogHandler struct {
	catalog service.CatalogService
	bulk    service.BulkService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService, bulk service.BulkService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		bulk:    bulk,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

func filterFromQuery(r *http.Request) catalog.Filter {
	q := r.URL.Query()
	return catalog.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Stock:    q.Get("stock"),
	}
}

// List handles GET /api/catalog. refresh=true refetches from the API.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	refresh := false
	if s := r.URL.Query().Get("refresh"); s != "" {
		var err error
		refresh, err = strconv.ParseBool(s)
		if err != nil {
			writeError(w, r, model.Validation("invalid refresh parameter"), h.logger)
			return
		}
	}

	rows, err := h.catalog.List(r.Context(), filterFromQuery(r), refresh)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rows, h.logger)
}

// Export handles GET /api/catalog/export. The filtered rows are returned
// as an xlsx attachment.
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.catalog.Export(r.Context(), filterFromQuery(r), &buf); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	name := "products-" + time.Now().UTC().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", catalog.ExportContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Taxonomy handles GET /api/catalog/taxonomy.
func (h *CatalogHandler) Taxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Taxonomy(), h.logger)
}

// Create handles POST /api/catalog/products.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	resp, err := h.catalog.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp, h.logger)
}

// UpdateVariant handles PUT /api/catalog/products/{productId}/variants/{index}.
// A JSON body is a model.VariantEdit. A multipart body carries the same
// JSON in the "edit" field and the new picture in the "image" file part.
func (h *CatalogHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	productID, err := objectID(r, "productId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, r, model.Validation("variant index must be an integer"), h.logger)
		return
	}

	var (
		edit  model.VariantEdit
		image *model.FileUpload
	)
	if isMultipart(r) {
		if err := parseMultipart(w, r); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("edit")), &edit); err != nil {
			writeError(w, r, model.NewDomainError(model.ErrCodeInvalidJSON, "invalid edit field"), h.logger)
			return
		}
		if edit.UploadType == "" {
			edit.UploadType = model.UploadTypeFile
		}
		image, err = formFile(r, "image")
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
	} else if err := decodeJSON(r, &edit); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	row, err := h.catalog.UpdateVariant(r.Context(), productID, index, edit, image)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, row, h.logger)
}

// Delete handles DELETE /api/catalog/products/{productId}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := objectID(r, "productId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := h.catalog.Delete(r.Context(), productID); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Product deleted"}, h.logger)
}

type bulkSourceRequest struct {
	Source string `json:"source"`
}

// Bulk handles POST /api/catalog/bulk: a multipart "file" upload, or a
// JSON {source} naming a sheet in the sheet store.
func (h *CatalogHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var (
		result model.BulkUploadResult
		err    error
	)

	if isMultipart(r) {
		if err := parseMultipart(w, r); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		file, ferr := formFile(r, "file")
		if ferr != nil {
			writeError(w, r, ferr, h.logger)
			return
		}
		if file == nil {
			writeError(w, r, model.Validation("file is required"), h.logger)
			return
		}
		result, err = h.bulk.Upload(r.Context(), file.FileName, file.Data)
	} else {
		var req bulkSourceRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		result, err = h.bulk.UploadFromSource(r.Context(), req.Source)
	}
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result, h.logger)
}
