package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/middleware"
	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxMemory bounds the in-memory part of a multipart form.
const maxMemory = 32 << 20

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// maxUploadBody bounds a whole multipart request: one sheet of
// bulk.MaxSheetSize or a batch of images, plus form overhead.
const maxUploadBody = 64 << 20

// writeJSON writes a JSON response with the given status code. The body is
// encoded before the header is sent, so an unencodable value becomes a 500.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(model.ErrorResponse{
			Error:   model.ErrCodeInternalError,
			Message: "internal server error",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Debug().Err(err).Msg("failed to write response")
	}
}

// writeError maps err to a status and writes a model.ErrorResponse
// carrying the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status, code, message := classify(err)
	requestID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("code", code).
		Str("request_id", requestID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: requestID,
	}, logger)
}

// classify returns the HTTP status, error code and client message for err.
func classify(err error) (int, string, string) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeValidation, model.ErrCodeInvalidID,
			model.ErrCodeInvalidJSON, model.ErrCodeUnsupportedFormat:
			return http.StatusBadRequest, domainErr.Code, domainErr.Message
		case model.ErrCodeNotAuthenticated:
			return http.StatusUnauthorized, domainErr.Code, domainErr.Message
		case model.ErrCodeActionNotAllowed:
			return http.StatusConflict, domainErr.Code, domainErr.Message
		case model.ErrCodeOrderNotFound, model.ErrCodeProductNotFound:
			return http.StatusNotFound, domainErr.Code, domainErr.Message
		case model.ErrCodeMethodNotAllowed:
			return http.StatusMethodNotAllowed, domainErr.Code, domainErr.Message
		case model.ErrCodePayloadTooLarge:
			return http.StatusRequestEntityTooLarge, domainErr.Code, domainErr.Message
		}
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode, model.ErrCodeUpstream, apiErr.Message
		}
		return http.StatusBadGateway, model.ErrCodeUpstream, apiErr.Message
	}

	if errors.Is(err, apiclient.ErrUnavailable) {
		return http.StatusBadGateway, model.ErrCodeUpstream, "Agrive API is unavailable"
	}

	return http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error"
}

// decodeJSON decodes a bounded JSON body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	body := io.LimitReader(r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

// objectID returns the named path value if it is a valid document id.
func objectID(r *http.Request, name string) (string, error) {
	id := r.PathValue(name)
	if !primitive.IsValidObjectID(id) {
		return "", model.NewDomainError(model.ErrCodeInvalidID, fmt.Sprintf("invalid %s: %q", name, id))
	}
	return id, nil
}

// pathValue returns a required, non-blank path value.
func pathValue(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.PathValue(name))
	if v == "" {
		return "", model.Validation(name + " is required")
	}
	return v, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// parseMultipart parses the request's multipart form. Bodies larger than
// maxUploadBody are rejected while being read.
func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.TooLarge(fmt.Sprintf("upload exceeds %d bytes", maxUploadBody))
		}
		return model.Validation("invalid multipart form: " + err.Error())
	}
	return nil
}

// formFiles reads every file uploaded under field.
func formFiles(r *http.Request, field string) ([]model.FileUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]model.FileUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := readFileHeader(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// formFile reads the single file uploaded under field, if any.
func formFile(r *http.Request, field string) (*model.FileUpload, error) {
	files, err := formFiles(r, field)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return &files[0], nil
}

func readFileHeader(fh *multipart.FileHeader) (model.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return model.FileUpload{}, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.FileUpload{}, fmt.Errorf("failed to read upload %q: %w", fh.Filename, err)
	}
	return model.FileUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
