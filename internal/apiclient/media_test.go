package apiclient

import (
	"context"
	"io"
	"net/http"
	"testing"

	"agrive-admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UploadMedia(t *testing.T) {
	tests := []struct {
		kind MediaKind
		path string
	}{
		{MediaBanner, "/api/banner"},
		{MediaDeal, "/api/deal"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Len(t, r.MultipartForm.File["image"], 2)
				w.WriteHeader(http.StatusCreated)
			}, "tok")

			err := client.UploadMedia(context.Background(), tt.kind, []model.FileUpload{
				{FileName: "a.jpg", Data: []byte("a")},
				{FileName: "b.jpg", Data: []byte("b")},
			})
			require.NoError(t, err)
		})
	}
}

func TestClient_UploadProductImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productImage/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "V1", r.FormValue("variantId"))
		assert.Len(t, r.MultipartForm.File["images"], 1)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}, "tok")

	err := client.UploadProductImages(context.Background(), "V1", []model.FileUpload{{FileName: "x.png", Data: []byte("x")}})
	require.NoError(t, err)
}

func TestClient_ListProductImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productImage/V1", r.URL.Path)
		_, _ = io.WriteString(w, `{"images":[{"_id":"I1","imageUrl":"https://cdn/1.png"}]}`)
	}, "")

	images, err := client.ListProductImages(context.Background(), "V1")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "I1", images[0].ID)
}
