package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader records calls instead of touching a real media host.
type fakeUploader struct {
	calls int
	data  []byte
	url   string
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	f.calls++
	f.data = data
	return f.url, f.err
}

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "car.jpg")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadReturnsHostURL(t *testing.T) {
	fake := &fakeUploader{url: "http://media.local/vehicle-images/vehicles/abc.jpg"}
	h := NewHandler(fake)

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, []byte("jpeg-bytes"), fake.data)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fake.url, resp["imageUrl"])
}

func TestUploadWithoutFileReturns400(t *testing.T) {
	fake := &fakeUploader{url: "http://media.local/x"}
	h := NewHandler(fake)

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "attachment", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.calls, "no host call on missing file")
}

func TestUploadHostFailureReturns500(t *testing.T) {
	fake := &fakeUploader{err: errors.New("host rejected upload")}
	h := NewHandler(fake)

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUploadWithoutConfiguredHostReturns500(t *testing.T) {
	h := NewHandler(nil)

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
