package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hoopvision/internal/appearance"
	"hoopvision/internal/catalog"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat := catalog.Default()
	return New(appearance.New(cat, appearance.DefaultParams()), cat, zap.NewNop())
}

// flatSkinPNG encodes a frame filled with one classic skin tone. The
// engine reads it as tone 3, bald, clean shaven, no accessory.
func flatSkinPNG(t *testing.T) []byte {
	t.Helper()
	px := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			px.SetNRGBA(x, y, color.NRGBA{R: 224, G: 172, B: 144, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, px))
	return buf.Bytes()
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAppearanceRawBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/v1/appearance", bytes.NewReader(flatSkinPNG(t)))
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res appearance.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, appearance.Result{SkinTone: 3, Hair: 0, FacialHair: 0, Accessory: 0}, res)
}

func TestAppearanceMultipart(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "headshot.png")
	require.NoError(t, err)
	_, err = fw.Write(flatSkinPNG(t))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/appearance", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res appearance.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, appearance.Result{SkinTone: 3, Hair: 0, FacialHair: 0, Accessory: 0}, res)
}

func TestAppearanceMultipartMissingField(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("note", "no image here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/appearance", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "image")
}

// Undecodable bytes are an answerable request, not a server error.
func TestAppearanceUndecodableNever5xx(t *testing.T) {
	t.Parallel()

	for _, body := range [][]byte{nil, {}, []byte("definitely not an image")} {
		req := httptest.NewRequest(http.MethodPost, "/v1/appearance", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		testServer(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var res appearance.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, appearance.DefaultResult(), res)
	}
}

func TestCatalogBreakdown(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp catalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 173, resp.TotalStyles)
	assert.Equal(t, 131, resp.Hair.Count)
	assert.Equal(t, 25, resp.FacialHair.Count)
	assert.Equal(t, 17, resp.Accessories.Count)

	assert.Equal(t, 2, resp.Hair.Volume["none"], "two bald entries")

	sum := func(m map[string]int) int {
		total := 0
		for _, n := range m {
			total += n
		}
		return total
	}
	assert.Equal(t, 131, sum(resp.Hair.Volume), "volume buckets partition hair")
	assert.Equal(t, 131, sum(resp.Hair.Texture))
	assert.Equal(t, 131, sum(resp.Hair.Length))
	assert.Equal(t, 25, sum(resp.FacialHair.Buckets))
	assert.Equal(t, 17, sum(resp.Accessories.Buckets))
}

func TestRequestLogging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	cat := catalog.Default()
	srv := New(appearance.New(cat, appearance.DefaultParams()), cat, zap.New(core))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestUnknownRouteIs404(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
