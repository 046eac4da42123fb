package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zainxyz/thriller/internal/config"
)

func TestCachePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"success":true}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestCachePayloadRejectsTruncated(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
}

func TestCacheKeyHonorsQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	mk := func(target string) string {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
		c.SetPath("/api/movies")
		return cacheKey(cfg, c)
	}

	assert.Equal(t, mk("/api/movies?genre=1"), mk("/api/movies?genre=1"))
	assert.NotEqual(t, mk("/api/movies?genre=1"), mk("/api/movies?genre=2"))
}

func TestStorableSkipsOversizedBody(t *testing.T) {
	assert.True(t, storable(http.StatusOK, 100, 1<<20))
	assert.True(t, storable(http.StatusOK, 1<<20, 1<<20))
	// the capture writer truncates past the limit, so this body is incomplete
	assert.False(t, storable(http.StatusOK, 1<<20+1, 1<<20))
	assert.True(t, storable(http.StatusOK, 1<<30, 0)) // no limit configured
	assert.False(t, storable(http.StatusNotFound, 100, 1<<20))
}

func TestCaptureWriterTruncatesAtLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 8}

	_, err := cw.Write([]byte("0123456789"))
	require.NoError(t, err)

	// the client got everything, the capture buffer stopped at the limit
	assert.Equal(t, "0123456789", rec.Body.String())
	assert.Equal(t, "01234567", cw.buf.String())
	assert.Equal(t, int64(10), cw.size)
	assert.False(t, storable(cw.status, cw.size, cw.limit))
}

func TestCacheDisabledPassesThrough(t *testing.T) {
	mw := Cache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/movies", nil), rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
