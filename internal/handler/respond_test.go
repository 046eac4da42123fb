package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithID(id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestPathID(t *testing.T) {
	c, _ := ctxWithID("42")
	id, ok := pathID(c)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)

	for _, bad := range []string{"0", "-1", "abc", "1.5", ""} {
		c, _ := ctxWithID(bad)
		_, ok := pathID(c)
		assert.False(t, ok, "id %q should be rejected", bad)
	}
}

func TestFailInvalidID(t *testing.T) {
	c, rec := ctxWithID("abc")
	require.NoError(t, failInvalidID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid id 'abc' was passed")
}

func TestRespondEnvelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, respond(c, http.StatusOK, echo.Map{"genre": "Drama"}))
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"genre":"Drama"`)
}
