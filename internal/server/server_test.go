package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganemedelabs/csspectrum"
)

func get(t *testing.T, h http.Handler, path string, query url.Values) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestConvertEndpoint(t *testing.T) {
	h := New(csspectrum.NewRegistry())

	code, body := get(t, h, "/convert", url.Values{"color": {"#ff5733"}, "to": {"rgb"}})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "rgb(255, 87, 51)", body["result"])

	code, body = get(t, h, "/convert", url.Values{"color": {"red"}})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "#ff0000", body["result"])
	assert.Equal(t, "red", body["name"])

	code, body = get(t, h, "/convert", url.Values{
		"color": {"rgba(255, 0, 0, 0.5)"}, "to": {"rgb"}, "modern": {"1"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "rgb(255 0 0 / 0.5)", body["result"])

	code, body = get(t, h, "/convert", url.Values{"color": {"notacolor"}})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "error")
}

func TestTypeEndpoint(t *testing.T) {
	h := New(csspectrum.NewRegistry())

	code, body := get(t, h, "/type", url.Values{"color": {"oklch(0.7 0.1 120)"}})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "oklch", body["type"])

	code, _ = get(t, h, "/type", url.Values{"color": {"nope"}})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMixEndpoint(t *testing.T) {
	h := New(csspectrum.NewRegistry())

	code, body := get(t, h, "/mix", url.Values{
		"color1": {"red"}, "color2": {"blue"}, "in": {"srgb"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "color(srgb 0.5 0 0.5)", body["result"])

	code, body = get(t, h, "/mix", url.Values{
		"color1": {"hsl(0, 100%, 50%)"}, "color2": {"hsl(120, 50%, 50%)"},
		"in": {"hsl"}, "hue": {"longer"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "hsl(240, 75%, 50%)", body["result"])

	code, _ = get(t, h, "/mix", url.Values{
		"color1": {"red"}, "color2": {"blue"}, "amount": {"bogus"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestContrastEndpoint(t *testing.T) {
	h := New(csspectrum.NewRegistry())

	code, body := get(t, h, "/contrast", url.Values{"color1": {"black"}, "color2": {"white"}})
	assert.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 21.0, body["ratio"], 1e-9)
	assert.Equal(t, true, body["aa"])
	assert.Equal(t, true, body["aaa"])
}

func TestRandomEndpoint(t *testing.T) {
	reg := csspectrum.NewRegistry()
	h := New(reg)

	code, body := get(t, h, "/random", url.Values{"format": {"rgb"}})
	assert.Equal(t, http.StatusOK, code)
	kind, err := reg.Type(body["result"].(string))
	require.NoError(t, err)
	assert.Equal(t, "rgb", kind)

	code, _ = get(t, h, "/random", url.Values{"format": {"nonsense"}})
	assert.Equal(t, http.StatusNotFound, code)
}
