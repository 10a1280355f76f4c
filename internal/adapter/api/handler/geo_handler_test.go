package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalker/internal/infrastructure/geocode"
	"dogwalker/pkg/response"
)

func TestReverseGeocodeRelaysFirstResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{"locations": []interface{}{"Itu, SP"}}},
		})
	}))
	defer server.Close()

	h := NewGeoHandler(geocode.NewClientWithBaseURLs("chave", server.URL, server.URL))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/geo/geo-latlng?lat=-23.26&lng=-47.29", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ReverseGeocode(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Itu, SP")
}

func TestReverseGeocodeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("indisponivel"))
	}))
	defer server.Close()

	h := NewGeoHandler(geocode.NewClientWithBaseURLs("chave", server.URL, server.URL))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/geo/geo-latlng?lat=0&lng=0", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ReverseGeocode(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Erro ao obter o endereço na API MapQuest", body.Errors[0].Msg)
}

func TestCompanyLookupRelaysPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"cnpj":          "30585126000136",
			"nome_fantasia": "DogWalker Itu",
		})
	}))
	defer server.Close()

	h := NewGeoHandler(geocode.NewClientWithBaseURLs("chave", server.URL, server.URL))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/geo/empresa?cnpj=30585126000136", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CompanyLookup(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "DogWalker Itu")
}
