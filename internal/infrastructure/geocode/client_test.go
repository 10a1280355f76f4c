package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseGeocodeReturnsFirstResult(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"providedLocation": map[string]interface{}{"latLng": map[string]float64{"lat": -23.26, "lng": -47.29}}},
				{"providedLocation": "segundo resultado descartado"},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("chave-teste", server.URL, server.URL)

	result, err := client.ReverseGeocode(context.Background(), "-23.26", "-47.29")
	require.NoError(t, err)

	assert.Equal(t, "/reverse", gotPath)
	assert.Contains(t, gotQuery, "key=chave-teste")
	assert.Contains(t, result, "providedLocation")
}

func TestForwardGeocodeAppendsCountry(t *testing.T) {
	var gotLocation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocation = r.URL.Query().Get("location")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{"locations": []interface{}{}}},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("chave-teste", server.URL, server.URL)

	_, err := client.ForwardGeocode(context.Background(), "Rua Sete de Setembro, Itu")
	require.NoError(t, err)
	assert.Equal(t, "Rua Sete de Setembro, Itu,BR", gotLocation)
}

func TestGeocodeEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("chave-teste", server.URL, server.URL)

	_, err := client.ReverseGeocode(context.Background(), "0", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem resultados")
}

func TestCompanyLookupRelaysPayload(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{
			"cnpj":         "30585126000136",
			"razao_social": "Passeios Caninos Ltda",
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("chave-teste", server.URL, server.URL)

	payload, err := client.CompanyLookup(context.Background(), "30585126000136")
	require.NoError(t, err)

	assert.Equal(t, "/cnpj/v1/30585126000136", gotPath)
	assert.Equal(t, "Passeios Caninos Ltda", payload["razao_social"])
}

func TestCompanyLookupMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>erro</html>"))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("chave-teste", server.URL, server.URL)

	_, err := client.CompanyLookup(context.Background(), "30585126000136")
	assert.Error(t, err)
}
