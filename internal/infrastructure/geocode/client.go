package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultMapQuestBaseURL  = "http://www.mapquestapi.com/geocoding/v1"
	defaultBrasilAPIBaseURL = "https://brasilapi.com.br/api"
)

// Client proxies geocoding and company lookups to third-party HTTP APIs.
// It is stateless; responses are relayed as decoded JSON.
type Client struct {
	httpClient       *http.Client
	apiKey           string
	mapQuestBaseURL  string
	brasilAPIBaseURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient:       &http.Client{Timeout: 15 * time.Second},
		apiKey:           apiKey,
		mapQuestBaseURL:  defaultMapQuestBaseURL,
		brasilAPIBaseURL: defaultBrasilAPIBaseURL,
	}
}

// NewClientWithBaseURLs is used by tests to point at stub servers.
func NewClientWithBaseURLs(apiKey, mapQuestBaseURL, brasilAPIBaseURL string) *Client {
	c := NewClient(apiKey)
	c.mapQuestBaseURL = mapQuestBaseURL
	c.brasilAPIBaseURL = brasilAPIBaseURL
	return c
}

// ReverseGeocode resolves an address from latitude/longitude, returning the
// first result element of the MapQuest payload.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/reverse?key=%s&location=%s,%s",
		c.mapQuestBaseURL, url.QueryEscape(c.apiKey), url.QueryEscape(lat), url.QueryEscape(lng))
	return c.firstResult(ctx, endpoint)
}

// ForwardGeocode resolves latitude/longitude from a free-text address. The
// country suffix narrows results to Brazil, as the API has always done.
func (c *Client) ForwardGeocode(ctx context.Context, location string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/address?key=%s&location=%s",
		c.mapQuestBaseURL, url.QueryEscape(c.apiKey), url.QueryEscape(location+",BR"))
	return c.firstResult(ctx, endpoint)
}

// CompanyLookup fetches company registration data by CNPJ from BrasilAPI
// and relays the payload verbatim.
func (c *Client) CompanyLookup(ctx context.Context, cnpj string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/cnpj/v1/%s", c.brasilAPIBaseURL, url.PathEscape(cnpj))

	payload := map[string]interface{}{}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) firstResult(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	var payload struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("resposta sem resultados")
	}
	return payload.Results[0], nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
