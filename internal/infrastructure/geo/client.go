package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"truvamate/internal/domain/entity"
)

// Client resolves an IP address to a location via the external geolocation
// lookup service. Best effort only; callers treat failures as "no location".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupResponse struct {
	Status      string  `json:"status"`
	Query       string  `json:"query"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	Message     string  `json:"message"`
}

func (c *Client) Lookup(ctx context.Context, ip string) (*entity.GeoLocation, error) {
	url := fmt.Sprintf("%s/json/%s", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo lookup failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo lookup returned status %d", resp.StatusCode)
	}

	var parsed lookupResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	if parsed.Status != "success" {
		return nil, fmt.Errorf("geo lookup failed: %s", parsed.Message)
	}

	return &entity.GeoLocation{
		IP:          parsed.Query,
		Country:     parsed.Country,
		CountryCode: parsed.CountryCode,
		Region:      parsed.Region,
		RegionName:  parsed.RegionName,
		City:        parsed.City,
		PostalCode:  parsed.Zip,
		Lat:         parsed.Lat,
		Lon:         parsed.Lon,
		Timezone:    parsed.Timezone,
		ISP:         parsed.ISP,
		Org:         parsed.Org,
		LookedUpAt:  time.Now(),
	}, nil
}
