package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/config"
)

// Element - элемент OSM (node или way с вычисленным центром)
type Element struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

// Center - центр way-элемента
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinates возвращает координаты элемента (для way берётся центр)
func (e *Element) Coordinates() (lat, lon float64, ok bool) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}

type overpassResponse struct {
	Elements []Element `json:"elements"`
}

// Client - клиент Overpass API для загрузки туалетов из OSM
type Client struct {
	httpClient *http.Client
	apiURL     string
	bbox       config.OverpassConfig
	logger     *zap.Logger
}

// NewClient создает новый клиент Overpass API
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		apiURL: cfg.URL,
		bbox:   *cfg,
		logger: logger,
	}
}

// FetchToilets загружает все туалеты (amenity=toilets) внутри bbox
func (c *Client) FetchToilets(ctx context.Context) ([]Element, error) {
	bbox := fmt.Sprintf("%f,%f,%f,%f",
		c.bbox.BBoxSouth, c.bbox.BBoxWest, c.bbox.BBoxNorth, c.bbox.BBoxEast)

	query := fmt.Sprintf(`
[out:json][timeout:300];
(
  node["amenity"="toilets"](%s);
  way["amenity"="toilets"](%s);
);
out center body;
`, bbox, bbox)

	c.logger.Info("Fetching toilets from Overpass API",
		zap.String("bbox", bbox))

	body := url.Values{"data": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("overpass API error: status %d", resp.StatusCode)
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Info("Fetched toilet entries from OSM",
		zap.Int("count", len(overpassResp.Elements)))

	return overpassResp.Elements, nil
}
