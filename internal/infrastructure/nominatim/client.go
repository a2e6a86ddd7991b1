package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/config"
	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	zoom       int
	logger     *zap.Logger
}

// NewClient создает новый клиент для Nominatim reverse geocoding API
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		zoom:      cfg.Zoom,
		logger:    logger,
	}
}

// reverseResponse - ответ Nominatim /reverse
type reverseResponse struct {
	Name    string `json:"name"`
	Address struct {
		HouseNumber   string `json:"house_number"`
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Building      string `json:"building"`
		Amenity       string `json:"amenity"`
		Shop          string `json:"shop"`
		Leisure       string `json:"leisure"`
	} `json:"address"`
}

// ReverseGeocode определяет адрес по координатам
func (c *client) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.ReversePlace, error) {
	url := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json&zoom=%d&addressdetails=1",
		c.baseURL, lat, lng, c.zoom)

	c.logger.Debug("Calling Nominatim reverse API",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Nominatim request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Nominatim returned non-OK status",
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var reverseResp reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&reverseResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &domain.ReversePlace{
		Name: reverseResp.Name,
		Address: domain.ReverseAddress{
			HouseNumber:   reverseResp.Address.HouseNumber,
			Road:          reverseResp.Address.Road,
			Neighbourhood: reverseResp.Address.Neighbourhood,
			Suburb:        reverseResp.Address.Suburb,
			City:          reverseResp.Address.City,
			Town:          reverseResp.Address.Town,
			Building:      reverseResp.Address.Building,
			Amenity:       reverseResp.Address.Amenity,
			Shop:          reverseResp.Address.Shop,
			Leisure:       reverseResp.Address.Leisure,
		},
	}, nil
}
