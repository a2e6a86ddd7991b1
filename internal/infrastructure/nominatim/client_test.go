package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/config"
)

func TestClient_ReverseGeocode(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		var gotQuery map[string]string
		var gotUserAgent string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			q := r.URL.Query()
			gotQuery = map[string]string{
				"lat":            q.Get("lat"),
				"lon":            q.Get("lon"),
				"format":         q.Get("format"),
				"zoom":           q.Get("zoom"),
				"addressdetails": q.Get("addressdetails"),
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"name": "Shinjuku Gyoen",
				"address": {
					"house_number": "11",
					"road": "Naitomachi",
					"suburb": "Shinjuku",
					"city": "Tokyo",
					"leisure": "garden"
				}
			}`))
		}))
		defer server.Close()

		cfg := &config.NominatimConfig{
			BaseURL:        server.URL,
			Zoom:           18,
			UserAgent:      "Dokopoo/1.0",
			RequestTimeout: 5,
		}
		c := NewClient(cfg, logger)

		place, err := c.ReverseGeocode(context.Background(), 35.6852, 139.7100)

		require.NoError(t, err)
		assert.Equal(t, "Shinjuku Gyoen", place.Name)
		assert.Equal(t, "Naitomachi", place.Address.Road)
		assert.Equal(t, "Tokyo", place.Address.City)
		assert.Equal(t, "garden", place.Address.Leisure)

		assert.Equal(t, "Dokopoo/1.0", gotUserAgent)
		assert.Equal(t, "json", gotQuery["format"])
		assert.Equal(t, "18", gotQuery["zoom"])
		assert.Equal(t, "1", gotQuery["addressdetails"])
		assert.NotEmpty(t, gotQuery["lat"])
		assert.NotEmpty(t, gotQuery["lon"])
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		cfg := &config.NominatimConfig{
			BaseURL:        server.URL,
			Zoom:           18,
			UserAgent:      "Dokopoo/1.0",
			RequestTimeout: 5,
		}
		c := NewClient(cfg, logger)

		_, err := c.ReverseGeocode(context.Background(), 35.6852, 139.7100)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		cfg := &config.NominatimConfig{
			BaseURL:        server.URL,
			Zoom:           18,
			UserAgent:      "Dokopoo/1.0",
			RequestTimeout: 5,
		}
		c := NewClient(cfg, logger)

		_, err := c.ReverseGeocode(context.Background(), 35.6852, 139.7100)

		assert.Error(t, err)
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		cfg := &config.NominatimConfig{
			BaseURL:        "http://127.0.0.1:1",
			Zoom:           18,
			UserAgent:      "Dokopoo/1.0",
			RequestTimeout: 1,
		}
		c := NewClient(cfg, logger)

		_, err := c.ReverseGeocode(context.Background(), 35.6852, 139.7100)

		assert.Error(t, err)
	})
}
