// Package geocode resolves shared map links to addresses via the
// Nominatim reverse-geocoding API. Lookups are best-effort and sit
// behind a circuit breaker so a slow upstream never stalls the wizard.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"regexp"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/port/outbound"
	"github.com/washdesk/server/internal/shared/config"
	"github.com/washdesk/server/internal/shared/metrics"
)

// Errors returned by the Nominatim client.
var (
	ErrNoCoordinates = errors.New("no coordinates found in map link")
	ErrUnavailable   = errors.New("geocoding service unavailable")
)

// Coordinate patterns seen in shared map links: "@lat,lng",
// "!3dlat!4dlng", and "q=lat,lng".
var coordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`),
	regexp.MustCompile(`!3d(-?\d+\.\d+)!4d(-?\d+\.\d+)`),
	regexp.MustCompile(`[?&]q=(-?\d+\.\d+),(-?\d+\.\d+)`),
}

// nominatimClient implements outbound.ReverseGeocodePort.
type nominatimClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[*outbound.GeocodedAddress]
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewNominatimClient creates a new reverse-geocoding adapter.
func NewNominatimClient(cfg config.GeocodeConfig, m *metrics.Metrics, logger *zap.Logger) outbound.ReverseGeocodePort {
	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: cfg.DialTimeout,
			}).DialContext,
			MaxIdleConns:      cfg.MaxIdleConns,
			ForceAttemptHTTP2: true,
		},
		Timeout: cfg.ResponseTimeout,
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	breaker := gobreaker.NewCircuitBreaker[*outbound.GeocodedAddress](gobreaker.Settings{
		Name:    "nominatim",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("geocode breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &nominatimClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		breaker:    breaker,
		metrics:    m,
		logger:     logger,
	}
}

func (c *nominatimClient) Resolve(ctx context.Context, mapLink string) (*outbound.GeocodedAddress, error) {
	lat, lon, ok := extractCoordinates(mapLink)
	if !ok {
		return nil, ErrNoCoordinates
	}

	address, err := c.breaker.Execute(func() (*outbound.GeocodedAddress, error) {
		return c.reverse(ctx, lat, lon)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		c.metrics.RecordGeocode("open")
		return nil, ErrUnavailable
	case err != nil:
		c.metrics.RecordGeocode("error")
		return nil, err
	}
	c.metrics.RecordGeocode("ok")
	return address, nil
}

func (c *nominatimClient) reverse(ctx context.Context, lat, lon string) (*outbound.GeocodedAddress, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		c.baseURL, url.QueryEscape(lat), url.QueryEscape(lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: status %d", resp.StatusCode)
	}

	var payload struct {
		Address struct {
			Suburb        string `json:"suburb"`
			Neighbourhood string `json:"neighbourhood"`
			City          string `json:"city"`
			Town          string `json:"town"`
			Village       string `json:"village"`
			StateDistrict string `json:"state_district"`
			State         string `json:"state"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	area := payload.Address.Suburb
	if area == "" {
		area = payload.Address.Neighbourhood
	}
	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}

	return &outbound.GeocodedAddress{
		Area:     area,
		City:     city,
		District: payload.Address.StateDistrict,
		State:    payload.Address.State,
	}, nil
}

// extractCoordinates pulls a lat/lng pair out of a shared map link.
func extractCoordinates(mapLink string) (lat, lon string, ok bool) {
	for _, pattern := range coordPatterns {
		if m := pattern.FindStringSubmatch(mapLink); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// Compile-time check
var _ outbound.ReverseGeocodePort = (*nominatimClient)(nil)
