package ghcn

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/climate"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// Client downloads GHCN-Daily source files over HTTP.
type Client struct {
	stationsURL  string
	dailyBaseURL string
	httpClient   *http.Client
}

// NewClient creates a GHCN client for the given inventory URL and
// daily-archive base URL.
func NewClient(stationsURL, dailyBaseURL string) *Client {
	return &Client{
		stationsURL:  stationsURL,
		dailyBaseURL: strings.TrimRight(dailyBaseURL, "/"),
		httpClient:   http.DefaultClient,
	}
}

// FetchStations downloads and parses the station inventory.
func (c *Client) FetchStations(ctx context.Context) ([]*model.Station, error) {
	resp, err := c.get(ctx, c.stationsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get stations info from source: %w", err)
	}
	defer resp.Body.Close()

	stations, err := ParseStations(resp.Body)
	if err != nil {
		return nil, err
	}

	return stations, nil
}

// FetchDailyReadings downloads and parses the daily archive of one
// station. The archive directory listing is scraped first to locate the
// station's file, which may be plain or gzip-compressed.
func (c *Client) FetchDailyReadings(ctx context.Context, stationID string) ([]climate.Reading, error) {
	listing, err := c.get(ctx, c.dailyBaseURL+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to get daily archive listing: %w", err)
	}

	archiveName, err := findStationArchiveName(stationID, listing.Body)
	listing.Body.Close()
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, c.dailyBaseURL+"/"+archiveName)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily data by station from source: %w", err)
	}
	defer resp.Body.Close()

	readings, err := ParseDailyArchive(archiveName, resp.Body)
	if err != nil {
		return nil, err
	}

	return readings, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	return resp, nil
}
