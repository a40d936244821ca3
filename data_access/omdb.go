package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pcrantfo/3-movie-api/models"
)

// OMDBClient fetches movie metadata from the OMDB API. It is used by the
// seeder to enrich catalog entries; the serving path never calls out.
type OMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type omdbResponse struct {
	Title    string `json:"Title"`
	Plot     string `json:"Plot"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func NewOMDBClient(apiKey, baseURL string) *OMDBClient {
	return &OMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// FetchMovie looks a title up on OMDB and maps the response onto the
// catalog's movie shape. Fields OMDB does not know stay zero.
func (c *OMDBClient) FetchMovie(ctx context.Context, title string) (*models.Movie, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("OMDB API key not found")
	}

	reqURL := fmt.Sprintf("%s?apikey=%s&t=%s", c.baseURL, c.apiKey, url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to OMDB API: %v", err)
	}
	defer resp.Body.Close()

	var omdbResp omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&omdbResp); err != nil {
		return nil, fmt.Errorf("error decoding OMDB response: %v", err)
	}

	if omdbResp.Response == "False" {
		return nil, fmt.Errorf("OMDB: %s", omdbResp.Error)
	}

	// OMDB lists genres comma-separated; the catalog keeps a single genre
	// sub-record, so take the first.
	genre := omdbResp.Genre
	if i := strings.Index(genre, ","); i >= 0 {
		genre = strings.TrimSpace(genre[:i])
	}

	return &models.Movie{
		Title:       omdbResp.Title,
		Description: omdbResp.Plot,
		Genre:       models.Genre{Name: genre},
		Director:    models.Director{Name: omdbResp.Director},
		ImagePath:   omdbResp.Poster,
	}, nil
}
