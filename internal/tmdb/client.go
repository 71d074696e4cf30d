package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoMatch is returned when a search finds no movie for (name, year).
var ErrNoMatch = errors.New("no tmdb match")

const imageBase = "https://image.tmdb.org/t/p"

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(apiKey string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:     apiKey,
		baseURL:    "https://api.themoviedb.org/3",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// searchResponse matches /search/movie.
type searchResponse struct {
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}

// detailsResponse matches /movie/{id}?append_to_response=credits.
type detailsResponse struct {
	Runtime      int    `json:"runtime"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
	ReleaseDate  string `json:"release_date"`
	Tagline      string `json:"tagline"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int    `json:"vote_count"`
	Genres       []struct {
		Name string `json:"name"`
	} `json:"genres"`
	ProductionCountries []struct {
		Name string `json:"name"`
	} `json:"production_countries"`
	SpokenLanguages []struct {
		EnglishName string `json:"english_name"`
		Name        string `json:"name"`
	} `json:"spoken_languages"`
	Credits struct {
		Crew []struct {
			Job  string `json:"job"`
			Name string `json:"name"`
		} `json:"crew"`
	} `json:"credits"`
}

// MovieDetails is the flattened enrichment payload for one film.
type MovieDetails struct {
	TMDBID              int64
	RuntimeMinutes      *int
	Genres              []string
	Director            string
	Overview            string
	PosterPath          string
	BackdropPath        string
	ReleaseDate         string
	Tagline             string
	VoteAverage         float64
	VoteCount           int
	ProductionCountries []string
	SpokenLanguages     string
}

// SearchMovie returns the best TMDB match for a film name and export year.
func (c *Client) SearchMovie(ctx context.Context, name, year string) (int64, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", name)
	params.Set("language", "en-US")
	if y := strings.TrimSpace(year); y != "" {
		params.Set("year", y)
	}

	var res searchResponse
	if err := c.get(ctx, c.baseURL+"/search/movie?"+params.Encode(), &res); err != nil {
		return 0, err
	}
	if len(res.Results) == 0 {
		return 0, ErrNoMatch
	}
	return res.Results[0].ID, nil
}

// GetMovieDetails fetches details plus credits and flattens them: the
// director from the crew list, up to three spoken languages, and full
// image URLs the way the site stores them.
func (c *Client) GetMovieDetails(ctx context.Context, tmdbID int64) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", "en-US")
	params.Set("append_to_response", "credits")

	var res detailsResponse
	u := fmt.Sprintf("%s/movie/%d?%s", c.baseURL, tmdbID, params.Encode())
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}

	d := &MovieDetails{
		TMDBID:      tmdbID,
		Overview:    strings.TrimSpace(res.Overview),
		ReleaseDate: strings.TrimSpace(res.ReleaseDate),
		Tagline:     strings.TrimSpace(res.Tagline),
		VoteAverage: res.VoteAverage,
		VoteCount:   res.VoteCount,
	}
	if res.Runtime > 0 {
		d.RuntimeMinutes = &res.Runtime
	}
	for _, g := range res.Genres {
		if g.Name != "" {
			d.Genres = append(d.Genres, g.Name)
		}
	}
	for _, pc := range res.ProductionCountries {
		if pc.Name != "" {
			d.ProductionCountries = append(d.ProductionCountries, pc.Name)
		}
	}
	for _, p := range res.Credits.Crew {
		if strings.EqualFold(strings.TrimSpace(p.Job), "director") {
			d.Director = strings.TrimSpace(p.Name)
			break
		}
	}
	var langs []string
	for i, l := range res.SpokenLanguages {
		if i == 3 {
			break
		}
		if l.EnglishName != "" {
			langs = append(langs, l.EnglishName)
		} else if l.Name != "" {
			langs = append(langs, l.Name)
		}
	}
	d.SpokenLanguages = strings.Join(langs, ", ")
	if p := strings.TrimSpace(res.PosterPath); p != "" {
		d.PosterPath = imageBase + "/w500" + p
	}
	if b := strings.TrimSpace(res.BackdropPath); b != "" {
		d.BackdropPath = imageBase + "/w780" + b
	}
	return d, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(target)
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
