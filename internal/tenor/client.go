// Package tenor fetches birthday GIFs from the Tenor v1 API.
package tenor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/retry"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

var errNoImages = errors.New("no acceptable images returned")

// imageURLPattern accepts direct GIF links and captures the image id.
var imageURLPattern = regexp.MustCompile(`(?i)^(https?://media\.tenor\.com/images/([0-9a-z]+)/tenor\.gif)$`)

type Config struct {
	APIKey      string
	BaseURL     string
	SearchTerms []string
	Blacklist   []string
	Limit       int
	Retry       retry.Policy
	Timeout     time.Duration
}

// Client implements contract.ImageProvider.
type Client struct {
	client *resty.Client
	cfg    Config
	intn   func(n int) int
}

func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{client: c, cfg: cfg, intn: rand.IntN}
}

type anonIDResponse struct {
	AnonID string `json:"anon_id"`
}

type searchResponse struct {
	Results []struct {
		Media []struct {
			GIF struct {
				URL string `json:"url"`
			} `json:"gif"`
		} `json:"media"`
	} `json:"results"`
}

// FetchImage keeps asking Tenor until it returns a usable image or the retry
// policy gives up.
func (c *Client) FetchImage(ctx context.Context) (string, error) {
	var imageURL string

	err := retry.Do(ctx, c.cfg.Retry, "tenor", func() error {
		url, err := c.fetchOnce(ctx)
		if err != nil {
			return err
		}
		if url == "" {
			log.Debug().Msg("No images returned. New Tenor API request")
			return errNoImages
		}
		imageURL = url
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch tenor image: %w", err)
	}

	return imageURL, nil
}

func (c *Client) fetchOnce(ctx context.Context) (string, error) {
	var anon anonIDResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.cfg.APIKey).
		SetResult(&anon).
		Get("/anonid")
	if err != nil {
		return "", fmt.Errorf("tenor anonid request: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var search searchResponse
	resp, err = c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"tag":     c.pickTag(),
			"key":     c.cfg.APIKey,
			"limit":   strconv.Itoa(c.cfg.Limit),
			"anon_id": anon.AnonID,
		}).
		SetResult(&search).
		Get("/search")
	if err != nil {
		return "", fmt.Errorf("tenor search request: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	return c.selectImageURL(search), nil
}

func checkStatus(resp *resty.Response) error {
	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return retry.Permanent(fmt.Errorf("tenor status %d: %s", code, resp.String()))
	default:
		return fmt.Errorf("tenor status %d: %s", code, resp.String())
	}
}

func (c *Client) pickTag() string {
	if len(c.cfg.SearchTerms) == 0 {
		return ""
	}
	return c.cfg.SearchTerms[c.intn(len(c.cfg.SearchTerms))]
}

// selectImageURL picks a random result whose URL is a direct GIF not on the blacklist.
func (c *Client) selectImageURL(search searchResponse) string {
	var candidates []string

	for _, result := range search.Results {
		if len(result.Media) == 0 {
			continue
		}
		match := imageURLPattern.FindStringSubmatch(result.Media[0].GIF.URL)
		if match == nil {
			continue
		}
		if slices.Contains(c.cfg.Blacklist, match[2]) {
			log.Debug().Str("image_id", match[2]).Msg("Tenor returned a blacklisted image")
			continue
		}
		candidates = append(candidates, match[1])
	}

	if len(candidates) == 0 {
		return ""
	}
	return candidates[c.intn(len(candidates))]
}
