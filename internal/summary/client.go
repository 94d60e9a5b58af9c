package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	oneHour            = 60 * 60
	summaryCacheExpire = oneHour * 12
)

// Request describes one before/after pair handed to the external
// vision summary API.
type Request struct {
	BeforeImagePath string   `json:"beforeImage"`
	AfterImagePath  string   `json:"afterImage"`
	DaysBetween     int      `json:"daysBetween"`
	WeightChangeKg  *float64 `json:"weightChangeKg,omitempty"`
}

type apiResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error"`
}

type Client struct {
	cache         *freecache.Cache
	summaryApiUrl string
	summaryApiKey string
	httpClient    *http.Client
}

func NewClient(summaryApiUrl, summaryApiKey string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		cache:         freecache.NewCache(cacheSize),
		summaryApiUrl: summaryApiUrl,
		summaryApiKey: summaryApiKey,
		httpClient:    httpClient,
	}
}

// Summarize asks the external API for a short progress summary of a
// before/after pair. Responses are cached per photo pair; API errors
// come back verbatim for the caller to surface.
func (c *Client) Summarize(ctx context.Context, summaryReq Request) (summaryText string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaryClient.summarize")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "summary generated")
		}
	}()

	cacheKey := fmt.Sprintf("summary::%s::%s", summaryReq.BeforeImagePath, summaryReq.AfterImagePath)
	if cachedSummary, err := c.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found summary for %s in cache", cacheKey)
		return string(cachedSummary), nil
	}

	reqBytes, err := json.Marshal(summaryReq)
	if err != nil {
		return "", fmt.Errorf("marshal summary request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.summaryApiUrl+"/summarize", bytes.NewReader(reqBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.summaryApiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read summary api response bytes: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal summary api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || apiResp.Error != "" {
		if apiResp.Error == "" {
			apiResp.Error = fmt.Sprintf("summary api status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%s", apiResp.Error)
	}

	if err := c.cache.Set([]byte(cacheKey), []byte(apiResp.Summary), summaryCacheExpire); err != nil {
		log.Errorf("failed to cache summary for %s: %s", cacheKey, err)
	}

	return apiResp.Summary, nil
}
