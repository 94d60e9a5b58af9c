package comparison

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/codes"
)

type renderResponse struct {
	ImagePath string `json:"imagePath"`
	Error     string `json:"error"`
}

// RenderClient talks to the external render service which rasterizes
// a layer stack into a share image.
type RenderClient struct {
	renderApiUrl string
	renderApiKey string
	httpClient   *http.Client
}

func NewRenderClient(renderApiUrl, renderApiKey string, httpClient *http.Client) *RenderClient {
	return &RenderClient{
		renderApiUrl: renderApiUrl,
		renderApiKey: renderApiKey,
		httpClient:   httpClient,
	}
}

// Capture sends the layer stack to the render service and returns the
// path of the produced image.
func (c *RenderClient) Capture(ctx context.Context, stack LayerStack) (imagePath string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "renderClient.capture")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "stack rendered")
		}
	}()

	reqBytes, err := json.Marshal(stack)
	if err != nil {
		return "", fmt.Errorf("marshal layer stack: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.renderApiUrl+"/render", bytes.NewReader(reqBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.renderApiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read render api response bytes: %w", err)
	}

	var renderResp renderResponse
	if err := json.Unmarshal(respBytes, &renderResp); err != nil {
		return "", fmt.Errorf("unmarshal render api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || renderResp.Error != "" {
		if renderResp.Error == "" {
			renderResp.Error = fmt.Sprintf("render api status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%s", renderResp.Error)
	}

	if renderResp.ImagePath == "" {
		return "", fmt.Errorf("render api returned no image path")
	}

	return renderResp.ImagePath, nil
}
