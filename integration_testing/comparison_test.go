package integration_testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestComparisonLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := doLogin(ctx, t)

	userID := 1
	afterTakenAt := time.Now().UTC().Truncate(time.Second)
	beforeTakenAt := afterTakenAt.AddDate(0, 0, -70)

	var beforePhotoID, afterPhotoID int
	require.NoError(t, s.DB.QueryRow(ctx,
		`INSERT INTO progress_photo (user_id, view_type, taken_at, image_path, body_weight_kg)
			VALUES ($1, 'front', $2, '/photos/before.jpg', 80.0) RETURNING id;`,
		userID, beforeTakenAt,
	).Scan(&beforePhotoID))
	require.NoError(t, s.DB.QueryRow(ctx,
		`INSERT INTO progress_photo (user_id, view_type, taken_at, image_path, body_weight_kg)
			VALUES ($1, 'front', $2, '/photos/after.jpg', 76.5) RETURNING id;`,
		userID, afterTakenAt,
	).Scan(&afterPhotoID))

	// create a comparison through the API
	newReqJson, err := json.Marshal(map[string]any{
		"userId":   userID,
		"photoIds": []int{beforePhotoID, afterPhotoID},
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/comparison", serverEndpoint), bytes.NewBuffer(newReqJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var created struct {
		Comparison struct {
			ID       int   `json:"id"`
			UserID   int   `json:"userId"`
			PhotoIDs []int `json:"photoIds"`
		} `json:"comparison"`
		Settings map[string]any `json:"settings"`
		IsValid  bool           `json:"isValid"`
		Labels   []string       `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &created))
	require.NotZero(t, created.Comparison.ID)
	assert.True(t, created.IsValid)
	assert.Equal(t, []string{"Before", "After"}, created.Labels)
	assert.Equal(t, "side_by_side", created.Settings["layout"])

	// default stats categories: duration and weight
	req, err = http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/comparison/%d/stats", serverEndpoint, created.Comparison.ID), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)

	var statsResp struct {
		Stats map[string][]string `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &statsResp))
	assert.Contains(t, statsResp.Stats["duration"], "2 months")
	assert.Contains(t, statsResp.Stats["weight"], "80.0 → 76.5 kg (-3.5 kg)")

	// switch the layout
	settingsJson, err := json.Marshal(map[string]any{
		"layout":     "triptych",
		"show_logo":  false,
		"show_dates": true,
	})
	require.NoError(t, err)

	req, err = http.NewRequestWithContext(ctx, "PUT", fmt.Sprintf("%s/comparison/%d/settings", serverEndpoint, created.Comparison.ID), bytes.NewBuffer(settingsJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// list shows the updated settings
	req, err = http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/comparison?user=%d", serverEndpoint, userID), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)

	var listResp struct {
		Comparisons []struct {
			ID       int            `json:"id"`
			Settings map[string]any `json:"settings"`
		} `json:"comparisons"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, "triptych", listResp.Comparisons[0].Settings["layout"])
	assert.Equal(t, false, listResp.Comparisons[0].Settings["show_logo"])

	// delete it
	req, err = http.NewRequestWithContext(ctx, "DELETE", fmt.Sprintf("%s/comparison/%d", serverEndpoint, created.Comparison.ID), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestPhotosAndMeasurements() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := doLogin(ctx, t)

	userID := 2
	addReqJson, err := json.Marshal(map[string]any{
		"userId":     userID,
		"type":       "waist",
		"value":      84.5,
		"recordedAt": time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/measurements", serverEndpoint), bytes.NewBuffer(addReqJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req, err = http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/measurements?user=%d&type=waist", serverEndpoint, userID), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-FITSNAP-TOKEN", token)

	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var listResp struct {
		Entries []struct {
			Type  string  `json:"type"`
			Value float64 `json:"value"`
		} `json:"entries"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, "waist", listResp.Entries[0].Type)
	assert.Equal(t, 84.5, listResp.Entries[0].Value)
}
