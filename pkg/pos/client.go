package pos

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client pulls the point-of-sale order export.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// ExportedOrder is one sold line in the POS export.
type ExportedOrder struct {
	ID         string    `json:"id"`
	RecipeName string    `json:"recipe_name"`
	Quantity   float64   `json:"quantity"`
	Total      float64   `json:"total"`
	SoldAt     time.Time `json:"sold_at"`
}

type exportResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    []ExportedOrder `json:"data"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchOrders downloads orders sold since the given time.
func (c *Client) FetchOrders(since time.Time) ([]ExportedOrder, error) {
	url := fmt.Sprintf("%s/export/orders?since=%s", c.BaseURL, since.UTC().Format(time.RFC3339))

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var response exportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if !response.Success {
		return nil, fmt.Errorf("export failed: %s", response.Message)
	}

	return response.Data, nil
}
