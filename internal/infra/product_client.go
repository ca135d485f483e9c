package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type stockAdjustment struct {
	Quantity int `json:"quantity"`
}

type stockResponse struct {
	Success bool `json:"success"`
}

type ProductClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AdjustStock asks the product catalog to decrement stock for one
// product. Callers treat the outcome as advisory: a failure is logged
// on their side and never retried.
func (c *ProductClient) AdjustStock(ctx context.Context, productID uint64, quantity int) error {
	body, err := json.Marshal(stockAdjustment{Quantity: quantity})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/products/%d/stock", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("product service returned status %d", resp.StatusCode)
	}

	var out stockResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("stock adjustment rejected for product %d", productID)
	}

	return nil
}
