package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductClient_AdjustStock(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer server.Close()

	client := NewProductClient(server.URL, 2*time.Second)
	err := client.AdjustStock(context.Background(), 7, 3)

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/products/7/stock", gotPath)
	assert.Equal(t, 3, gotBody["quantity"])
}

func TestProductClient_AdjustStock_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": false})
	}))
	defer server.Close()

	client := NewProductClient(server.URL, 2*time.Second)
	err := client.AdjustStock(context.Background(), 7, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestProductClient_AdjustStock_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewProductClient(server.URL, 2*time.Second)
	err := client.AdjustStock(context.Background(), 7, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
