package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-marketplace/internal/auctionService"
	identity "auction-marketplace/internal/identityService"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with the in-memory repository for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	identityService := identity.NewIdentityService(repo)
	auctionService := auction.NewAuctionService(repo)
	return server.SetupRouter(identityService, auctionService)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response.
// For 201 responses the data payload is unwrapped.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// RegisterUser registers a user through the API and returns the assigned id.
func RegisterUser(t *testing.T, router *gin.Engine, name, email, role string) int64 {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/auth/register", helpers.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "hunter2-" + name,
		Role:     role,
	})
	require.Equal(t, 201, w.Code, "registering %s: %v", email, resp)
	return int64(resp["user_id"].(float64))
}

// AddItem lists an item through the API and returns the assigned id.
func AddItem(t *testing.T, router *gin.Engine, name, basePrice string, sellerID int64) int64 {
	t.Helper()

	price := decimal.RequireFromString(basePrice)
	resp, w := ExecuteRequestAndParse(t, router, "POST", "/items", helpers.AddItemRequest{
		ItemName:  name,
		BasePrice: &price,
		SellerID:  sellerID,
	})
	require.Equal(t, 201, w.Code, "adding item %s: %v", name, resp)
	return int64(resp["item_id"].(float64))
}
