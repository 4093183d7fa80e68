package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/quotation/internal/config"
	"github.com/smallbiznis/quotation/internal/providers/pdf"
	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/smallbiznis/quotation/internal/quotation/repository"
	"github.com/smallbiznis/quotation/internal/quotation/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Quotation{}, &domain.LineItem{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{BaseURL: "http://quotation.test", HTTPPort: "8080"}
	log := zap.NewNop()

	svc := service.New(service.Params{
		DB:    db,
		Log:   log,
		GenID: node,
		Repo:  repository.Provide(),
		PDF:   pdf.New(),
	})

	engine := NewEngine(cfg, log)
	NewServer(ServerParams{
		Gin:          engine,
		Cfg:          cfg,
		DB:           db,
		QuotationSvc: svc,
	})
	return engine
}

func quotationPayload() map[string]any {
	return map[string]any{
		"company": map[string]any{
			"name":    "Acme Traders",
			"address": "12 MG Road, Bengaluru",
			"phone":   "+91 98765 43210",
			"email":   "sales@acme.example",
			"tax_id":  "29ABCDE1234F1Z5",
		},
		"client": map[string]any{
			"name":  "Globex",
			"email": "purchasing@globex.example",
		},
		"items": []map[string]any{
			{"description": "Widget", "quantity": 3, "rate": 50},
			{"description": "Gadget", "quantity": 2, "rate": 25},
		},
	}
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createQuotation(t *testing.T, engine *gin.Engine) (id string, viewURL string) {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/v1/quotations", quotationPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID          string  `json:"id"`
			TotalAmount float64 `json:"total_amount"`
			Status      string  `json:"status"`
		} `json:"data"`
		ViewURL string `json:"view_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID, resp.ViewURL
}

func TestCreateQuotation(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/v1/quotations", quotationPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID          string  `json:"id"`
			TotalAmount float64 `json:"total_amount"`
			Status      string  `json:"status"`
		} `json:"data"`
		ViewURL string `json:"view_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, 200.0, resp.Data.TotalAmount)
	assert.Equal(t, "pending", resp.Data.Status)
	assert.Equal(t, "http://quotation.test/view-quotation.html?id="+resp.Data.ID, resp.ViewURL)
}

func TestCreateQuotation_ValidationErrors(t *testing.T) {
	engine := newTestServer(t)

	cases := []struct {
		name     string
		mutate   func(map[string]any)
		wantCode string
	}{
		{
			"no items",
			func(p map[string]any) { p["items"] = []map[string]any{} },
			"no_items",
		},
		{
			"missing client name",
			func(p map[string]any) { p["client"] = map[string]any{"name": ""} },
			"missing_client_name",
		},
		{
			"zero quantity",
			func(p map[string]any) {
				p["items"] = []map[string]any{{"description": "Widget", "quantity": 0, "rate": 50}}
			},
			"invalid_quantity",
		},
		{
			"negative rate",
			func(p map[string]any) {
				p["items"] = []map[string]any{{"description": "Widget", "quantity": 1, "rate": -1}}
			},
			"invalid_rate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := quotationPayload()
			tc.mutate(payload)

			w := doJSON(t, engine, http.MethodPost, "/v1/quotations", payload)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp struct {
				Error struct {
					Type   string `json:"type"`
					Errors []struct {
						Code string `json:"code"`
					} `json:"errors"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "validation_error", resp.Error.Type)
			require.NotEmpty(t, resp.Error.Errors)
			assert.Equal(t, tc.wantCode, resp.Error.Errors[0].Code)
		})
	}
}

func TestGetQuotation_Display(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createQuotation(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/v1/quotations/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID      string `json:"id"`
			Company struct {
				Name string `json:"name"`
			} `json:"company"`
			Items []struct {
				Description string `json:"description"`
				Quantity    string `json:"quantity"`
				Rate        string `json:"rate"`
				Amount      string `json:"amount"`
			} `json:"items"`
			TotalAmount string `json:"total_amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, id, resp.Data.ID)
	assert.Equal(t, "Acme Traders", resp.Data.Company.Name)
	assert.Equal(t, "₹200.00", resp.Data.TotalAmount)
	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, "₹150.00", resp.Data.Items[0].Amount)
	assert.Equal(t, "₹50.00", resp.Data.Items[1].Amount)
}

func TestGetQuotation_NotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/v1/quotations/123456789", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/v1/quotations/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadQuotationPDF(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createQuotation(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/v1/quotations/"+id+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Quotation_"+id+".pdf", w.Header().Get("Content-Disposition"))
	require.True(t, w.Body.Len() > 4)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestListQuotations(t *testing.T) {
	engine := newTestServer(t)
	createQuotation(t, engine)
	createQuotation(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/v1/quotations?page_size=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data     []json.RawMessage `json:"data"`
		PageInfo struct {
			HasMore       bool   `json:"has_more"`
			NextPageToken string `json:"next_page_token"`
		} `json:"page_info"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.True(t, resp.PageInfo.HasMore)
	assert.NotEmpty(t, resp.PageInfo.NextPageToken)
}
