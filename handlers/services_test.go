package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawnly/models"
)

type stubPricing struct {
	lastPackageID string
	lastLotSize   int
	lastAddOnIDs  []string
}

func (p *stubPricing) CalculatePrice(ctx context.Context, packageID string, lotSize int, addOnIDs []string) (*models.PriceBreakdown, error) {
	p.lastPackageID = packageID
	p.lastLotSize = lotSize
	p.lastAddOnIDs = addOnIDs
	return &models.PriceBreakdown{GrandTotal: 75}, nil
}

func (p *stubPricing) QuickQuote(ctx context.Context, lotSize int) (*models.QuickQuote, error) {
	p.lastLotSize = lotSize
	return &models.QuickQuote{LotSize: lotSize}, nil
}

func newPricingRouter(pricing *stubPricing) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &HandlerBundle{Pricing: pricing}
	r := gin.New()
	r.POST("/api/services/quick-quote", hb.QuickQuote)
	r.POST("/api/services/calculate-price", hb.CalculatePrice)
	return r
}

func TestQuickQuote_ReadsLotSizeFromBody(t *testing.T) {
	pricing := &stubPricing{}
	r := newPricingRouter(pricing)

	req := httptest.NewRequest(http.MethodPost, "/api/services/quick-quote",
		strings.NewReader(`{"lotSize": 7000}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7000, pricing.lastLotSize)
}

func TestQuickQuote_RejectsNonPositiveLotSize(t *testing.T) {
	r := newPricingRouter(&stubPricing{})

	req := httptest.NewRequest(http.MethodPost, "/api/services/quick-quote",
		strings.NewReader(`{"lotSize": 0}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculatePrice_BindsDocumentedBodyKeys(t *testing.T) {
	pricing := &stubPricing{}
	r := newPricingRouter(pricing)

	body := `{"packageId": "pkg-1", "lotSize": 7000, "addOnIds": ["addon-1", "addon-2"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/services/calculate-price",
		strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pkg-1", pricing.lastPackageID)
	assert.Equal(t, 7000, pricing.lastLotSize)
	assert.Equal(t, []string{"addon-1", "addon-2"}, pricing.lastAddOnIDs)
}

func TestCalculatePrice_RequiresPackageID(t *testing.T) {
	r := newPricingRouter(&stubPricing{})

	req := httptest.NewRequest(http.MethodPost, "/api/services/calculate-price",
		strings.NewReader(`{"lotSize": 7000}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
