package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HamsterHaven_Go/internal/event"
)

func TestCollector_CountsTypedPayloads(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	deaths := testutil.ToFloat64(HamsterDeaths.WithLabelValues("neglect"))
	spent := testutil.ToFloat64(CoinsSpent)
	published := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ItemPurchased)))

	require.NoError(t, bus.Publish(ctx, event.New(event.HamsterDied, event.HamsterDiedPayloadV1{Cause: "neglect"})))
	require.NoError(t, bus.Publish(ctx, event.New(event.ItemPurchased, event.ItemPurchasedPayloadV1{Kind: "food", Item: "apple", Price: 7})))

	assert.Equal(t, deaths+1, testutil.ToFloat64(HamsterDeaths.WithLabelValues("neglect")))
	assert.Equal(t, spent+7, testutil.ToFloat64(CoinsSpent))
	assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ItemPurchased))))
}

func TestCollector_BadPayloadCountsError(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.UpgradePurchased)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.New(event.UpgradePurchased, make(chan int)))

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.UpgradePurchased))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/hamsters/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/hamsters/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hamsters/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/hamsters/{id}", "418")))
}
