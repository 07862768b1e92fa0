package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/retention-atlas/pkg/models/api"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/services/calculator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Calculator: calculator.New(domain.DefaultBaseline()),
			Logger:     logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "Overview",
			path:           "/api/v1/overview",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				response := unmarshalResponse[api.Overview](t, body)
				assert.Equal(t, 96096, response.Metrics.TotalCustomers)
				assert.Equal(t, 2986, response.Metrics.RepeatCustomers)
				assert.InDelta(t, -6.88, response.Metrics.GapToBenchmark, 1e-9)
				assert.Len(t, response.Segments, 5)
			},
		},
		{
			name:           "ListSegments",
			path:           "/api/v1/segments?average_order_value=100",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				response := unmarshalResponse[[]api.SegmentInsight](t, body)
				require.Len(t, response, 5)
				assert.Equal(t, "Champions", response[4].Segment.Name)
				assert.Equal(t, float64(3800), response[4].SegmentValue)
			},
		},
		{
			name:           "GetSegment",
			path:           "/api/v1/segments/loyal-customers",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				response := unmarshalResponse[api.SegmentInsight](t, body)
				assert.Equal(t, "Loyal Customers", response.Segment.Name)
				assert.Equal(t, float64(203*137), response.SegmentValue)
			},
		},
		{
			name:           "GetSegment_Unknown",
			path:           "/api/v1/segments/whales",
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "segment not found: whales\n", string(body))
			},
		},
		{
			name:           "GetScenario_Defaults",
			path:           "/api/v1/scenario",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				response := unmarshalResponse[api.ScenarioReport](t, body)
				assert.Equal(t, 10.0, response.Inputs.TargetRetentionRate)
				assert.Equal(t, "All Customers", response.Inputs.FocusSegmentLabel)
				assert.Equal(t, 6611, response.Metrics.AdditionalCustomers)
				assert.Equal(t, float64(905707), response.Metrics.RevenueOpportunity)
				assert.Len(t, response.Projection.Current, 12)
				assert.Len(t, response.Scenarios, 3)
				assert.Equal(t, "Aggressive", response.Recommendation.Tier)
				require.NotNil(t, response.Focus)
				assert.Equal(t, "Overview", response.Focus.Segment.Name)
			},
		},
		{
			name:           "GetScenario_AtRisk",
			path:           "/api/v1/scenario?target_retention_rate=6.9&focus_segment=at_risk",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				response := unmarshalResponse[api.ScenarioReport](t, body)
				assert.Equal(t, "Conservative", response.Recommendation.Tier)
				assert.Nil(t, response.Focus)
			},
		},
		{
			name:           "GetScenario_InvalidTarget",
			path:           "/api/v1/scenario?target_retention_rate=high",
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "invalid 'target_retention_rate' value \"high\". Expected a number\n", string(body))
			},
		},
		{
			name:           "UnknownRoute",
			path:           "/api/v1/cohorts",
			expectedStatus: http.StatusNotFound,
			check:          func(t *testing.T, body []byte) {},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			tc.check(t, body)
		})
	}
}

func TestNewWebAPI_DefaultShutdownTimeout(t *testing.T) {
	w := NewWebAPI(Config{
		Addr: ":0",
		Dependencies: Dependencies{
			Calculator: calculator.New(domain.DefaultBaseline()),
			Logger:     zerolog.Nop(),
		},
	})

	assert.Equal(t, defaultShutdownTimeout, w.shutdownTimeout)
	assert.Equal(t, ":0", w.server.Addr)
}

func unmarshalResponse[T any](t *testing.T, data []byte) T {
	t.Helper()
	var response T
	require.NoError(t, json.Unmarshal(data, &response), "Failed to parse response")
	return response
}
