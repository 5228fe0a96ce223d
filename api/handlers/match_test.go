package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"riftstats/api/services"
	"riftstats/api/services/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testPuuid = "test-puuid-0000000000000000000000000000000000000000000000000000"

// Helper to build a engine with only the match routes registered.
func setupMatchRouter() (*gin.Engine, *testutil.MockRiotAPI) {
	gin.SetMode(gin.TestMode)

	mockRiotApi := &testutil.MockRiotAPI{}
	mockAssets := &testutil.MockAssetResolver{}

	matchService := services.NewMatchService(&services.MatchServiceDeps{
		RiotAPI: mockRiotApi,
		Assets:  mockAssets,
	})

	handler := NewMatchHandler(&MatchHandlerDependencies{
		MatchService: matchService,
	})

	engine := gin.New()
	engine.GET("/api/v1/match/:puuid", handler.GetMatchHistory)

	return engine, mockRiotApi
}

func TestGetMatchHistoryResponses(t *testing.T) {
	tests := []struct {
		name            string
		puuid           string
		matchIds        []string
		listError       error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "empty history is a distinct not found",
			puuid:           testPuuid,
			matchIds:        []string{},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "No matches found for this player.",
		},
		{
			name:            "unparsable history is a distinct not found",
			puuid:           testPuuid,
			matchIds:        []string{"EUW1_1"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Could not parse any match details.",
		},
		{
			name:           "malformed puuid never reaches the upstream",
			puuid:          "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, mockRiotApi := setupMatchRouter()

			if tt.matchIds != nil {
				mockRiotApi.On("MatchIDsByPuuid", mock.Anything, tt.puuid, 0, 10).
					Return(tt.matchIds, tt.listError).Once()

				for _, matchId := range tt.matchIds {
					mockRiotApi.On("MatchByID", mock.Anything, matchId).
						Return([]byte("{}"), nil).Once()
				}
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/match/"+tt.puuid, nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Contains(t, w.Body.String(), tt.expectedMessage)
			}
			testutil.VerifyAllMocks(t, mockRiotApi)
		})
	}
}

func TestGetMatchHistoryPaginationBinding(t *testing.T) {
	engine, mockRiotApi := setupMatchRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/match/"+testPuuid+"?count=500", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "error"))
	testutil.VerifyAllMocks(t, mockRiotApi)
}
