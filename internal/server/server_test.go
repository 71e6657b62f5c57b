package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/fulfilld/ordergraph/internal/kafka"
	mock_server "github.com/fulfilld/ordergraph/internal/server/mocks"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockQueryExecutor, *mock_server.MockQueryBridge, *mock_server.MockHealthChecker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockExecutor := mock_server.NewMockQueryExecutor(ctrl)
	mockBridge := mock_server.NewMockQueryBridge(ctrl)
	mockHealth := mock_server.NewMockHealthChecker(ctrl)

	srv := New(mockExecutor, mockBridge, mockHealth, kafka.NewConsoleProducer(), "audit_logs", zap.NewNop())
	return srv, mockExecutor, mockBridge, mockHealth
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleGenerateQuery(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(bridge *mock_server.MockQueryBridge)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful generation",
			requestBody: map[string]string{"userInput": "orders that are shipped"},
			setupMocks: func(bridge *mock_server.MockQueryBridge) {
				bridge.EXPECT().
					GenerateQuery(gomock.Any(), "orders that are shipped").
					Return(`{ orders(filter: { status: [shipped] }) { id } }`)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"graphqlQuery":"{ orders(filter: { status: [shipped] }) { id } }"}`,
		},
		{
			name:           "missing user input",
			requestBody:    map[string]string{},
			setupMocks:     func(bridge *mock_server.MockQueryBridge) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"User input is required"}`,
		},
		{
			name:        "bridge produced no query",
			requestBody: map[string]string{"userInput": "orders that are shipped"},
			setupMocks: func(bridge *mock_server.MockQueryBridge) {
				bridge.EXPECT().
					GenerateQuery(gomock.Any(), gomock.Any()).
					Return("")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to generate GraphQL query"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, _, mockBridge, _ := newTestServer(t)
			tc.setupMocks(mockBridge)

			rr := postJSON(t, srv.handleGenerateQuery, "/generate-query", tc.requestBody)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestHandleFetchOrders(t *testing.T) {
	generated := `{ orders(filter: { status: [shipped] }) { id } }`

	t.Run("relays execution result", func(t *testing.T) {
		srv, mockExecutor, mockBridge, _ := newTestServer(t)

		mockBridge.EXPECT().
			GenerateQuery(gomock.Any(), "shipped orders").
			Return(generated)
		mockExecutor.EXPECT().
			Execute(gomock.Any(), generated, gomock.Nil(), "").
			Return(&graphql.Result{Data: map[string]interface{}{
				"orders": []interface{}{map[string]interface{}{"id": "ord-1"}},
			}})

		rr := postJSON(t, srv.handleFetchOrders, "/fetch-orders", map[string]string{"userInput": "shipped orders"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":{"orders":[{"id":"ord-1"}]}}`, rr.Body.String())
	})

	t.Run("missing user input", func(t *testing.T) {
		srv, _, _, _ := newTestServer(t)

		rr := postJSON(t, srv.handleFetchOrders, "/fetch-orders", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"User input is required"}`, rr.Body.String())
	})

	t.Run("bridge failure", func(t *testing.T) {
		srv, _, mockBridge, _ := newTestServer(t)

		mockBridge.EXPECT().
			GenerateQuery(gomock.Any(), gomock.Any()).
			Return("")

		rr := postJSON(t, srv.handleFetchOrders, "/fetch-orders", map[string]string{"userInput": "anything"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("execution failure", func(t *testing.T) {
		srv, mockExecutor, mockBridge, _ := newTestServer(t)

		mockBridge.EXPECT().
			GenerateQuery(gomock.Any(), gomock.Any()).
			Return("{ bogus }")
		mockExecutor.EXPECT().
			Execute(gomock.Any(), "{ bogus }", gomock.Nil(), "").
			Return(&graphql.Result{Errors: []gqlerrors.FormattedError{
				{Message: `Cannot query field "bogus" on type "Query".`},
			}})

		rr := postJSON(t, srv.handleFetchOrders, "/fetch-orders", map[string]string{"userInput": "anything"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "Query execution failed")
	})
}

func TestHandleGraphQL(t *testing.T) {
	t.Run("executes the query document", func(t *testing.T) {
		srv, mockExecutor, _, _ := newTestServer(t)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), "{ orders { id } }", gomock.Nil(), "").
			Return(&graphql.Result{Data: map[string]interface{}{"orders": []interface{}{}}})

		rr := postJSON(t, srv.handleGraphQL, "/graphql", map[string]interface{}{"query": "{ orders { id } }"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":{"orders":[]}}`, rr.Body.String())
	})

	t.Run("missing query", func(t *testing.T) {
		srv, _, _, _ := newTestServer(t)

		rr := postJSON(t, srv.handleGraphQL, "/graphql", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Query is required"}`, rr.Body.String())
	})

	t.Run("execution errors stay in the envelope", func(t *testing.T) {
		srv, mockExecutor, _, _ := newTestServer(t)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Nil(), "").
			Return(&graphql.Result{Errors: []gqlerrors.FormattedError{
				{Message: `no resolver defined for field "order"`},
			}})

		rr := postJSON(t, srv.handleGraphQL, "/graphql", map[string]string{"query": `{ order(id: "x") { id } }`})

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		assert.Contains(t, body.Errors[0].Message, "no resolver defined")
	})
}

func TestHandleHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv, _, _, mockHealth := newTestServer(t)

		mockHealth.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		srv.handleHealth(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("store unreachable", func(t *testing.T) {
		srv, _, _, mockHealth := newTestServer(t)

		mockHealth.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		srv.handleHealth(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestRoutesRejectWrongMethod(t *testing.T) {
	srv, _, _, _ := newTestServer(t)
	router := srv.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
