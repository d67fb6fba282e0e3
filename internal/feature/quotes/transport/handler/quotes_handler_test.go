package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"market_terminal/internal/feature/quotes/domain/entity"
	"market_terminal/internal/feature/quotes/usecase"
)

// mockTickersUsecase is a func-field mock of the TickersUsecase interface.
type mockTickersUsecase struct {
	GetTickersFunc func(ctx context.Context) ([]entity.Quote, error)
	GetMoversFunc  func(ctx context.Context) (usecase.Movers, error)
}

func (m *mockTickersUsecase) GetTickers(ctx context.Context) ([]entity.Quote, error) {
	if m.GetTickersFunc != nil {
		return m.GetTickersFunc(ctx)
	}
	return nil, nil
}

func (m *mockTickersUsecase) GetMovers(ctx context.Context) (usecase.Movers, error) {
	if m.GetMoversFunc != nil {
		return m.GetMoversFunc(ctx)
	}
	return usecase.Movers{}, nil
}

func fptr(v float64) *float64 { return &v }

func TestQuotesHandler_Tickers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockFunc       func(ctx context.Context) ([]entity.Quote, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns resolved quotes",
			mockFunc: func(ctx context.Context) ([]entity.Quote, error) {
				return []entity.Quote{
					{Symbol: "AAPL", Price: fptr(189.95), ChangePct: fptr(1.23)},
					{Symbol: "ZZZZINVALID"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"symbol":"AAPL","price":189.95,"change_pct":1.23},{"symbol":"ZZZZINVALID","price":null,"change_pct":null}]`,
		},
		{
			name: "success: empty watchlist yields empty array",
			mockFunc: func(ctx context.Context) ([]entity.Quote, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "failure: watchlist storage error",
			mockFunc: func(ctx context.Context) ([]entity.Quote, error) {
				return nil, errors.New("database connection failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewQuotesHandler(&mockTickersUsecase{GetTickersFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/api/tickers", handler.Tickers)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/tickers", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestQuotesHandler_Movers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuotesHandler(&mockTickersUsecase{
		GetMoversFunc: func(ctx context.Context) (usecase.Movers, error) {
			return usecase.Movers{
				Gainers: []entity.Quote{{Symbol: "NVDA", Price: fptr(130), ChangePct: fptr(4.5)}},
				Losers:  []entity.Quote{{Symbol: "INTC", Price: fptr(20), ChangePct: fptr(-3.2)}},
			}, nil
		},
	})

	router := gin.New()
	router.GET("/api/movers", handler.Movers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/movers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"gainers":[{"symbol":"NVDA","price":130,"change_pct":4.5}],"losers":[{"symbol":"INTC","price":20,"change_pct":-3.2}]}`,
		w.Body.String())
}

func TestQuotesHandler_Movers_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuotesHandler(&mockTickersUsecase{
		GetMoversFunc: func(ctx context.Context) (usecase.Movers, error) {
			return usecase.Movers{}, errors.New("database connection failed")
		},
	})

	router := gin.New()
	router.GET("/api/movers", handler.Movers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/movers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
