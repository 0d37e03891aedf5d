package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	observations []observation
}

func (r *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.observations = append(r.observations, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &recordingObserver{}

	e := echo.New()
	e.Use(NewMetricsMiddleware(observer).Handle)
	e.GET("/api/v1/order/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}

		return c.NoContent(http.StatusOK)
	})

	for _, target := range []string{"/api/v1/order/1", "/api/v1/order/missing", "/nowhere"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.Len(t, observer.observations, 3)
	assert.Equal(t, observation{http.MethodGet, "/api/v1/order/:id", http.StatusOK}, observer.observations[0])
	assert.Equal(t, observation{http.MethodGet, "/api/v1/order/:id", http.StatusNotFound}, observer.observations[1])
	assert.Equal(t, http.StatusNotFound, observer.observations[2].status)
}
