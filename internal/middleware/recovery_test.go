package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flexium/flexium/internal/telemetry/metrics"

	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("and now panic!")
	})
	handler := PanicRecovery(metrics.NewTestManager())(next)

	req := httptest.NewRequest("GET", "/ledger/state", nil)
	rr := httptest.NewRecorder()

	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, req)
	})
}
