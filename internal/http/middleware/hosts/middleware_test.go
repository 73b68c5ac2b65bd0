package hosts

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware("superlists.example.com", "localhost")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	type testCase struct {
		Host     string
		Expected int
	}

	testCases := []testCase{
		{Host: "superlists.example.com", Expected: http.StatusNoContent},
		{Host: "SUPERLISTS.example.com:443", Expected: http.StatusNoContent},
		{Host: "localhost:8000", Expected: http.StatusNoContent},
		{Host: "evil.example.com", Expected: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.Host, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tc.Host

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := tc.Expected, res.Code; e != g {
				t.Errorf("res.Code: expected '%d', got '%d'", e, g)
			}
		})
	}
}
