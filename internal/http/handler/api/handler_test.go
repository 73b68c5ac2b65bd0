package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hettlage/superlists/internal/adapter/memory"
	"github.com/hettlage/superlists/internal/core/service"
	"github.com/pkg/errors"
)

func TestListsAPI(t *testing.T) {
	server := httptest.NewServer(NewHandler(service.NewListManager(memory.NewListStore())))
	t.Cleanup(server.Close)

	var created GetListResponse
	if e, g := http.StatusCreated, doJSON(t, http.MethodPost, server.URL+"/lists", `{"text": " Buy milk "}`, &created); e != g {
		t.Fatalf("POST /lists: expected status '%d', got '%d'", e, g)
	}

	if created.List.ID <= 0 {
		t.Fatalf("created.List.ID: expected a positive id, got '%d'", created.List.ID)
	}

	if e, g := 1, len(created.List.Items); e != g {
		t.Fatalf("len(created.List.Items): expected '%d', got '%d'", e, g)
	}

	if e, g := "Buy milk", created.List.Items[0].Text; e != g {
		t.Errorf("created.List.Items[0].Text: expected '%s', got '%s'", e, g)
	}

	listURL := server.URL + "/lists/" + jsonNumber(created.List.ID)

	var added AddItemResponse
	if e, g := http.StatusCreated, doJSON(t, http.MethodPost, listURL+"/items", `{"text": "Buy eggs"}`, &added); e != g {
		t.Fatalf("POST /lists/{id}/items: expected status '%d', got '%d'", e, g)
	}

	if e, g := 2, added.Item.Position; e != g {
		t.Errorf("added.Item.Position: expected '%d', got '%d'", e, g)
	}

	var retrieved GetListResponse
	if e, g := http.StatusOK, doJSON(t, http.MethodGet, listURL, "", &retrieved); e != g {
		t.Fatalf("GET /lists/{id}: expected status '%d', got '%d'", e, g)
	}

	if e, g := "/lists/"+jsonNumber(created.List.ID)+"/", retrieved.List.URL; e != g {
		t.Errorf("retrieved.List.URL: expected '%s', got '%s'", e, g)
	}

	expected := []string{"Buy milk", "Buy eggs"}

	if e, g := len(expected), len(retrieved.List.Items); e != g {
		t.Fatalf("len(retrieved.List.Items): expected '%d', got '%d'", e, g)
	}

	for i, text := range expected {
		if e, g := text, retrieved.List.Items[i].Text; e != g {
			t.Errorf("retrieved.List.Items[%d].Text: expected '%s', got '%s'", i, e, g)
		}

		if e, g := i+1, retrieved.List.Items[i].Position; e != g {
			t.Errorf("retrieved.List.Items[%d].Position: expected '%d', got '%d'", i, e, g)
		}
	}
}

func TestListsAPIErrors(t *testing.T) {
	server := httptest.NewServer(NewHandler(service.NewListManager(memory.NewListStore())))
	t.Cleanup(server.Close)

	type testCase struct {
		Method         string
		Path           string
		Body           string
		ExpectedStatus int
	}

	testCases := []testCase{
		{Method: http.MethodPost, Path: "/lists", Body: `{"text": ""}`, ExpectedStatus: http.StatusBadRequest},
		{Method: http.MethodPost, Path: "/lists", Body: `not json`, ExpectedStatus: http.StatusBadRequest},
		{Method: http.MethodPost, Path: "/lists", Body: `{"label": "Buy milk"}`, ExpectedStatus: http.StatusBadRequest},
		{Method: http.MethodGet, Path: "/lists/12345", ExpectedStatus: http.StatusNotFound},
		{Method: http.MethodGet, Path: "/lists/abc", ExpectedStatus: http.StatusNotFound},
		{Method: http.MethodPost, Path: "/lists/12345/items", Body: `{"text": "Buy milk"}`, ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Method+" "+tc.Path, func(t *testing.T) {
			var res ErrorResponse
			if e, g := tc.ExpectedStatus, doJSON(t, tc.Method, server.URL+tc.Path, tc.Body, &res); e != g {
				t.Errorf("status: expected '%d', got '%d'", e, g)
			}

			if res.Error == "" {
				t.Errorf("res.Error should not be empty")
			}
		})
	}
}

func doJSON(t *testing.T, method string, url string, body string, res any) int {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req.Header.Set("Content-Type", "application/json")

	httpRes, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer httpRes.Body.Close()

	if err := json.NewDecoder(httpRes.Body).Decode(res); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return httpRes.StatusCode
}

func jsonNumber(id int64) string {
	data, _ := json.Marshal(id)
	return string(data)
}
