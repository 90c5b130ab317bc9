package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeAPI is a minimal in-memory implementation of the board API. Column
// documents use _id like a document store would.
type fakeAPI struct {
	mu       sync.Mutex
	columns  map[string]map[string]any
	nextID   int
	requests []recorded
	// failWith makes every request on the matching method answer with this
	// status and body
	failMethod string
	failStatus int
	failBody   string
}

type recorded struct {
	Method string
	Path   string
	Body   map[string]any
}

func newFakeAPI(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()
	api := &fakeAPI{columns: make(map[string]map[string]any)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/columns", api.listColumns)
	mux.HandleFunc("POST /api/columns", api.createColumn)
	mux.HandleFunc("PUT /api/columns/{id}", api.updateColumn)
	mux.HandleFunc("DELETE /api/columns/{id}", api.deleteColumn)
	mux.HandleFunc("POST /api/columns/{id}/cards", api.createCard)
	mux.HandleFunc("PUT /api/columns/{id}/cards/{cardId}", api.updateCard)
	mux.HandleFunc("DELETE /api/columns/{id}/cards/{cardId}", api.deleteCard)

	srv := httptest.NewServer(api.middleware(mux))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return api, client
}

func (a *fakeAPI) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		a.mu.Lock()
		a.requests = append(a.requests, recorded{Method: r.Method, Path: r.URL.Path, Body: body})
		failing := a.failMethod == r.Method
		a.mu.Unlock()

		if failing {
			w.WriteHeader(a.failStatus)
			_, _ = w.Write([]byte(a.failBody))
			return
		}

		r = r.WithContext(withBody(r.Context(), body))
		next.ServeHTTP(w, r)
	})
}

func (a *fakeAPI) failNext(method string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failMethod, a.failStatus, a.failBody = method, status, body
}

func (a *fakeAPI) Requests() []recorded {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]recorded(nil), a.requests...)
}

func (a *fakeAPI) seed(id string, doc map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	doc["_id"] = id
	if _, ok := doc["cards"]; !ok {
		doc["cards"] = map[string]any{}
	}
	a.columns[id] = doc
}

func (a *fakeAPI) newID(prefix string) string {
	a.nextID++
	return fmt.Sprintf("%s%d", prefix, a.nextID)
}

func (a *fakeAPI) listColumns(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]map[string]any, 0, len(a.columns))
	for _, c := range a.columns {
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *fakeAPI) createColumn(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.newID("col")
	body["_id"] = id
	body["cards"] = map[string]any{}
	a.columns[id] = body
	writeJSON(w, http.StatusCreated, body)
}

func (a *fakeAPI) updateColumn(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	col, ok := a.columns[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "column does not exist"})
		return
	}
	for k, v := range bodyFrom(r.Context()) {
		col[k] = v
	}
	writeJSON(w, http.StatusOK, col)
}

func (a *fakeAPI) deleteColumn(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.columns, r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (a *fakeAPI) createCard(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	a.mu.Lock()
	defer a.mu.Unlock()
	col, ok := a.columns[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "column does not exist"})
		return
	}
	id := a.newID("card")
	col["cards"].(map[string]any)[id] = body
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "text": body["text"]})
}

func (a *fakeAPI) updateCard(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	col, ok := a.columns[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "column does not exist"})
		return
	}
	cards := col["cards"].(map[string]any)
	card, ok := cards[r.PathValue("cardId")].(map[string]any)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	for k, v := range bodyFrom(r.Context()) {
		card[k] = v
	}
	writeJSON(w, http.StatusOK, card)
}

func (a *fakeAPI) deleteCard(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if col, ok := a.columns[r.PathValue("id")]; ok {
		delete(col["cards"].(map[string]any), r.PathValue("cardId"))
	}
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
