package registry

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeRegistry is an in-memory registry backend for tests. It stores each
// collection as the raw JSON objects that were seeded or POSTed, filters
// GETs by query parameters the way the real registry does, and records
// every request so tests can assert on call counts and payloads.
type fakeRegistry struct {
	t *testing.T

	mu          sync.Mutex
	nextID      int
	collections map[string][]map[string]interface{}
	posts       []postRecord
	gets        []string // paths of GET requests, in order
}

type postRecord struct {
	Path    string
	Payload map[string]interface{}
}

func newFakeRegistry(t *testing.T) *fakeRegistry {
	return &fakeRegistry{
		t:           t,
		nextID:      0,
		collections: make(map[string][]map[string]interface{}),
	}
}

// seed stores an object with an assigned id and returns that id.
func (f *fakeRegistry) seed(path string, obj map[string]interface{}) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store(path, obj)
}

// store assigns the next id; caller must hold f.mu.
func (f *fakeRegistry) store(path string, obj map[string]interface{}) int {
	f.nextID++
	copied := map[string]interface{}{"id": f.nextID}
	for k, v := range obj {
		copied[k] = v
	}
	f.collections[path] = append(f.collections[path], copied)
	return f.nextID
}

func (f *fakeRegistry) postCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.posts {
		if p.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeRegistry) totalPosts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

func (f *fakeRegistry) lastPost(path string) map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.posts) - 1; i >= 0; i-- {
		if f.posts[i].Path == path {
			return f.posts[i].Payload
		}
	}
	return nil
}

func (f *fakeRegistry) getCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.gets {
		if p == path {
			n++
		}
	}
	return n
}

// matches applies the registry's exact-match filter semantics. device_id
// compares against the object's "device" reference field.
func matches(obj map[string]interface{}, key, want string) bool {
	field := key
	if key == "device_id" {
		field = "device"
	}
	v, ok := obj[field]
	if !ok {
		return false
	}
	return fmt.Sprintf("%v", v) == want
}

func (f *fakeRegistry) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch r.Method {
	case http.MethodGet:
		f.mu.Lock()
		f.gets = append(f.gets, path)
		results := make([]map[string]interface{}, 0)
		for _, obj := range f.collections[path] {
			ok := true
			for key, vals := range r.URL.Query() {
				if !matches(obj, key, vals[0]) {
					ok = false
					break
				}
			}
			if ok {
				results = append(results, obj)
			}
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count":    len(results),
			"next":     nil,
			"previous": nil,
			"results":  results,
		})

	case http.MethodPost:
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.posts = append(f.posts, postRecord{Path: path, Payload: payload})
		f.store(path, payload)
		created := f.collections[path][len(f.collections[path])-1]
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// newTestClient spins up a fake registry and a client pointed at it.
func newTestClient(t *testing.T) (*Client, *fakeRegistry) {
	t.Helper()
	fake := newFakeRegistry(t)
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "test-token")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c, fake
}

// seedDevice stores a device and returns its id.
func (f *fakeRegistry) seedDevice(name string) int {
	return f.seed(pathDevices, map[string]interface{}{"name": name})
}

// seedInterface stores an interface owned by deviceID.
func (f *fakeRegistry) seedInterface(deviceID int, name string) int {
	return f.seed(pathInterfaces, map[string]interface{}{
		"name":   name,
		"device": deviceID,
	})
}

// requireNoGet fails the test if any recorded GET hit the given path.
func (f *fakeRegistry) requireNoGet(path string) {
	f.t.Helper()
	if n := f.getCount(path); n != 0 {
		f.t.Errorf("expected no GET %s, saw %d", path, n)
	}
}
