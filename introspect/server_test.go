package introspect

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sclib/scobject/object"
)

func TestObjectsEndpoints(t *testing.T) {
	reg := NewRegistry(nil)

	kl := object.KlassNew()
	defer kl.Unref()
	reg.Register("root-klass", kl)

	r := NewEngine(reg, nil)

	req := httptest.NewRequest(http.MethodGet, "/objects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /objects status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "root-klass") {
		t.Fatalf("GET /objects body = %q, missing registered name", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/objects/root-klass", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /objects/root-klass status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "refs") {
		t.Fatalf("GET /objects/root-klass body = %q, expected a write() descriptor", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/objects/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /objects/missing status = %d, want 404", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/objects/root-klass/istype/"+object.BaseTypeName, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET istype status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "true") {
		t.Fatalf("GET istype body = %q, want is_type:true", w.Body.String())
	}
}
