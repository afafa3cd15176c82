package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/families/f1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "f1",
			"husband": {"id": "p-h", "first_name": "John", "last_name": "Smith", "sex": "M"},
			"wife": {"id": "p-w", "first_name": "Mary", "last_name": "Smith", "sex": "F"},
			"marriage_date": "1980-04-12",
			"children": [{"person": {"id": "p-c", "first_name": "Carl", "last_name": "Smith", "sex": "M", "has_own_family": true, "own_families": [{"family_id": "f2", "spouse": {"id": "p-s", "name": "Jane Doe", "sex": "F"}}]}}],
			"events": [{"type": "Marriage", "date": "1980-04-12", "place": "Oslo"}]
		}`))
	})
	mux.HandleFunc("GET /api/families/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Family not found"}`))
	})
	mux.HandleFunc("GET /api/families/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`not json`))
	})
	return httptest.NewServer(mux)
}

func TestClientGetFamilyDetail(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, logger.Discard())
	fam, err := c.GetFamilyDetail(context.Background(), "f1")
	if err != nil {
		t.Fatalf("GetFamilyDetail failed: %v", err)
	}

	if fam.ID != "f1" {
		t.Errorf("id = %q, want f1", fam.ID)
	}
	if fam.Husband == nil || fam.Husband.FullName() != "John Smith" {
		t.Error("husband not decoded")
	}
	if len(fam.Children) != 1 {
		t.Fatalf("decoded %d children, want 1", len(fam.Children))
	}
	child := fam.Children[0].Person
	if !child.HasOwnFamily || len(child.OwnFamilies) != 1 {
		t.Fatal("child own families not decoded")
	}
	if sp := child.OwnFamilies[0].Spouse; sp == nil || sp.Name != "Jane Doe" {
		t.Error("spouse summary not decoded")
	}
	if len(fam.Events) != 1 || fam.Events[0].Type != "Marriage" {
		t.Error("events not decoded")
	}
}

func TestClientNotFound(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, logger.Discard())
	_, err := c.GetFamilyDetail(context.Background(), "missing")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nf.Detail != "Family not found" {
		t.Errorf("detail = %q, want server-provided message", nf.Detail)
	}
	if UserMessage(err) != "Family not found" {
		t.Errorf("UserMessage = %q, want the structured detail", UserMessage(err))
	}
}

func TestClientServerErrorWithoutDetail(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, logger.Discard())
	_, err := c.GetFamilyDetail(context.Background(), "teapot")

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %T: %v", err, err)
	}
	if se.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d, want %d", se.StatusCode, http.StatusTeapot)
	}
	// No structured detail: the user sees the generic message.
	if UserMessage(err) != GenericLoadFailure {
		t.Errorf("UserMessage = %q, want %q", UserMessage(err), GenericLoadFailure)
	}
}

func TestClientNetworkError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second, logger.Discard())
	_, err := c.GetFamilyDetail(context.Background(), "f1")

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if UserMessage(err) != GenericLoadFailure {
		t.Errorf("UserMessage = %q, want %q", UserMessage(err), GenericLoadFailure)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&NotFoundError{FamilyID: "x"}) {
		t.Error("IsNotFound should match a NotFoundError")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound should not match arbitrary errors")
	}
}
