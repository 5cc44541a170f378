package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_FetchesRemoteMetadata(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		switch r.URL.Path {
		case "/habits.json":
			w.Write([]byte(`{"categories":[{"id":"remote","pathway":"break-bad-habit","title":{"en":"Remote"},"templates":[{"habitId":"h","label":{"en":"H"},"script":"s-1","status":"ready"}]}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := NewPlanService(srv.URL)
	ctx := context.Background()

	meta := svc.Metadata(ctx)
	require.NotNil(t, meta)
	require.Len(t, meta.Categories, 1)
	assert.Equal(t, "remote", meta.Categories[0].ID)

	// Second call is served from cache.
	svc.Metadata(ctx)
	assert.Equal(t, 1, hits)
}

func TestPlanService_FetchesRemoteScript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/scripts/custom-7.json" {
			w.Write([]byte(`{"id":"custom-7","days":[{"day":1,"affirmation":{"en":"hi"}}]}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := NewPlanService(srv.URL)
	doc := svc.Script(context.Background(), "custom-7")
	require.NotNil(t, doc)
	assert.Equal(t, "custom-7", doc.ID)
	assert.Len(t, doc.Days, 1)
}

func TestPlanService_FallsBackToBundledScript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewPlanService(srv.URL)
	ctx := context.Background()

	doc := svc.Script(ctx, "quit-smoking-21")
	require.NotNil(t, doc, "bundled copy substitutes for the failed fetch")
	assert.Equal(t, "quit-smoking-21", doc.ID)
	assert.Len(t, doc.Days, 21)

	// No bundled copy registered for this id: soft failure, no data.
	assert.Nil(t, svc.Script(ctx, "no-such-script"))
}

func TestPlanService_MalformedJSONIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"days": [`))
	}))
	defer srv.Close()

	svc := NewPlanService(srv.URL)
	assert.Nil(t, svc.Script(context.Background(), "no-such-script"))
}

func TestPlanService_EmptyBaseURLServesBundledOnly(t *testing.T) {
	svc := NewPlanService("")
	ctx := context.Background()

	meta := svc.Metadata(ctx)
	require.NotNil(t, meta)
	require.NotNil(t, meta.TemplateByID("quit-smoking"))

	doc := svc.Script(ctx, "early-riser-14")
	require.NotNil(t, doc)
	assert.Len(t, doc.Days, 14)
}
