package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/document"
	"github.com/profolio/profolio-cli/internal/types"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(api.New(server.URL, nil))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestList_ReplacesCollection(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resumes", r.URL.Path)
		writeJSON(t, w, []types.Resume{
			{ID: "r1", Title: "First", Template: types.TemplateProfessional},
			{ID: "r2", Title: "Second", Template: types.TemplateModern},
		})
	}))

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, got, svc.Collection())
}

func TestSave_CreateAssignsIdentity(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/resumes", r.URL.Path)

		var in types.Resume
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "r1"
		writeJSON(t, w, in)
	}))

	saved, err := svc.Save(context.Background(), document.NewResume("Draft"))
	require.NoError(t, err)
	assert.Equal(t, "r1", saved.ID)

	collection := svc.Collection()
	require.Len(t, collection, 1)
	assert.Equal(t, "r1", collection[0].ID)
}

func TestSave_UpdateRoutesToPut(t *testing.T) {
	var method, path string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		var in types.Resume
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(t, w, in)
	}))

	resume := document.NewResume("Persisted")
	resume.ID = "r1"
	_, err := svc.Save(context.Background(), resume)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/resumes/r1", path)
}

func TestSave_CreateThenUpdate(t *testing.T) {
	puts := 0
	posts := 0
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in types.Resume
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		switch r.Method {
		case http.MethodPost:
			posts++
			in.ID = "r1"
		case http.MethodPut:
			puts++
		}
		writeJSON(t, w, in)
	}))

	saved, err := svc.Save(context.Background(), document.NewResume("Draft"))
	require.NoError(t, err)

	// The id from the create binds all later saves to update.
	_, err = svc.Save(context.Background(), *saved)
	require.NoError(t, err)
	assert.Equal(t, 1, posts)
	assert.Equal(t, 1, puts)
}

func TestSave_RejectsUnknownTemplate(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	resume := document.NewResume("Draft")
	resume.Template = "baroque"
	_, err := svc.Save(context.Background(), resume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baroque")
}

func TestSave_NormalizesBeforeSend(t *testing.T) {
	var sent types.Document
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in types.Resume
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		sent = in.Data
		in.ID = "r1"
		writeJSON(t, w, in)
	}))

	resume := document.NewResume("Draft")
	resume.Data.Experiences = []types.Experience{{Company: "Acme"}}
	resume.Data.Skills = []string{"Go", "Go", ""}

	_, err := svc.Save(context.Background(), resume)
	require.NoError(t, err)
	require.Len(t, sent.Experiences, 1)
	assert.NotEmpty(t, sent.Experiences[0].ID)
	assert.Equal(t, []string{"Go"}, sent.Skills)
}

func TestSave_ConcurrentSameResumeSerialized(t *testing.T) {
	inFlight := 0
	maxInFlight := 0
	var mu sync.Mutex
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		var in types.Resume
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(t, w, in)

		mu.Lock()
		inFlight--
		mu.Unlock()
	}))

	resume := document.NewResume("Persisted")
	resume.ID = "r1"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Save(context.Background(), resume)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight)
}

func TestDelete_Idempotent(t *testing.T) {
	deletes := 0
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, []types.Resume{{ID: "r1", Title: "Doomed", Template: types.TemplateProfessional}})
			return
		}
		deletes++
		if deletes > 1 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"not found"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "r1"))
	assert.Empty(t, svc.Collection())

	// The server no longer knows the id; the second delete still succeeds.
	require.NoError(t, svc.Delete(context.Background(), "r1"))
}

func TestDelete_ServerErrorPropagates(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	}))

	err := svc.Delete(context.Background(), "r1")
	require.Error(t, err)
}

func TestDuplicate_PrependsCopy(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, []types.Resume{{ID: "r1", Title: "Original", Template: types.TemplateProfessional}})
			return
		}
		require.Equal(t, "/resumes/r1/duplicate", r.URL.Path)
		writeJSON(t, w, types.Resume{ID: "r2", Title: "Original (Copy)", Template: types.TemplateProfessional})
	}))

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	copied, err := svc.Duplicate(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r2", copied.ID)

	collection := svc.Collection()
	require.Len(t, collection, 2)
	assert.Equal(t, "r2", collection[0].ID)
}

func TestExportPDF_StreamsBody(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resumes/r1/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPDF(context.Background(), "r1", &buf))
	assert.Equal(t, "%PDF-1.4 fake", buf.String())
}

func TestEmptyID_Rejected(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := svc.Get(context.Background(), "")
	assert.Error(t, err)
	assert.Error(t, svc.Delete(context.Background(), ""))
	_, err = svc.Duplicate(context.Background(), "")
	assert.Error(t, err)
	assert.Error(t, svc.ExportPDF(context.Background(), "", &bytes.Buffer{}))
}
