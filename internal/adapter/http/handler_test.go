package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "resume-templates/internal/adapter/http"
	"resume-templates/internal/domain"
	"resume-templates/internal/render"
	"resume-templates/internal/usecase"
	"resume-templates/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct{}

func (stubRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type MockJobsStore struct {
	mock.Mock
}

func (m *MockJobsStore) Save(ctx context.Context, j *domain.ExportJob) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobsStore) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockJobsStore) ListForUser(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}

func newApp(t *testing.T, store httpadapter.JobsStore, aiClient *ai.Client) *fiber.App {
	t.Helper()
	registry := render.Builtin()
	p := usecase.NewProcessor(stubRenderer{}, store, registry, "../../../templates/resume.schema.json", t.TempDir(), "en")
	h := httpadapter.NewHandler(p, store, registry, aiClient)
	app := fiber.New()
	h.Register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestListTemplates(t *testing.T) {
	app := newApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/templates", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Templates []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"templates"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Templates, 29)
	assert.Equal(t, "gqr-resume-classic", body.Templates[0].Key)
	for _, tpl := range body.Templates {
		assert.NotEmpty(t, tpl.Name, "key %s", tpl.Key)
	}
}

func TestRenderPreview(t *testing.T) {
	app := newApp(t, nil, nil)

	t.Run("renders the posted resume", func(t *testing.T) {
		resp := postJSON(t, app, "/templates/gqr-resume-classic/render", map[string]interface{}{
			"resume": map[string]interface{}{
				"firstName": "Jane",
				"lastName":  "Doe",
				"summary":   "An engineer.",
			},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		html, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(html), "Jane Doe")
		assert.Contains(t, string(html), `data-section="profile"`)
	})

	t.Run("language in the request wins", func(t *testing.T) {
		resp := postJSON(t, app, "/templates/gqr-resume-classic/render", map[string]interface{}{
			"language": "es",
			"resume":   map[string]interface{}{"summary": "Texto."},
		})
		html, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(html), "Perfil")
	})

	t.Run("unknown template is 404", func(t *testing.T) {
		resp := postJSON(t, app, "/templates/nope/render", map[string]interface{}{
			"resume": map[string]interface{}{},
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestStartJob(t *testing.T) {
	t.Run("accepts and returns a job id", func(t *testing.T) {
		store := new(MockJobsStore)
		store.On("Save", mock.Anything, mock.Anything).Return(nil)
		app := newApp(t, store, nil)

		resp := postJSON(t, app, "/jobs/start", map[string]interface{}{
			"userId":      "9136d765-327d-4cf3-bf1c-98aa1449e52d",
			"templateKey": "gqr-resume-classic",
			"resume":      map[string]interface{}{"firstName": "Jane"},
		})
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["jobId"])
		assert.Equal(t, "started", body["status"])
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		app := newApp(t, nil, nil)
		resp := postJSON(t, app, "/jobs/start", map[string]interface{}{
			"userId": "not-a-uuid",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetJob(t *testing.T) {
	store := new(MockJobsStore)
	store.On("GetByID", mock.Anything, "abc").
		Return(map[string]interface{}{"id": "abc", "status": "completed"}, nil)
	app := newApp(t, store, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/abc", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body["status"])
}

func TestListJobs(t *testing.T) {
	store := new(MockJobsStore)
	store.On("ListForUser", mock.Anything, "u1").
		Return([]map[string]interface{}{{"id": "j1"}, {"id": "j2"}}, nil)
	app := newApp(t, store, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/u1/jobs", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Jobs []map[string]interface{} `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Jobs, 2)
}

func TestSuggestionsErrorMapping(t *testing.T) {
	t.Run("rate limit maps to 429 with retry-after", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		app := newApp(t, nil, ai.NewClient(srv.URL, "en"))
		resp := postJSON(t, app, "/suggestions", map[string]interface{}{"profession": "Engineer"})
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "7", resp.Header.Get("Retry-After"))
	})

	t.Run("premium gate maps to 403", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		app := newApp(t, nil, ai.NewClient(srv.URL, "en"))
		resp := postJSON(t, app, "/score", map[string]interface{}{"resume": map[string]interface{}{}})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("happy path proxies suggestions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"suggestions": []map[string]string{{"title": "Did a thing"}},
			})
		}))
		defer srv.Close()

		app := newApp(t, nil, ai.NewClient(srv.URL, "en"))
		resp := postJSON(t, app, "/suggestions", map[string]interface{}{"profession": "Engineer"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Suggestions []ai.Suggestion `json:"suggestions"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Suggestions, 1)
		assert.Equal(t, "Did a thing", body.Suggestions[0].Title)
	})

	t.Run("missing ai client is 503", func(t *testing.T) {
		app := newApp(t, nil, nil)
		resp := postJSON(t, app, "/score", map[string]interface{}{})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
