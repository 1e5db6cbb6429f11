package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savasana/yoga-client/internal/config"
	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/models"
)

// newTestGateway builds an httpResourceGateway pointed at a test server.
func newTestGateway(t *testing.T, serverURL string) *httpResourceGateway {
	t.Helper()
	serverCfg := config.ServerConn{Address: serverURL, RequestTimeout: 5 * time.Second}

	g, err := NewHTTPResourceGateway(serverCfg, logger.Nop())
	require.NoError(t, err)
	return g.(*httpResourceGateway)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://yoga.example/")
	require.NoError(t, err)
	assert.Equal(t, "https://yoga.example", got)

	_, err = normalizeBaseURL("   ")
	require.Error(t, err)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	identity := models.Identity{
		Token:     "opaque-token",
		Type:      "Bearer",
		ID:        1,
		Username:  "yoga@studio.com",
		FirstName: "Admin",
		LastName:  "Admin",
		Admin:     true,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "yoga@studio.com", req.Email)
		assert.Equal(t, "test!1234", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(identity)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Login(context.Background(), models.LoginRequest{Email: "yoga@studio.com", Password: "test!1234"})

	require.NoError(t, err)
	assert.Equal(t, identity, got)
	assert.Equal(t, "opaque-token", g.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Bad credentials"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, g.Token(), "no token may be stored on a failed login")
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	err := g.Register(context.Background(), models.RegisterRequest{
		Email: "new@studio.com", FirstName: "New", LastName: "User", Password: "secret",
	})

	require.NoError(t, err)
	assert.Empty(t, g.Token(), "register must not log the user in")
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Error: Email is already taken!"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	err := g.Register(context.Background(), models.RegisterRequest{Email: "dup@studio.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestSessions_BearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/session", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Session{{ID: 1, Name: "Morning Flow"}})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("opaque-token")

	sessions, err := g.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Morning Flow", sessions[0].Name)
}

func TestSession_Detail(t *testing.T) {
	want := models.Session{ID: 7, Name: "Evening Stretch", TeacherID: 2, Users: []int64{1, 3}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Session(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Users, got.Users)
}

func TestSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Session(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSession(t *testing.T) {
	date := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	form := models.SessionForm{Name: "Beginner Yoga", Date: date, TeacherID: 2, Description: "Gentle intro"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session", r.URL.Path)

		var got models.SessionForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, form.Name, got.Name)
		assert.Equal(t, form.TeacherID, got.TeacherID)
		assert.True(t, got.Date.Equal(form.Date))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Session{ID: 10, Name: form.Name, TeacherID: form.TeacherID})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	created, err := g.CreateSession(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestUpdateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/session/3", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Session{ID: 3, Name: "Renamed"})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	updated, err := g.UpdateSession(context.Background(), 3, models.SessionForm{Name: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestDeleteSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/session/3", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	require.NoError(t, g.DeleteSession(context.Background(), 3))
}

// ── Participation ────────────────────────────────────────────────────────────

func TestParticipate_PostWithEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/5/participate/9", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	require.NoError(t, g.Participate(context.Background(), 5, 9))
}

func TestUnParticipate_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/session/5/participate/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	require.NoError(t, g.UnParticipate(context.Background(), 5, 9))
}

func TestParticipate_ServerRejectsDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("already participating"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	err := g.Participate(context.Background(), 5, 9)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Teachers & users ─────────────────────────────────────────────────────────

func TestTeacher_Detail(t *testing.T) {
	want := models.Teacher{ID: 2, FirstName: "Margot", LastName: "DELAHAYE"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/teacher/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Teacher(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, want.FirstName, got.FirstName)
}

func TestDeleteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/user/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	require.NoError(t, g.DeleteUser(context.Background(), 9))
}

func TestMapHTTPError_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Sessions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
