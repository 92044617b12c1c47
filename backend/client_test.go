package backend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))

	_, err := client.WithToken("secret-token").do(http.MethodGet, "/users", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDoWithoutTokenSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	_, err := client.do(http.MethodGet, "/course", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDoReturnsServerMessageOnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Email is already registered!"}`))
	}))

	_, err := client.do(http.MethodPost, "/users", map[string]string{})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email is already registered!", apiErr.Message)
}

func TestDoFallsBackToGenericMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>nope</html>`))
	}))

	_, err := client.do(http.MethodGet, "/services", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(nil))
}

func TestDecodeListAcceptsBareArray(t *testing.T) {
	items, err := decodeList[map[string]any]([]byte(`[{"id":1},{"id":2}]`))
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDecodeListAcceptsDataEnvelope(t *testing.T) {
	items, err := decodeList[map[string]any]([]byte(`{"data":[{"id":1}]}`))
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDecodeListRejectsOtherShapes(t *testing.T) {
	_, err := decodeList[map[string]any]([]byte(`{"message":"not a list"}`))
	assert.Error(t, err)

	_, err = decodeList[map[string]any]([]byte(`"oops"`))
	assert.Error(t, err)
}

func TestDecodeOneUnwrapsDataEnvelope(t *testing.T) {
	type record struct {
		ID uint `json:"id"`
	}

	direct, err := decodeOne[record]([]byte(`{"id":7}`))
	require.NoError(t, err)
	assert.Equal(t, uint(7), direct.ID)

	wrapped, err := decodeOne[record]([]byte(`{"data":{"id":9}}`))
	require.NoError(t, err)
	assert.Equal(t, uint(9), wrapped.ID)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok-123","user":{"id":4,"email":"admin@clebut.com"}}`))
	}))

	login, err := client.Login("admin@clebut.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", login.Token)
	assert.Equal(t, uint(4), login.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials!"}`))
	}))

	_, err := client.Login("admin@clebut.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}
