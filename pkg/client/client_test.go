package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("test-token"))
	require.NoError(t, c.Health(context.Background()))
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClient_CreateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/", r.URL.Path)

		var u User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(u))
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.CreateUser(context.Background(), User{
		ID:      "123456782",
		Name:    "Noa Levi",
		Phone:   "+972501234567",
		Address: "12 Herzl St, Tel Aviv",
	})
	require.NoError(t, err)
	assert.Equal(t, "123456782", created.ID)
}

func TestClient_GetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not_found","error_description":"user not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetUser(context.Background(), "123456782")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "user not found")
}

func TestClient_CreateUser_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"conflict","error_description":"user with this id already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateUser(context.Background(), User{ID: "123456782"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestClient_PatchUser_OmitsAbsentFields(t *testing.T) {
	var rawBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/123456782/", r.URL.Path)

		var err error
		rawBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123456782","name":"Noa Levi","phone":"+972501234567","address":"45 Jaffa Rd"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	address := "45 Jaffa Rd"
	patched, err := c.PatchUser(context.Background(), "123456782", UserPatch{Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "45 Jaffa Rd", patched.Address)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rawBody, &keys))
	assert.Contains(t, keys, "address")
	assert.NotContains(t, keys, "name")
	assert.NotContains(t, keys, "id")
}

func TestClient_DeleteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteUser(context.Background(), "123456782"))
}
