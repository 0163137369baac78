package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "pw", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"abc.def.ghi"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestClient_Register_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"USER_EXISTS","message":"username already taken"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Register(context.Background(), "alice", "pw", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")
	assert.Contains(t, err.Error(), "USER_EXISTS")
}

func TestClient_ListPromotions_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"deal","full_price":10,"promo_price":4,"location":"x"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := c.ListPromotions(context.Background(), "tok123")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "deal", got[0].Title)
	assert.Equal(t, 4.0, got[0].PromoPrice)
}

func TestClient_AddPromotion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/promotions", r.URL.Path)

		var p Promotion
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = 42

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.AddPromotion(context.Background(), "tok", Promotion{Title: "pizza", FullPrice: 30, PromoPrice: 15, Location: "Main St"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "pizza", created.Title)
}

func TestClient_GetPromotion_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"promotion not found"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetPromotion(context.Background(), "tok", 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "promotion not found")
}

func TestClient_DeletePromotion(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"promotion deleted"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeletePromotion(context.Background(), "tok", 7))
	assert.Equal(t, "/promotions/7", gotPath)
}

func TestClient_MalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListPromotions(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
