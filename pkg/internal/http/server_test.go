package http

import (
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/testepaprubenaecerco/Posts/pkg/internal/database"
)

func newTestServer(t *testing.T) *App {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:http_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))
	database.C = db

	return NewServer()
}

func jsonRequest(method, target, payload string) *nethttp.Request {
	var body io.Reader
	if len(payload) > 0 {
		body = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, body)
	if len(payload) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func decodeBody(t *testing.T, resp *nethttp.Response, out any) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, jsoniter.Unmarshal(raw, out))
}

func TestPostLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Test(jsonRequest(fiber.MethodPost, "/posts", `{"autor_id":"rita","texto":"hello feed","imagem":"https://img.example/cat.png"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Equal(t, "ok", created["status"])
	postID, _ := created["id"].(string)
	require.NotEmpty(t, postID)

	resp, err = srv.Test(jsonRequest(fiber.MethodGet, "/posts", ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var feed []map[string]any
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	entry := feed[0]
	assert.Equal(t, postID, entry["id"])
	assert.Equal(t, "hello feed", entry["texto"])
	assert.Equal(t, "https://img.example/cat.png", entry["imagem_post"])
	assert.EqualValues(t, 0, entry["likes"])
	assert.EqualValues(t, 0, entry["comentarios"])
	assert.Contains(t, entry, "data")

	author, ok := entry["autor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rita", author["id"])
	assert.Equal(t, "Utilizador", author["username"])

	// Like toggling flips on and off.
	resp, err = srv.Test(jsonRequest(fiber.MethodPost, "/posts/"+postID+"/like", `{"user_id":"fan"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var likeState map[string]any
	decodeBody(t, resp, &likeState)
	assert.Equal(t, true, likeState["liked"])

	resp, err = srv.Test(jsonRequest(fiber.MethodPost, "/posts/"+postID+"/like", `{"user_id":"fan"}`))
	require.NoError(t, err)
	decodeBody(t, resp, &likeState)
	assert.Equal(t, false, likeState["liked"])

	// Comments round trip with the author embedded.
	resp, err = srv.Test(jsonRequest(fiber.MethodPost, "/posts/"+postID+"/comments", `{"autor_id":"ana","texto":"boa!"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = srv.Test(jsonRequest(fiber.MethodGet, "/posts/"+postID+"/comments", ""))
	require.NoError(t, err)
	var comments []map[string]any
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "boa!", comments[0]["texto"])
	commentAuthor, ok := comments[0]["autor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ana", commentAuthor["id"])

	// Deleting the post takes its comments along.
	resp, err = srv.Test(jsonRequest(fiber.MethodDelete, "/posts/"+postID, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var status map[string]any
	decodeBody(t, resp, &status)
	assert.Equal(t, "ok", status["status"])

	resp, err = srv.Test(jsonRequest(fiber.MethodGet, "/posts", ""))
	require.NoError(t, err)
	decodeBody(t, resp, &feed)
	assert.Empty(t, feed)

	resp, err = srv.Test(jsonRequest(fiber.MethodGet, "/posts/"+postID+"/comments", ""))
	require.NoError(t, err)
	decodeBody(t, resp, &comments)
	assert.Empty(t, comments)
}

func TestValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		method  string
		target  string
		payload string
	}{
		{fiber.MethodPost, "/posts", `{"texto":"authorless"}`},
		{fiber.MethodPost, "/posts", `{"autor_id":"rita"}`},
		{fiber.MethodPost, "/posts/p1/comments", `{"autor_id":"rita"}`},
		{fiber.MethodPost, "/posts/p1/comments", `{"texto":"authorless"}`},
		{fiber.MethodPost, "/posts/p1/like", `{}`},
	}

	for _, tc := range cases {
		resp, err := srv.Test(jsonRequest(tc.method, tc.target, tc.payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, tc.target)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Contains(t, body, "error", tc.target)
	}

	// None of the rejected requests may have written anything.
	resp, err := srv.Test(jsonRequest(fiber.MethodGet, "/posts", ""))
	require.NoError(t, err)
	var feed []map[string]any
	decodeBody(t, resp, &feed)
	assert.Empty(t, feed)
}

func TestDeleteIsIdempotent(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/posts/never-existed",
		"/posts/never-existed/comments/also-missing",
	} {
		resp, err := srv.Test(jsonRequest(fiber.MethodDelete, target, ""))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, target)

		var status map[string]any
		decodeBody(t, resp, &status)
		assert.Equal(t, "ok", status["status"], target)
	}

	// Toggling a like on an unseen post with an unseen account still works.
	resp, err := srv.Test(jsonRequest(fiber.MethodPost, "/posts/never-existed/like", `{"user_id":"first-timer"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var likeState map[string]any
	decodeBody(t, resp, &likeState)
	assert.Equal(t, true, likeState["liked"])
}
