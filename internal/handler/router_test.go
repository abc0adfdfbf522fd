package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mypage/profilehub/internal/config"
	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/relclock"
	"mypage/profilehub/internal/repository"
	"mypage/profilehub/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	store := keyedstore.New(repository.NewMemoryKVStore(), logger)
	clock := relclock.NewFormatter(relclock.Russian, time.UTC,
		relclock.NewFixedClock(time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)))

	return SetupRouter(&config.Config{}, logger, Handlers{
		Profile:     NewProfileHandler(service.NewProfileService(store, logger)),
		Posts:       NewPostHandler(service.NewPostService(store, clock, logger)),
		Photos:      NewListHandler("photos", service.NewPhotoService(store, clock, logger)),
		Friends:     NewListHandler("friends", service.NewFriendService(store, clock, logger)),
		Music:       NewListHandler("music", service.NewMusicService(store, clock, logger)),
		Videos:      NewListHandler("videos", service.NewVideoService(store, clock, logger)),
		Communities: NewListHandler("communities", service.NewCommunityService(store, clock, logger)),
		Messages:    NewMessageHandler(service.NewMessageService(store, clock, logger)),
		News:        NewNewsHandler(service.NewNewsService(store, clock, logger)),
	})
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path string, body any, header http.Header) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProfile_GetETagAndUpdate(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/profile", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Иван Иванов")
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w, _ = do(t, r, http.MethodGet, "/api/v1/profile", nil, http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, w.Code)

	w, _ = do(t, r, http.MethodPut, "/api/v1/profile", map[string]string{"name": "Пётр", "city": "Казань"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/profile", nil, http.Header{"If-None-Match": {etag}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Казань")
	assert.NotEqual(t, etag, w.Header().Get("ETag"))
}

func TestPosts_Flow(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/posts", map[string]string{"text": "Новый пост"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var post service.PostView
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "только что", post.Date)

	w, env = do(t, r, http.MethodPost, "/api/v1/posts/"+post.ID+"/like", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, 1, post.Likes)

	w, _ = do(t, r, http.MethodPost, "/api/v1/posts/"+post.ID+"/comments",
		map[string]string{"author": "Анна Смирнова", "text": "👍"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/posts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []service.PostView
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.True(t, posts[0].ShowComments)
	assert.Equal(t, "1 час назад", posts[1].Date)

	w, _ = do(t, r, http.MethodPost, "/api/v1/posts", map[string]string{"text": "   "}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/posts/unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/music", map[string]string{"title": "Кино", "artist": "Группа крови"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var track struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &track))

	w, env = do(t, r, http.MethodGet, "/api/v1/music", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Группа крови")

	w, _ = do(t, r, http.MethodDelete, "/api/v1/music/"+track.ID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/videos", map[string]string{"title": "x", "url": "nope"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/friends", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Мария Петрова")
}

func TestMessagesAndNews(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/messages",
		map[string]any{"from": "Анна Смирнова", "text": "Привет"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var msg service.MessageView
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.False(t, msg.Read)

	w, env = do(t, r, http.MethodPost, "/api/v1/messages/"+msg.ID+"/read", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.True(t, msg.Read)

	w, _ = do(t, r, http.MethodPost, "/api/v1/news", map[string]string{"source": "Лента", "text": "Событие"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/news", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "только что")
}
