package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kimtth/chatroom-api/internal/chat"
	"github.com/kimtth/chatroom-api/internal/config"
	"github.com/kimtth/chatroom-api/internal/httpapi"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&chat.ChatRoom{}, &chat.Message{}, &chat.Code{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	cfg := &config.Config{
		OpenAIBaseURL:       "http://127.0.0.1:1",
		OpenAIAPIKey:        "test-key",
		OpenAIModel:         "test-model",
		ReplyTimeoutSeconds: 5,
	}
	return httpapi.NewRouter(gdb, cfg, nil, zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/", "/api/"} {
		rec := doJSON(t, r, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"OK"`) {
			t.Fatalf("%s: unexpected body %s", path, rec.Body.String())
		}
	}
}

func TestRoomLifecycle(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"id": "r1", "name": "general", "prompt": "be nice"})
	if rec.Code != http.StatusOK {
		t.Fatalf("create room: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	for _, m := range []gin.H{
		{"id": "m1", "from_who": "me", "msg": "hi"},
		{"id": "m2", "from_who": "computer", "msg": "yo"},
	} {
		rec = doJSON(t, r, http.MethodPost, "/api/chat/r1/message", m)
		if rec.Code != http.StatusOK {
			t.Fatalf("append %v: expected 200, got %d: %s", m["id"], rec.Code, rec.Body.String())
		}
	}

	rec = doJSON(t, r, http.MethodGet, "/api/chat/r1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get room: expected 200, got %d", rec.Code)
	}
	var room chat.ChatRoom
	if err := json.Unmarshal(rec.Body.Bytes(), &room); err != nil {
		t.Fatalf("decode room: %v", err)
	}
	if room.ID != "r1" || len(room.Messages) != 2 {
		t.Fatalf("unexpected room: id=%q messages=%d", room.ID, len(room.Messages))
	}
	if room.Messages[0].ID != "m1" || room.Messages[1].ID != "m2" {
		t.Fatalf("unexpected message order: %q, %q", room.Messages[0].ID, room.Messages[1].ID)
	}

	rec = doJSON(t, r, http.MethodPut, "/api/chat/r1", gin.H{"name": "renamed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update room: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &room); err != nil {
		t.Fatalf("decode updated room: %v", err)
	}
	if room.Name != "renamed" {
		t.Fatalf("expected renamed room, got %q", room.Name)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/chat/r1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete room: expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/chat/r1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted room: expected 404, got %d", rec.Code)
	}
	rec = doJSON(t, r, http.MethodGet, "/api/chat/r1/message", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("list messages of deleted room: expected 404, got %d", rec.Code)
	}
}

func TestCreateRoomDuplicate(t *testing.T) {
	r := newTestRouter(t)

	if rec := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"id": "r1", "name": "a"}); rec.Code != http.StatusOK {
		t.Fatalf("create room: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"id": "r1", "name": "b"}); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate room: expected 409, got %d", rec.Code)
	}
}

func TestCreateRoomMissingFields(t *testing.T) {
	r := newTestRouter(t)

	if rec := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"name": "no id"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAppendMessageRoomMissing(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chat/nope/message", gin.H{"id": "m1", "from_who": "me", "msg": "hi"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAppendMessageUnknownSender(t *testing.T) {
	r := newTestRouter(t)

	if rec := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"id": "r1", "name": "a"}); rec.Code != http.StatusOK {
		t.Fatalf("create room: expected 200, got %d", rec.Code)
	}
	rec := doJSON(t, r, http.MethodPost, "/api/chat/r1/message", gin.H{"id": "m1", "from_who": "them", "msg": "hi"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sender, got %d", rec.Code)
	}
}

func TestListRoomsShallow(t *testing.T) {
	r := newTestRouter(t)

	if rec := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"id": "r1", "name": "a"}); rec.Code != http.StatusOK {
		t.Fatalf("create room: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(t, r, http.MethodPost, "/api/chat/r1/message", gin.H{"id": "m1", "from_who": "me", "msg": "hi"}); rec.Code != http.StatusOK {
		t.Fatalf("append message: expected 200, got %d", rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/chat", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list rooms: expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"messages"`) {
		t.Fatalf("room listing should omit messages: %s", rec.Body.String())
	}
}

func TestGenerateReplyValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chat/response", gin.H{"chat_id": "r1", "msg": "hi"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing mode: expected 400, got %d", rec.Code)
	}
	rec = doJSON(t, r, http.MethodPost, "/api/chat/response", gin.H{"chat_id": "r1", "mode": "gpt"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing msg: expected 400, got %d", rec.Code)
	}
	rec = doJSON(t, r, http.MethodPost, "/api/chat/response", gin.H{"chat_id": "r1", "msg": "hi", "mode": "work"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown mode: expected 400, got %d", rec.Code)
	}
}

func TestGenerateReplyGPTRoomMissing(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chat/response", gin.H{"chat_id": "nope", "msg": "hi", "mode": "gpt"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGenerateReplyPlanning(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chat/response", gin.H{"msg": "hello there", "mode": "planning"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if !strings.Contains(resp.Reply, "Hello") {
		t.Fatalf("unexpected planning reply: %q", resp.Reply)
	}
}

func TestGetCodesEmpty(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/code/intent", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var codes []chat.Code
	if err := json.Unmarshal(rec.Body.Bytes(), &codes); err != nil {
		t.Fatalf("decode codes: %v", err)
	}
	if len(codes) != 0 {
		t.Fatalf("expected empty code list, got %d", len(codes))
	}
}

func TestRouteNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "route not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
