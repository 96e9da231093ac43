package forms

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"article-admin-console/app/client/api"
	"article-admin-console/app/server/handlers"
	"article-admin-console/app/server/inits"
	"article-admin-console/app/server/jwt"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestServer 把真实的服务端栈架在 httptest 上，编辑器走完整的来回
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, inits.Migrate(db))

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	a := handlers.NewApp(zap.NewNop(), db, rdb, j)
	e := echo.New()
	a.RegisterRoutes(e, false, "test-secret")

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestUserEditorSaveCreatesAndUpdates(t *testing.T) {
	srv := newTestServer(t)
	editor := NewUserEditor(api.New(srv.URL))

	// 没有 ID ：走创建
	require.NoError(t, editor.Save(UserDraft{
		Name:              "bob",
		Email:             "bob@example.com",
		Password:          "abc123",
		ArticleManagement: true,
	}))
	assert.Equal(t, "user saved", editor.Notice())

	// 保存后整表重新拉取
	users := editor.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Name)
	assert.True(t, users[0].Permissions.ArticleManagement)
	assert.False(t, users[0].Permissions.CategoryManagement)

	// 有 ID ：走更新，邮箱保持原值
	require.NoError(t, editor.Save(UserDraft{
		ID:                 users[0].ID,
		Name:               "robert",
		CategoryManagement: true,
	}))

	users = editor.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "robert", users[0].Name)
	assert.Equal(t, "bob@example.com", users[0].Email)
	assert.False(t, users[0].Permissions.ArticleManagement)
	assert.True(t, users[0].Permissions.CategoryManagement)
}

func TestUserEditorDelete(t *testing.T) {
	srv := newTestServer(t)
	editor := NewUserEditor(api.New(srv.URL))

	require.NoError(t, editor.Save(UserDraft{
		Name:     "bob",
		Email:    "bob@example.com",
		Password: "abc123",
	}))
	users := editor.Users()
	require.Len(t, users, 1)

	require.NoError(t, editor.Delete(users[0].ID))
	assert.Equal(t, "user deleted", editor.Notice())
	assert.Empty(t, editor.Users())
}

func TestUserEditorDeleteNotFound(t *testing.T) {
	srv := newTestServer(t)
	editor := NewUserEditor(api.New(srv.URL))

	err := editor.Delete(9999)
	require.Error(t, err)
	assert.Equal(t, "user not found", editor.Notice())
}

func TestUserEditorNetworkFailure(t *testing.T) {
	srv := newTestServer(t)
	srv.Close() // 服务不可达

	editor := NewUserEditor(api.New(srv.URL))
	err := editor.Refresh()
	require.Error(t, err)
	assert.Equal(t, "operation failed", editor.Notice())
}
