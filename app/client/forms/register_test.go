package forms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"article-admin-console/app/client/api"
	"article-admin-console/app/server/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFormValidate(t *testing.T) {
	valid := RegisterForm{
		Username:        "alice01",
		Email:           "alice@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	tests := []struct {
		name   string
		mutate func(f *RegisterForm)
		field  func(errs RegisterErrors) string
		ok     bool
	}{
		{
			name:   "valid form",
			mutate: func(f *RegisterForm) {},
			ok:     true,
		},
		{
			name:   "username too short",
			mutate: func(f *RegisterForm) { f.Username = "abc" },
			field:  func(errs RegisterErrors) string { return errs.Username },
		},
		{
			name:   "password too short",
			mutate: func(f *RegisterForm) { f.Password = "abc"; f.ConfirmPassword = "abc" },
			field:  func(errs RegisterErrors) string { return errs.Password },
		},
		{
			name:   "passwords do not match",
			mutate: func(f *RegisterForm) { f.ConfirmPassword = "different" },
			field:  func(errs RegisterErrors) string { return errs.ConfirmPassword },
		},
		{
			name:   "invalid email",
			mutate: func(f *RegisterForm) { f.Email = "not-an-email" },
			field:  func(errs RegisterErrors) string { return errs.Email },
		},
		{
			name:   "email without domain dot",
			mutate: func(f *RegisterForm) { f.Email = "alice@example" },
			field:  func(errs RegisterErrors) string { return errs.Email },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			errs, ok := f.Validate()
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.NotEmpty(t, tt.field(errs))
			}
		})
	}
}

func TestRegisterFormSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/register", r.URL.Path)

		var req types.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice01", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&types.RegisterResponse{
			Message: "registered",
			Token:   "issued-token",
			User:    types.UserSummary{ID: 1, Name: "alice01", Email: "abc123@qq.com"},
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL)
	sess := NewSession(filepath.Join(t.TempDir(), "session.json"))

	f := RegisterForm{
		Username:        "alice01",
		Email:           "alice@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	msg, err := f.Submit(c, sess)
	require.NoError(t, err)
	assert.Equal(t, "registered", msg)

	// 令牌和用户摘要写进了会话，并且能从文件恢复
	restored := NewSession(sess.path)
	require.NoError(t, restored.Restore())
	assert.Equal(t, "issued-token", restored.Token)
	assert.Equal(t, "alice01", restored.User.Name)
}

func TestRegisterFormSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(&types.ErrorMessage{Message: "user already exists"})
	}))
	defer srv.Close()

	c := api.New(srv.URL)
	sess := NewSession(filepath.Join(t.TempDir(), "session.json"))

	f := RegisterForm{
		Username:        "alice01",
		Email:           "alice@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	msg, err := f.Submit(c, sess)
	require.Error(t, err)

	// 服务端的 message 原样透出
	assert.Equal(t, "user already exists", msg)
	assert.Empty(t, sess.Token)
}

func TestNotice(t *testing.T) {
	assert.Equal(t, "user not found", Notice(&api.ServerError{
		StatusCode: http.StatusNotFound,
		Message:    "user not found",
	}))

	// 网络层失败给统一提示
	assert.Equal(t, "operation failed", Notice(assert.AnError))
}
