package forms

import (
	"encoding/json"
	"fmt"
	"os"

	"article-admin-console/app/server/types"
)

// Session 客户端持久化的登录态（令牌加用户摘要），跨进程存活
type Session struct {
	Token string            `json:"token"`
	User  types.UserSummary `json:"user"`

	path string
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// Restore 从文件恢复上一次保存的会话，文件不存在时保持空会话
func (s *Session) Restore() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return nil
}

func (s *Session) Save(token string, user types.UserSummary) error {
	s.Token = token
	s.User = user

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}
