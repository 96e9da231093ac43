package types

import "article-admin-console/app/server/models"

// REST 接口的请求与响应结构， server 的 handlers 与 client 的 api 共用

type ErrorMessage struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"` // 注册时即使提交也不会采用，服务端会生成随机邮箱
	Password string `json:"password"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type ArticleListRequest struct {
	// Token 客户端会随请求带上，但这个接口目前不做校验
	Token string `json:"token,omitempty"`
}

type ArticleInfo struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UserInfo struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Permissions models.Permissions `json:"permissions"`
}

type UserCreateRequest struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	Permissions *models.Permissions `json:"permissions,omitempty"`
}

type UserUpdateRequest struct {
	Name        *string             `json:"name,omitempty"`
	Email       *string             `json:"email,omitempty"`
	Permissions *models.Permissions `json:"permissions,omitempty"`
}
