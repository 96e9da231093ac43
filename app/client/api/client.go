package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"article-admin-console/app/server/types"
)

// ServerError 服务端返回的业务错误，前端会原样展示 Message
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	endpoint string
	hc       *http.Client
	token    string
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       http.DefaultClient,
	}
}

// SetToken 设置后续请求携带的 Bearer 令牌
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(method string, path string, reqBody any, resBody any) error {
	reqUrl, err := url.JoinPath(c.endpoint, path)
	if err != nil {
		return fmt.Errorf("failed to join request url: %w", err)
	}

	// 准备请求体
	var bodyReader *bytes.Reader
	if reqBody != nil {
		bodyBytes, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, reqUrl, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to prepare request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	// 发送请求
	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	// 非 2xx ：解析服务端的 message 并带给调用方
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var em types.ErrorMessage
		if err := json.NewDecoder(res.Body).Decode(&em); err != nil {
			em.Message = http.StatusText(res.StatusCode)
		}
		return &ServerError{
			StatusCode: res.StatusCode,
			Message:    em.Message,
		}
	}

	if resBody != nil {
		if err := json.NewDecoder(res.Body).Decode(resBody); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) Register(req *types.RegisterRequest) (*types.RegisterResponse, error) {
	var res types.RegisterResponse
	if err := c.do(http.MethodPost, "/api/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) FetchArticles() ([]types.ArticleInfo, error) {
	var res []types.ArticleInfo
	if err := c.do(http.MethodPost, "/api/articles", &types.ArticleListRequest{Token: c.token}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) ListUsers() ([]types.UserInfo, error) {
	var res []types.UserInfo
	if err := c.do(http.MethodGet, "/users", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetUser(id uint) (*types.UserInfo, error) {
	var res types.UserInfo
	if err := c.do(http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateUser(req *types.UserCreateRequest) (*types.UserInfo, error) {
	var res types.UserInfo
	if err := c.do(http.MethodPost, "/users", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUser(id uint, req *types.UserUpdateRequest) (*types.UserInfo, error) {
	var res types.UserInfo
	if err := c.do(http.MethodPut, fmt.Sprintf("/users/%d", id), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteUser(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
