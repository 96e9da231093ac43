package forms

import (
	"errors"
	"regexp"
	"time"

	"article-admin-console/app/client/api"
	"article-admin-console/app/server/types"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NavigateDelay 注册成功后跳转回首页前的停顿
const NavigateDelay = 1 * time.Second

type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// RegisterErrors 每个输入框各自的校验信息，空字符串表示通过
type RegisterErrors struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *RegisterForm) Validate() (RegisterErrors, bool) {
	var errs RegisterErrors
	valid := true

	// 用户名验证
	if len(f.Username) < 4 {
		errs.Username = "username must be at least 4 characters"
		valid = false
	}

	// 密码验证
	if len(f.Password) < 6 {
		errs.Password = "password must be at least 6 characters"
		valid = false
	}

	// 确认密码验证
	if f.Password != f.ConfirmPassword {
		errs.ConfirmPassword = "passwords do not match"
		valid = false
	}

	// 邮箱验证
	if !emailRegex.MatchString(f.Email) {
		errs.Email = "invalid email format"
		valid = false
	}

	return errs, valid
}

// Submit 校验通过后调用注册接口，并把签发的令牌与用户摘要写进会话。
// 返回给用户展示的消息（服务端的 message 原样透出，网络失败给统一提示）。
func (f *RegisterForm) Submit(c *api.Client, sess *Session) (string, error) {
	if _, ok := f.Validate(); !ok {
		return "", errors.New("form validation failed")
	}

	res, err := c.Register(&types.RegisterRequest{
		Name:     f.Username,
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		return Notice(err), err
	}

	if err := sess.Save(res.Token, res.User); err != nil {
		return "", err
	}
	c.SetToken(res.Token)

	return res.Message, nil
}

// Notice 把错误映射为展示给用户的提示
func Notice(err error) string {
	var se *api.ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	// 没有拿到响应（网络层失败）
	return "operation failed"
}
