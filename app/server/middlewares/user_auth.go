package middlewares

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// UserAuth 校验 Authorization 头里的 Bearer 令牌，
// 通过后把解析出的声明放进请求上下文（echo-jwt 默认放在 "user" 键下）。
// 缺失和无效统一按 401 处理（echo-jwt 默认对缺失给 400 ）。
func UserAuth(signatureSecretKey string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(signatureSecretKey),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
}
