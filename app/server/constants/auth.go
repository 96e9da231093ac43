package constants

import "time"

// AuthTokenDuration 注册时签发的令牌有效期，与原始业务保持一年
const AuthTokenDuration = 365 * 24 * time.Hour

// RandomEmailDomains 注册时随机邮箱的候选域名
var RandomEmailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"qq.com",
	"outlook.com",
}
