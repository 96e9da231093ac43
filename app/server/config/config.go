package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生 JWT 签名，更新会导致旧有令牌失效
		ProtectUserRoutes  bool   // 是否把 /users 路由组放在令牌校验之后（默认开放，内网部署时常见）
	}
}
