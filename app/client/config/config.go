package config

type Config struct {
	// 基础配置
	IsProd bool

	// 与 Server 通信配置
	ServerEndpoint string

	// 会话持久化文件（保存令牌与用户摘要，相当于浏览器里的 localStorage ）
	SessionFile string
}
