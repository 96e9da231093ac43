package inits

import (
	"fmt"
	"os"
	"strings"

	"article-admin-console/app/client/config"
)

func Config() (*config.Config, error) {
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if serverEp, exist := os.LookupEnv("SERVER_ENDPOINT"); !exist {
		return nil, fmt.Errorf("SERVER_ENDPOINT environment variable not set")
	} else {
		cfg.ServerEndpoint = serverEp
	}

	if sessionFile, exist := os.LookupEnv("SESSION_FILE"); !exist {
		cfg.SessionFile = "session.json" // 默认保存在工作目录
	} else {
		cfg.SessionFile = sessionFile
	}

	return &cfg, nil
}
