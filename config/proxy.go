package config

import (
	"os"
	"strings"
)

// LoadTrustedProxies 加载可信代理列表，多个代理用逗号分隔
// 未配置时只信任本地回环地址
func LoadTrustedProxies() []string {
	proxiesEnv := os.Getenv("TRUSTED_PROXIES")
	if proxiesEnv == "" {
		return []string{"127.0.0.1"}
	}
	return strings.Split(proxiesEnv, ",")
}
