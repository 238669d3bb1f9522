package config

import (
	"os"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート
}

// Loadは環境変数から読む。PORT未指定ならdefaultPort。
func Load(defaultPort string) Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return Config{Port: port}
}

// Addr はListenに渡すアドレス（":8080"形式）を返す。
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
