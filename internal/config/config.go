package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数から読む。DB接続設定はinfra/db側で解決する。
func Load() Config {
	return Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
