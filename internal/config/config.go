package config

import "os"

// アプリ全体の設定
type Config struct {
	Port      string // サーバーポート（8080）
	StorePath string // ストアファイルのパス
	GoEnv     string // dev/prod
	FEURL     string // フロントURL（CORSで使う。空なら無効）
}

// Loadは環境変数から読む。元サイトは設定ゼロで動くので全部デフォルトあり。
func Load() Config {
	return Config{
		Port:      getenv("PORT", "8080"),
		StorePath: getenv("STORE_PATH", "gourmandises.db"),
		GoEnv:     getenv("GO_ENV", "dev"),
		FEURL:     os.Getenv("FE_URL"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
