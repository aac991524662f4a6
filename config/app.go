package config

import (
	"errors"
	"strings"
)

type App struct {
	// 當前開發環境
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// 服務端口
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// 服務名稱
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// 服務版本
	Version string `mapstructure:"VERSION" json:"version" yaml:"version"`
	// Secret Key 用於簽發 / 驗證 JWT
	SecretKey      string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
	// 儲存後端：mongo（預設）或 memory（測試 / 展示）
	Storage string `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	// CORS 允許來源，逗號分隔；未設定時為 *
	AllowOrigins []string `mapstructure:"ALLOW_ORIGINS" json:"allow_origins" yaml:"allow_origins"`
}

// ErrMissingSecretKey 非 local/test 環境必須設定 APP__SECRET_KEY
var ErrMissingSecretKey = errors.New("APP__SECRET_KEY is required outside local/test")

// AllowsEmptySecret local 與 test 允許空 secret（此時所有 token 一律拒絕）
func (a App) AllowsEmptySecret() bool {
	switch strings.ToLower(strings.TrimSpace(a.Env)) {
	case "local", "test":
		return true
	}
	return false
}

func (a App) ValidateSecret() error {
	if a.SecretKey == "" && !a.AllowsEmptySecret() {
		return ErrMissingSecretKey
	}
	return nil
}
