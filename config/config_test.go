package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoDB_ConnectionURI(t *testing.T) {
	testCases := []struct {
		name string
		conf MongoDB
		want string
	}{
		{name: "無參數", conf: MongoDB{URI: "mongodb://localhost:27017"}, want: "mongodb://localhost:27017"},
		{name: "附加 query", conf: MongoDB{URI: "mongodb://localhost:27017", Options: "w=majority"}, want: "mongodb://localhost:27017?w=majority"},
		{name: "既有 query", conf: MongoDB{URI: "mongodb://h/?replicaSet=rs0", Options: "w=majority"}, want: "mongodb://h/?replicaSet=rs0&w=majority"},
		{name: "參數帶前綴", conf: MongoDB{URI: "mongodb://h", Options: "?retryWrites=true"}, want: "mongodb://h?retryWrites=true"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.conf.ConnectionURI())
		})
	}
}

func TestRedis_Addr(t *testing.T) {
	assert.False(t, Redis{}.Enabled())
	assert.True(t, Redis{Host: "redis"}.Enabled())
	assert.Equal(t, "redis:6379", Redis{Host: "redis"}.Addr())
	assert.Equal(t, "10.0.0.5:6380", Redis{Host: "10.0.0.5", Port: 6380}.Addr())
}

func TestApp_ValidateSecret(t *testing.T) {
	testCases := []struct {
		name    string
		conf    App
		wantErr error
	}{
		{name: "production 未設定", conf: App{Env: "production"}, wantErr: ErrMissingSecretKey},
		{name: "未指定環境", conf: App{}, wantErr: ErrMissingSecretKey},
		{name: "staging 未設定", conf: App{Env: "staging"}, wantErr: ErrMissingSecretKey},
		{name: "production 已設定", conf: App{Env: "production", SecretKey: "s3cret"}},
		{name: "local 允許空值", conf: App{Env: "local"}},
		{name: "test 大小寫不拘", conf: App{Env: " Test "}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.conf.ValidateSecret(), tc.wantErr)
		})
	}
}
