package config

import (
	"net"
	"strconv"
)

// Redis 僅用於快照寫入鎖；Host 為空時改用行程內鎖
type Redis struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
}

func (r Redis) Enabled() bool {
	return r.Host != ""
}

// Addr host:port，未設定 port 時用 6379
func (r Redis) Addr() string {
	port := r.Port
	if port == 0 {
		port = 6379
	}
	return net.JoinHostPort(r.Host, strconv.Itoa(port))
}
