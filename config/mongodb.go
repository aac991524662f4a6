package config

import "strings"

type MongoDB struct {
	URI string `mapstructure:"URI" json:"uri" yaml:"uri"`
	// 附加在 URI 後的連線參數，例如 "retryWrites=true&w=majority"
	Options string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	// 留空時使用 core.MongoDBTalentOps
	Database string `mapstructure:"DATABASE" json:"database" yaml:"database"`
}

// ConnectionURI 把 Options 接到 URI 的 query string
func (m MongoDB) ConnectionURI() string {
	options := strings.TrimLeft(m.Options, "?&")
	if options == "" {
		return m.URI
	}
	if strings.Contains(m.URI, "?") {
		return m.URI + "&" + options
	}
	return m.URI + "?" + options
}
