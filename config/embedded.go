package config

import _ "embed"

// DefaultConfigYAML 内置默认配置，外部配置文件可按需覆盖其中任意字段
//
//go:embed default.yaml
var DefaultConfigYAML []byte
