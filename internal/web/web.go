// Package web 内嵌前端静态页面。
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
