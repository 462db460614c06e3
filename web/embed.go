// Package web holds the storefront and admin pages compiled into the binary.
package web

import _ "embed"

//go:embed index.html
var IndexPage []byte

//go:embed admin.html
var AdminPage []byte
