// cmd/ssrfind/main.go
package main

import (
	"ssrfind/internal/app"
	"ssrfind/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
