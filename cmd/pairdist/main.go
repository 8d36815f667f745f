// cmd/pairdist/main.go
package main

import (
	"pairdist/internal/app"
	"pairdist/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
