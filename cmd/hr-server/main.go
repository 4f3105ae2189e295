// Package main is the entry point for the HR-Center administration server.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/kart-io/hr-center/internal/hrserver"
)

func main() {
	hrserver.NewApp().Run()
}
