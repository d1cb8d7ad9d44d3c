package main

import (
	"go.uber.org/fx"

	"github.com/Harihuynh2007/sales-app/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
