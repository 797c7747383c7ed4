package main

import (
	"github.com/bellecroissant/backoffice/internal/cmd"
)

func main() {
	cmd.Execute()
}
