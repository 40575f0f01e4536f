package main

import (
	"schema-recon/cmd"
)

func main() {
	cmd.Execute()
}
