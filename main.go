package main

import "github.com/ledgerbook/backend/internal/cli"

func main() {
	cli.Execute()
}
