package main

import (
	cmd "github.com/kerbaras/wpstatic/cmd/wpstatic"
)

func main() {
	cmd.Execute()
}
