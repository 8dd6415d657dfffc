package main

import "github.com/matthieukhl/swiftcart/internal/cmd"

func main() {
	cmd.Execute()
}
