package main

import "github.com/kazukazukun/building-controller/cmd/building-controller/cmd"

func main() {
	cmd.Execute()
}
