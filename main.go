package main

import "github.com/vicholitvak/moai-search/cmd"

func main() {
	cmd.Execute()
}
