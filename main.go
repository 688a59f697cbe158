package main

import "github.com/iksnae/pt-omnibox/cmd"

func main() {
	cmd.Execute()
}
