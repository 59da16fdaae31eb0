package main

import "pokemasdb/cmd"

func main() {
	cmd.Execute()
}
