package main

import "github.com/peyvand/peyvand_backend/cmd"

func main() {
	cmd.Execute()
}
