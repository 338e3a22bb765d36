package main

import "github.com/inovacc/routeguided/cmd"

func main() {
	cmd.Execute()
}
