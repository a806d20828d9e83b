package main

import "github.com/tovesk/envseal/cmd"

func main() {
	cmd.Execute()
}
