package main

import (
	"github.com/reposync/reposync/cmd"
	"github.com/reposync/reposync/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
