package main

import "github.com/masmgr/difftree-go/cmd"

func main() {
	cmd.Run()
}
