package main

import "github.com/nikogura/cv-templater/cmd"

func main() {
	cmd.Execute()
}
