package main

import "golang-netreconcile/cmd"

func main() {
	cmd.Execute()
}
