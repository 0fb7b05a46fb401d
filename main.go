package main

import (
	"qrt2csv/cli"
)

func main() {
	cli.Start()
}
