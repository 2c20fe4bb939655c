package main

import "fmt"
import "os"

import "github.com/bnclabs/gomset/mset"

func main() {
	mset.LogComponents("all")
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "load":
		doLoad(os.Args[2:])
	case "verify":
		doVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("please provide a valid command: load | verify")
}
