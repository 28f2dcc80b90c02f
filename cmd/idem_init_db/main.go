package main

import (
	"fmt"
	"os"
)

var cfgFile string

func main() {
	initDBCmd, err := initInitDBCMD()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create init_db command: %v\n", err)
		os.Exit(1)
	}
	if err := initDBCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
