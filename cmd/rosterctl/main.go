// Package main is rosterctl, an operator CLI for a running roster server. It
// drives the server through the acl.RosterClient, so every call gets the
// same retry, circuit breaking and error translation as any other client.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
