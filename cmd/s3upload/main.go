// Package main is the entry point for the s3upload CLI.
//
// s3upload uploads a single file to Cloudflare R2 or any other S3-compatible
// object store with one SigV4 signed PUT request.
//
// Usage:
//
//	s3upload <source_file> <bucket/path>
package main

import (
	"fmt"
	"os"

	"github.com/Clarilab/s3-upload/cmd/s3upload/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
