// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"io"
	"os"

	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/awnumar/memguard"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI, writes any command error to stderr and returns the
// process exit code.
func run(args []string, stderr io.Writer) int {
	// Wipe locked buffers on SIGINT and on every return path.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	a := newApp()
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ux.Error(stderr, err.Error())
		a.log().Debug("command failed", "error", err)
		return 1
	}
	return 0
}
