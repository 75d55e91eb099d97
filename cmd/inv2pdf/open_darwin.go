//go:build darwin

package main

import "os/exec"

// openViewer opens path with the macOS default handler.
func openViewer(path string) error {
	return exec.Command("open", path).Start()
}
