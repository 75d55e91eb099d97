//go:build !windows && !darwin

package main

import "os/exec"

// openViewer opens path with the desktop's default handler.
func openViewer(path string) error {
	return exec.Command("xdg-open", path).Start()
}
