//go:build windows

package main

import "os/exec"

// openViewer opens path with the Windows file association handler.
func openViewer(path string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
}
