package utils

import (
	"os"
)

// RemoveFile deletes a temporary upload if it still exists. Called on success
// and failure paths alike; leaving the file behind is a resource leak.
func RemoveFile(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
}
