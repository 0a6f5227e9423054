package utils

import (
	"path/filepath"
	"strings"
)

// Network mount prefixes on different platforms
var networkPrefixes = []string{
	"/mnt/",     // Linux NFS/SMB mounts
	"/media/",   // Linux removable/network media
	"/Volumes/", // macOS network volumes
}

// IsNetworkDrive detects if a path is on a network-mounted drive. Copying a
// large batch over the network is slow enough to be worth a warning up front.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, checked before converting to absolute
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	return false
}
