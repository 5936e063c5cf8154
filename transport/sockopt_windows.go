//go:build windows

package transport

import "golang.org/x/sys/windows"

// setReuseAddr устанавливает SO_REUSEADDR для Windows
func setReuseAddr(fd uintptr) error {
	return windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
}
