//go:build !windows

package transport

import "golang.org/x/sys/unix"

// setReuseAddr устанавливает SO_REUSEADDR для Unix-подобных систем
func setReuseAddr(fd uintptr) error {
	return unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
}
