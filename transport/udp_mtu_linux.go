//go:build linux

package transport

import (
	"net"

	"golang.org/x/sys/unix"
)

// getMTU получает MTU для соединения на Linux через IP_MTU
// Работает только для подключённого сокета
func getMTU(conn *net.UDPConn) (uint, error) {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return 0, err
	}

	var mtu int
	var getErr error
	err = rawConn.Control(func(fd uintptr) {
		mtu, getErr = unix.GetsockoptInt(int(fd), unix.IPPROTO_IP, unix.IP_MTU)
	})
	if err != nil {
		return 0, err
	}
	if getErr != nil {
		return 0, getErr
	}
	if mtu <= 0 {
		return 0, nil
	}

	return uint(mtu), nil
}
