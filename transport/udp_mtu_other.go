//go:build !linux

package transport

import "net"

// getMTU на не-Linux платформах IP_MTU недоступен
// Нулевое значение означает "использовать значение по умолчанию"
func getMTU(conn *net.UDPConn) (uint, error) {
	return 0, nil
}
