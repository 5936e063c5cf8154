package transport

import (
	"context"
	"net"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"

	"github.com/nickolajgrishuk/crcgen-go/core"
)

// Datagram - принятая UDP датаграмма
type Datagram struct {
	// Addr - адрес отправителя
	Addr *net.UDPAddr
	// Data - содержимое датаграммы
	Data []byte
}

// Text декодирует содержимое как UTF-8
// Некорректные последовательности заменяются на U+FFFD
func (d *Datagram) Text() string {
	text, err := unicode.UTF8.NewDecoder().Bytes(d.Data)
	if err != nil {
		return string(d.Data)
	}
	return string(text)
}

// UDPBind создаёт UDP сокет с привязкой к адресу
// Устанавливает SO_REUSEADDR
func UDPBind(host string, port uint16) (*net.UDPConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var err error
			ctrlErr := c.Control(func(fd uintptr) {
				err = setReuseAddr(fd)
			})
			if ctrlErr != nil {
				return ctrlErr
			}
			return err
		},
	}

	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
	conn, err := lc.ListenPacket(context.Background(), "udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "bind %s", addr)
	}

	udpConn, ok := conn.(*net.UDPConn)
	if !ok {
		conn.Close()
		return nil, errors.New("failed to cast to UDPConn")
	}

	return udpConn, nil
}

// UDPConnect создаёт UDP сокет с подключением к удалённому адресу
// Позволяет использовать Write вместо WriteTo
func UDPConnect(host string, port uint16) (*net.UDPConn, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", addr)
	}

	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}

	return conn, nil
}

// UDPSendText отправляет текст одной датаграммой через подключённый сокет
func UDPSendText(conn *net.UDPConn, text string) (int, error) {
	n, err := conn.Write([]byte(text))
	if err != nil {
		return 0, errors.Wrap(err, "send datagram")
	}
	stats.Sent(n)
	return n, nil
}

// UDPRecv принимает одну датаграмму
// Датаграммы длиннее bufSize обрезаются
func UDPRecv(conn *net.UDPConn, bufSize int) (*Datagram, error) {
	if bufSize <= 0 {
		bufSize = core.DefaultRecvBuffer
	}
	buf := make([]byte, bufSize)

	n, addr, err := conn.ReadFromUDP(buf)
	if err != nil {
		return nil, err
	}
	stats.Received(n)

	return &Datagram{Addr: addr, Data: buf[:n]}, nil
}

// UDPGetMTU получает MTU для соединения
// Если получить не удалось, возвращает core.DefaultMTU
func UDPGetMTU(conn *net.UDPConn) uint {
	mtu, err := getMTU(conn)
	if err != nil || mtu == 0 {
		return core.DefaultMTU
	}
	return mtu
}

// ExceedsMTU проверяет, превышает ли датаграмма размера n MTU соединения
func ExceedsMTU(conn *net.UDPConn, n int) bool {
	return uint(n) > UDPGetMTU(conn)
}
