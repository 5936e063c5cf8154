package transport

import (
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestUDPLoopback проверяет отправку и приём датаграммы через loopback
func TestUDPLoopback(t *testing.T) {
	server, err := UDPBind("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("UDPBind failed: %v", err)
	}
	defer server.Close()

	port := server.LocalAddr().(*net.UDPAddr).Port
	client, err := UDPConnect("127.0.0.1", uint16(port))
	if err != nil {
		t.Fatalf("UDPConnect failed: %v", err)
	}
	defer client.Close()

	sentBefore := testutil.ToFloat64(stats.datagramsSent)
	recvBefore := testutil.ToFloat64(stats.datagramsReceived)

	const msg = "dobre ranko"
	n, err := UDPSendText(client, msg)
	if err != nil {
		t.Fatalf("UDPSendText failed: %v", err)
	}
	if n != len(msg) {
		t.Errorf("sent %d bytes, expected %d", n, len(msg))
	}

	if err := server.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline failed: %v", err)
	}
	dg, err := UDPRecv(server, 0)
	if err != nil {
		t.Fatalf("UDPRecv failed: %v", err)
	}

	if dg.Text() != msg {
		t.Errorf("received %q, expected %q", dg.Text(), msg)
	}
	if !dg.Addr.IP.IsLoopback() {
		t.Errorf("sender %s is not loopback", dg.Addr)
	}
	if got := dg.Addr.Port; got != client.LocalAddr().(*net.UDPAddr).Port {
		t.Errorf("sender port %d, expected %d", got, client.LocalAddr().(*net.UDPAddr).Port)
	}

	if d := testutil.ToFloat64(stats.datagramsSent) - sentBefore; d != 1 {
		t.Errorf("datagrams sent counter grew by %v, expected 1", d)
	}
	if d := testutil.ToFloat64(stats.datagramsReceived) - recvBefore; d != 1 {
		t.Errorf("datagrams received counter grew by %v, expected 1", d)
	}
}

// TestUDPRecvTruncates проверяет обрезку датаграммы по размеру буфера
func TestUDPRecvTruncates(t *testing.T) {
	server, err := UDPBind("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("UDPBind failed: %v", err)
	}
	defer server.Close()

	client, err := UDPConnect("127.0.0.1", uint16(server.LocalAddr().(*net.UDPAddr).Port))
	if err != nil {
		t.Fatalf("UDPConnect failed: %v", err)
	}
	defer client.Close()

	if _, err := UDPSendText(client, "0123456789"); err != nil {
		t.Fatalf("UDPSendText failed: %v", err)
	}

	server.SetReadDeadline(time.Now().Add(2 * time.Second))
	dg, err := UDPRecv(server, 4)
	if err != nil {
		t.Fatalf("UDPRecv failed: %v", err)
	}
	if string(dg.Data) != "0123" {
		t.Errorf("received %q, expected %q", dg.Data, "0123")
	}
}

// TestDatagramTextInvalidUTF8 проверяет замену некорректных байтов
func TestDatagramTextInvalidUTF8(t *testing.T) {
	dg := &Datagram{Data: []byte{'o', 'k', 0xFF}}
	if got := dg.Text(); got != "ok\ufffd" {
		t.Errorf("Text() = %q, expected %q", got, "ok\ufffd")
	}
}

// TestUDPGetMTU проверяет, что MTU всегда положителен
func TestUDPGetMTU(t *testing.T) {
	conn, err := UDPConnect("127.0.0.1", 9)
	if err != nil {
		t.Fatalf("UDPConnect failed: %v", err)
	}
	defer conn.Close()

	mtu := UDPGetMTU(conn)
	if mtu == 0 {
		t.Fatal("MTU is zero")
	}
	if ExceedsMTU(conn, 1) {
		t.Error("1 byte should not exceed MTU")
	}
	if !ExceedsMTU(conn, int(mtu)+1) {
		t.Errorf("%d bytes should exceed MTU %d", mtu+1, mtu)
	}
}
