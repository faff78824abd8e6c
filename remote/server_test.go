package remote

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func dialTest(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewServer(32, 32))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, cmd Command) {
	t.Helper()
	data, err := json.Marshal(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readAck(t *testing.T, conn *websocket.Conn) Ack {
	t.Helper()
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if kind != websocket.TextMessage {
		t.Fatalf("expected a text ack, got message type %d", kind)
	}
	var ack Ack
	if err := json.Unmarshal(data, &ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	return ack
}

func readBinary(t *testing.T, conn *websocket.Conn, wantKind byte) []byte {
	t.Helper()
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("expected a binary frame, got message type %d", kind)
	}
	if len(data) == 0 || data[0] != wantKind {
		t.Fatalf("frame kind = %#x, want %#x", data[0], wantKind)
	}
	return data[1:]
}

// TestServerSessionRoundTrip drives one gesture over a live socket and
// expects acks in order plus surface frames after visible changes.
func TestServerSessionRoundTrip(t *testing.T) {
	conn := dialTest(t)

	send(t, conn, Command{Seq: 1, Method: MethodSetColor, Color: "#000000"})
	ack := readAck(t, conn)
	if ack.Seq != 1 || !ack.OK {
		t.Fatalf("setColor ack = %+v", ack)
	}

	// A brush press paints nothing until the first move, so no frame
	// follows the pointerDown ack.
	send(t, conn, Command{Seq: 2, Method: MethodPointerDown, X: 5, Y: 5})
	ack = readAck(t, conn)
	if ack.Seq != 2 || !ack.OK {
		t.Fatalf("pointerDown ack = %+v", ack)
	}

	send(t, conn, Command{Seq: 3, Method: MethodPointerMove, X: 25, Y: 25})
	ack = readAck(t, conn)
	if ack.Seq != 3 || !ack.OK {
		t.Fatalf("pointerMove ack = %+v", ack)
	}
	readBinary(t, conn, FrameSurface)

	send(t, conn, Command{Seq: 4, Method: MethodPointerUp, X: 25, Y: 25})
	ack = readAck(t, conn)
	if ack.Undo != 1 {
		t.Fatalf("pointerUp ack history = (%d, %d), want undo 1", ack.Undo, ack.Redo)
	}
}

// TestServerExportFrame expects the export payload as a tagged binary
// message right after its ack.
func TestServerExportFrame(t *testing.T) {
	conn := dialTest(t)

	send(t, conn, Command{Seq: 1, Method: MethodExport})
	ack := readAck(t, conn)
	if !ack.OK {
		t.Fatalf("export ack = %+v", ack)
	}
	png := readBinary(t, conn, FrameExport)
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Fatalf("export payload does not look like PNG")
	}
}

// TestServerBadCommand gets an error ack and a live connection
// afterwards.
func TestServerBadCommand(t *testing.T) {
	conn := dialTest(t)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	ack := readAck(t, conn)
	if ack.OK || ack.Error == "" {
		t.Fatalf("malformed command ack = %+v, want an error", ack)
	}

	// The session must survive the bad command.
	send(t, conn, Command{Seq: 2, Method: MethodAddLayer})
	ack = readAck(t, conn)
	if !ack.OK || len(ack.Layers) != 2 {
		t.Fatalf("addLayer after bad command = %+v", ack)
	}
}
