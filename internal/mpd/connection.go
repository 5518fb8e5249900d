package mpd

import (
	"bufio"
	"log"
	"net"
	"strings"
	"sync"
)

// clientContext is the per-connection state the connection engine threads
// through every line it processes.
type clientContext struct {
	id   int
	conn net.Conn
	w    *bufio.Writer

	authenticated bool
	binaryLimit   int

	idleActive bool
	idleMask   EventMask
	pending    EventMask

	listMode CommandListMode
	listIdx  int

	closed bool

	mu sync.Mutex // guards idle fields against the bus's async Publish path
}

func newClientContext(id int, conn net.Conn, authed bool) *clientContext {
	return &clientContext{
		id:            id,
		conn:          conn,
		w:             bufio.NewWriter(conn),
		authenticated: authed,
		binaryLimit:   8192,
	}
}

func (c *clientContext) flush() {
	if err := c.w.Flush(); err != nil {
		log.Printf("mpd: client %d: flush: %v", c.id, err)
	}
}

// splitCompleteUnits reads complete protocol units off conn: either a single
// non-list line, or a full command_list_begin/command_list_ok_begin block
// through command_list_end. This is the framer half of component E.
func splitCompleteUnits(conn net.Conn) <-chan []string {
	out := make(chan []string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(conn)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		scanner.Split(scanLinesAnyEOL)

		var unit []string
		inList := false
		for scanner.Scan() {
			line := scanner.Text()
			if !inList {
				trimmed := strings.TrimSpace(line)
				if trimmed == "command_list_begin" || trimmed == "command_list_ok_begin" {
					inList = true
					unit = []string{line}
					continue
				}
				out <- []string{line}
				continue
			}
			unit = append(unit, line)
			if strings.TrimSpace(line) == "command_list_end" {
				out <- unit
				unit = nil
				inList = false
			}
		}
	}()
	return out
}

// scanLinesAnyEOL is bufio.ScanLines generalized to tolerate LF, CR, or CRLF.
func scanLinesAnyEOL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			return i + 1, trimCR(data[:i]), nil
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			if i+1 < len(data) || atEOF {
				return i + 1, data[:i], nil
			}
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

// processUnit runs the parse-dispatch-respond steps over one complete unit
// (a single line, or a full command-list block) and writes the full
// response -- including the final OK/ACK -- to c.w. It always runs on the
// engine goroutine.
func (s *Server) processUnit(c *clientContext, lines []string) {
	listMode := ListNone
	body := lines
	if len(lines) > 1 {
		first := strings.TrimSpace(lines[0])
		if first == "command_list_ok_begin" {
			listMode = ListOK
		} else {
			listMode = ListPlain
		}
		body = lines[1 : len(lines)-1]
	}

	ncmd := 0
	for _, line := range body {
		argv, err := tokenize(line)
		if err != nil {
			c.w.WriteString(formatAck(AckArg, ncmd, "", err.Error()))
			c.flush()
			return
		}
		if len(argv) == 0 {
			ncmd++
			continue
		}

		cmdName := argv[0]
		rest := argv[1:]

		if !c.authenticated && cmdName != "password" {
			c.w.WriteString(formatAck(AckPermission, ncmd, cmdName, "you don't have permission for \""+cmdName+"\""))
			c.flush()
			return
		}

		switch cmdName {
		case "password":
			if !s.handlePassword(c, rest, ncmd) {
				c.flush()
				return
			}
			if listMode == ListOK {
				c.w.WriteString("list_OK\n")
			}
			ncmd++
			continue
		case "idle":
			s.handleIdle(c, rest)
			return // parked, or drained immediately by handleIdle
		case "noidle":
			s.handleNoIdle(c) // writes its own terminator
			c.flush()
			return
		case "close":
			c.flush()
			c.closed = true
			c.conn.Close()
			return
		}

		entry, ok := findCommand(cmdName)
		if !ok {
			c.w.WriteString(formatAck(AckUnknown, ncmd, cmdName, "unknown command \""+cmdName+"\""))
			c.flush()
			return
		}
		if len(rest) < entry.minArgc {
			c.w.WriteString(formatAck(AckArg, ncmd, cmdName, "too few arguments"))
			c.flush()
			return
		}

		resp, herr := entry.handler(s, c, rest)
		if herr != nil {
			ae := toAck(herr)
			c.w.WriteString(formatAck(ae.Code, ncmd, cmdName, ae.Msg))
			c.flush()
			return
		}

		c.w.WriteString(resp)
		if listMode == ListOK {
			c.w.WriteString("list_OK\n")
		}
		ncmd++
	}

	c.w.WriteString("OK\n")
	c.flush()
}

func (s *Server) handlePassword(c *clientContext, args []string, ncmd int) bool {
	if len(args) < 1 {
		c.w.WriteString(formatAck(AckArg, ncmd, "password", "too few arguments"))
		return false
	}
	if s.checkPassword(args[0]) {
		c.authenticated = true
		return true
	}
	c.w.WriteString(formatAck(AckPassword, ncmd, "password", "incorrect password"))
	return false
}
