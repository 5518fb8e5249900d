package mpd

import "fmt"

// AckCode is the fixed ACK error enumeration.
type AckCode int

const (
	AckNotList       AckCode = 1
	AckArg           AckCode = 2
	AckPassword      AckCode = 3
	AckPermission    AckCode = 4
	AckUnknown       AckCode = 5
	AckNoExist       AckCode = 50
	AckPlaylistMax   AckCode = 51
	AckSystem        AckCode = 52
	AckPlaylistLoad  AckCode = 53
	AckUpdateAlready AckCode = 54
	AckPlayerSync    AckCode = 55
	AckExist         AckCode = 56
)

// ackError is a handler's error return: it carries the ACK code and message
// the connection engine will format onto the wire.
type ackError struct {
	Code AckCode
	Msg  string
}

func (e *ackError) Error() string { return e.Msg }

func ackErrorf(code AckCode, format string, a ...interface{}) error {
	return &ackError{Code: code, Msg: fmt.Sprintf(format, a...)}
}

// formatAck renders the `ACK [<code>@<ncmd>] {<cmd>} <text>\n` grammar.
func formatAck(code AckCode, ncmd int, cmd, msg string) string {
	return fmt.Sprintf("ACK [%d@%d] {%s} %s\n", code, ncmd, cmd, msg)
}
