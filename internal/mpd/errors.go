package mpd

import "errors"

// Sentinel errors collaborators (Player, Queue, Library) return; handlers
// translate them to the matching ACK code. A collaborator error that isn't
// one of these is reported as AckUnknown.
var (
	ErrNoExist       = errors.New("no such item")
	ErrArg           = errors.New("bad argument")
	ErrExist         = errors.New("already exists")
	ErrPermission    = errors.New("not permitted")
	ErrPlaylistMax   = errors.New("playlist full")
	ErrPlaylistLoad  = errors.New("cannot load playlist")
	ErrUpdateAlready = errors.New("update already in progress")
	ErrSystem        = errors.New("system error")
)

// toAck maps a handler/collaborator error to an ackError, defaulting to
// AckUnknown when err isn't one of the sentinels above and isn't already an
// *ackError.
func toAck(err error) *ackError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*ackError); ok {
		return ae
	}
	switch {
	case errors.Is(err, ErrNoExist):
		return &ackError{Code: AckNoExist, Msg: err.Error()}
	case errors.Is(err, ErrArg):
		return &ackError{Code: AckArg, Msg: err.Error()}
	case errors.Is(err, ErrExist):
		return &ackError{Code: AckExist, Msg: err.Error()}
	case errors.Is(err, ErrPermission):
		return &ackError{Code: AckPermission, Msg: err.Error()}
	case errors.Is(err, ErrPlaylistMax):
		return &ackError{Code: AckPlaylistMax, Msg: err.Error()}
	case errors.Is(err, ErrPlaylistLoad):
		return &ackError{Code: AckPlaylistLoad, Msg: err.Error()}
	case errors.Is(err, ErrUpdateAlready):
		return &ackError{Code: AckUpdateAlready, Msg: err.Error()}
	case errors.Is(err, ErrSystem):
		return &ackError{Code: AckSystem, Msg: err.Error()}
	default:
		return &ackError{Code: AckUnknown, Msg: err.Error()}
	}
}
