package mpd

import "time"

// EventMask is a bitset over the idle subsystem names.
type EventMask uint32

const (
	EventDatabase EventMask = 1 << iota
	EventUpdate
	EventQueue
	EventPlayer
	EventVolume
	EventSpeaker
	EventOptions
	EventStoredPlaylist
	EventRating

	EventAll = EventDatabase | EventUpdate | EventQueue | EventPlayer | EventVolume |
		EventSpeaker | EventOptions | EventStoredPlaylist | EventRating
)

// eventOrder is the canonical order changed: lines are emitted in, and the
// protocol subsystem name each class maps to. Order matters: clients rely on it.
var eventOrder = []struct {
	mask EventMask
	name string
}{
	{EventDatabase, "database"},
	{EventUpdate, "update"},
	{EventQueue, "playlist"},
	{EventPlayer, "player"},
	{EventVolume, "mixer"},
	{EventSpeaker, "output"},
	{EventOptions, "options"},
	{EventStoredPlaylist, "stored_playlist"},
	{EventRating, "sticker"},
}

// eventByName resolves a changed: subsystem name back to its class, used when
// parsing idle's subsystem-name argument list.
var eventByName = map[string]EventMask{
	"database":        EventDatabase,
	"update":           EventUpdate,
	"playlist":         EventQueue,
	"player":           EventPlayer,
	"mixer":            EventVolume,
	"output":           EventSpeaker,
	"options":          EventOptions,
	"stored_playlist":  EventStoredPlaylist,
	"sticker":          EventRating,
}

// PositionKind distinguishes the three forms a position argument can take.
type PositionKind int

const (
	PosAbsolute PositionKind = iota
	PosRelativeAfter
	PosRelativeBefore
)

// Position is a resolved or pending queue position argument (delete range,
// move target, song insert point, ...).
type Position struct {
	Kind  PositionKind
	Value int
}

// Resolve turns a parsed Position into an absolute queue index given the
// current queue position (0 when stopped or with no current item).
func (p Position) Resolve(currentPos int) int {
	switch p.Kind {
	case PosRelativeAfter:
		return currentPos + p.Value + 1
	case PosRelativeBefore:
		return currentPos - p.Value
	default:
		return p.Value
	}
}

// ValueKind is the storage/comparison kind of a tag.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindSpecial
)

// TagEntry is one row of the static tag registry (component A).
type TagEntry struct {
	ProtocolName        string
	DBField             string
	SortExpr            string
	GroupField          string
	Kind                ValueKind
	GroupRequiredInList bool
}

// CommandListMode tracks command-list batching state for one connection.
type CommandListMode int

const (
	ListNone CommandListMode = iota
	ListPlain
	ListOK
)

// SingleMode is the `single` playback option's three states.
type SingleMode int

const (
	SingleOff SingleMode = iota
	SingleOn
	SingleOneshot
)

// PlayState is the player's transport state.
type PlayState int

const (
	StateStop PlayState = iota
	StatePlay
	StatePause
)

func (s PlayState) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	default:
		return "stop"
	}
}

// PlayerStatus is a snapshot of transport state returned by Player.Status.
type PlayerStatus struct {
	State        PlayState
	SongPos      int // -1 if none
	SongID       int // -1 if none
	Elapsed      time.Duration
	Duration     time.Duration
	Volume       int // -1 if unknown/no mixer
	Repeat       bool
	Random       bool
	Single       SingleMode
	Consume      bool
	NextSongPos  int // -1 if none
	NextSongID   int // -1 if none
	BitrateKbps  int
}

// Output is one virtual speaker/output.
type Output struct {
	ID      int
	Name    string
	Plugin  string
	Enabled bool
	Volume  int // -1 if the output has no independent volume control
}

// QueueItem is one entry in the play queue.
type QueueItem struct {
	ID       int
	Pos      int
	Path     string
	AddedVer int
}

// FileRow is one library row as returned by a query.
type FileRow struct {
	VirtualPath string
	Tags        map[string]string // protocol tag name -> value
	DurationMS  int64
	TimeModUnix int64
	Rating      int // 0 if unset
}

// GroupRow is one row of a `list TAG group ...` response: the distinct value
// of the requested tag plus the group tags' values for that row.
type GroupRow struct {
	Value  string
	Groups map[string]string
}

// SaveMode controls `save`'s create/append/replace semantics.
type SaveMode int

const (
	SaveCreate SaveMode = iota
	SaveAppend
	SaveReplace
)

// QueryParams is the parser's output (component C): a DB predicate plus
// sort/group/window/position options actually encountered.
type QueryParams struct {
	Filter        string // SQL-ish WHERE clause body, already escaped
	Sort          string
	Groups        []TagEntry
	Offset        int
	Limit         int // -1 means unlimited
	HasWindow  bool
	Position   *Position
	ExactMatch bool
	Seen       map[string]bool
}

func newQueryParams() QueryParams {
	return QueryParams{Limit: -1, Seen: map[string]bool{}}
}
