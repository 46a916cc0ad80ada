package world

// Table is the location of a map data table in the image.
type Table struct {
	Start int
	Len   int
}

// Map tables per world:
// 0: room pointers of the 32x16 world grid
// 1: slit pointers, 16 per room
// 2: meta tile pointers, 16 per slit
// 3: second set of room data, only used by White Land
var Tables = [Count][4]Table{
	{{Start: 0x19F80, Len: 0x200}, {Start: 0x1A180, Len: 0xCA0}, {Start: 0x1AE20, Len: 0x36A0}, {}},
	{{Start: 0x1E4E0, Len: 0x200}, {Start: 0x1E6E0, Len: 0x1320}, {Start: 0x1FA00, Len: 0x5C00}, {}},
	{{Start: 0x25600, Len: 0x200}, {Start: 0x25800, Len: 0xC20}, {Start: 0x26420, Len: 0x3260}, {}},
	{{Start: 0x29680, Len: 0x200}, {Start: 0x29880, Len: 0x600}, {Start: 0x29E80, Len: 0x2110}, {}},
	{{Start: 0x2BF90, Len: 0x200}, {Start: 0x2C190, Len: 0x12E0}, {Start: 0x2D470, Len: 0x2F30}, {}},
	{{Start: 0x303A0, Len: 0x200}, {Start: 0x305A0, Len: 0xE00}, {Start: 0x313A0, Len: 0x5530}, {}},
	{{Start: 0x368D0, Len: 0x200}, {Start: 0x36AD0, Len: 0xF80}, {Start: 0x37A50, Len: 0x49B0}, {}},
	{{Start: 0x3C400, Len: 0x200}, {Start: 0x3C600, Len: 0x1680}, {Start: 0x3DC80, Len: 0x2380}, {Start: 0x68000, Len: 0x50C0}},
}

// Names of the worlds, indexed by world number - 1.
var Names = [Count]string{
	"Big Blue",
	"Sand Ocean and Silence",
	"Port Town",
	"Death Wind",
	"Red Canyon",
	"Fire Field",
	"Mute City",
	"White Land 1 and 2",
}
