package game

import "fmt"

// Process identifies a station of the warehouse pipeline. A pallet moves
// through the stations strictly in order; Next is the only way to advance,
// so a caller can never skip a station or move backwards.
type Process int

const (
	// ProcessNone marks a pallet without a valid station assignment
	ProcessNone Process = -1

	// ProcessUnloading is goods-in: pallets leave the truck here
	ProcessUnloading Process = 0

	// ProcessCollection moves pallets from goods-in towards the storage area
	ProcessCollection Process = 1

	// ProcessStorage is the high-bay storage area
	ProcessStorage Process = 2

	// ProcessControl is outgoing inspection and picking
	ProcessControl Process = 3

	// ProcessLoading is goods-out: pallets are loaded onto trucks here
	ProcessLoading Process = 4

	// ProcessDone marks a pallet that left the site on a customer truck
	ProcessDone Process = 5
)

// ProcessCount is the number of staffed stations (ProcessDone excluded)
const ProcessCount = 5

// StationProcesses enumerates the staffed stations in pipeline order
func StationProcesses() [ProcessCount]Process {
	return [ProcessCount]Process{
		ProcessUnloading,
		ProcessCollection,
		ProcessStorage,
		ProcessControl,
		ProcessLoading,
	}
}

// ProcessFromInt converts a raw station index into a Process
func ProcessFromInt(value int) (Process, error) {
	p := Process(value)
	if p < ProcessNone || p > ProcessDone {
		return ProcessNone, &ErrInvalidProcess{Value: value}
	}
	return p, nil
}

// Next returns the following station. The second return value is false when
// the process has no successor (ProcessDone) or is not a valid station.
func (p Process) Next() (Process, bool) {
	if p < ProcessUnloading || p >= ProcessDone {
		return ProcessNone, false
	}
	return p + 1, true
}

// IsStation reports whether the process is one of the five staffed stations
func (p Process) IsStation() bool {
	return p >= ProcessUnloading && p < ProcessDone
}

// UsesConveyors reports whether the station operates conveyor equipment.
// Only goods-in, storage and goods-out do; collection and control are
// pure manual work.
func (p Process) UsesConveyors() bool {
	return p == ProcessUnloading || p == ProcessStorage || p == ProcessLoading
}

// Index returns the station index for array-indexed per-process values
func (p Process) Index() int {
	return int(p)
}

// ShortCode returns the short German station code used in reports
func (p Process) ShortCode() string {
	switch p {
	case ProcessUnloading:
		return "en"
	case ProcessCollection:
		return "wv"
	case ProcessStorage:
		return "la"
	case ProcessControl:
		return "wk"
	case ProcessLoading:
		return "ve"
	default:
		return "-"
	}
}

func (p Process) String() string {
	return fmt.Sprintf("%d", int(p))
}
