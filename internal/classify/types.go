package classify

import "sweeper/internal/scan"

// Category is the file-type bucket assigned once per record.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySystem
	CategoryMedia
	CategoryDocuments
	CategoryImages
	CategoryArchives
	CategoryTemp
	CategoryCache
	CategoryBackups
	CategoryVirtualDisk
	CategoryModelWeights
	CategoryInstallers
	CategoryExecutables
	CategoryCrashDump
)

var categoryNames = map[Category]string{
	CategoryUnknown:      "unknown",
	CategorySystem:       "system",
	CategoryMedia:        "media",
	CategoryDocuments:    "documents",
	CategoryImages:       "images",
	CategoryArchives:     "archives",
	CategoryTemp:         "temp",
	CategoryCache:        "cache",
	CategoryBackups:      "backups",
	CategoryVirtualDisk:  "virtual-disk",
	CategoryModelWeights: "model-weights",
	CategoryInstallers:   "installers",
	CategoryExecutables:  "executables",
	CategoryCrashDump:    "crash-dump",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

// SafetyLevel orders records by the degree of caution deletion requires.
// The integer order is the total order: safe < user < unknown < critical.
// A level is never downgraded after assignment within one run.
type SafetyLevel int

const (
	SafetySafe SafetyLevel = iota
	SafetyUser
	SafetyUnknown
	SafetyCritical
)

func (s SafetyLevel) String() string {
	switch s {
	case SafetySafe:
		return "safe"
	case SafetyUser:
		return "user"
	case SafetyUnknown:
		return "unknown"
	case SafetyCritical:
		return "critical"
	}
	return "unknown"
}

// Classified pairs a scanned record with its classification outcome.
type Classified struct {
	Record   scan.Record `json:"record"`
	Category Category    `json:"-"`
	Safety   SafetyLevel `json:"-"`

	// String forms for JSON output.
	CategoryName string `json:"category"`
	SafetyName   string `json:"safety"`
}

// OpenSet answers whether a path is currently held open by a running
// process whose executable lives under a protected prefix. Implemented
// by procs.Snapshot; a nil OpenSet means no process information.
type OpenSet interface {
	IsOpen(path string) bool
}
