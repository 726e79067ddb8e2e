// Package ir defines a serializable snapshot of a resolved file's shape,
// used by the driver's "--emit ir" mode for tooling that wants a structured
// view of a compile without re-parsing C (spec §4.9's "else if --emit c"
// branch generalizes to other artifact kinds; ir is the bootstrap's
// debug/tooling escape hatch). Grounded on surge's disk-cache payload
// (internal/driver/dcache.go), which serializes module metadata the same
// way with vmihailenco/msgpack.
package ir

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion guards against decoding a snapshot written by an
// incompatible version of this package.
const schemaVersion uint16 = 1

// Param is a lowered function parameter.
type Param struct {
	Name string
	Type string
}

// Fn is a lowered function signature, one entry per top-level KindFn.
type Fn struct {
	Name       string
	MangledName string
	ReturnType string
	Params     []Param
}

// Snapshot is the top-level serialized form of one compiled file.
type Snapshot struct {
	Schema     uint16
	ModulePath string
	Functions  []Fn
	Warnings   int
	Errors     int
}

// Encode writes snap to w as msgpack.
func Encode(w io.Writer, snap *Snapshot) error {
	snap.Schema = schemaVersion
	return msgpack.NewEncoder(w).Encode(snap)
}

// Decode reads a Snapshot from r.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
