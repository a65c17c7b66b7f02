// Package padcore implements the Public API (component G): the eight
// entry points the RPC layer dispatches into, each taking a port index
// and holding the relevant per-slot lock for the duration of its touch.
//
// get_status and get_data serialize on a slot's padLock (input path);
// set_led, set_rumble, set_bdaddr and get_bdaddr serialize on cmdLock
// (output/command path), so a rumble update can be in flight while a
// frame poll is outstanding, matching the independent-lock concurrency
// model described alongside the data model.
package padcore

import (
	"log/slog"

	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// Core owns the pad table and the collaborators every entry point
// drives it through.
type Core struct {
	Table  *padtable.Table
	Ctrl   usbhost.Controller
	Ser    *transfer.Serializer
	Logger *slog.Logger
}

// New builds a Core over an already-constructed pad table.
func New(table *padtable.Table, ctrl usbhost.Controller, ser *transfer.Serializer, logger *slog.Logger) *Core {
	return &Core{Table: table, Ctrl: ctrl, Ser: ser, Logger: logger}
}
