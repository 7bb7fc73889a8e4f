package spilcd

import (
	"errors"
	"fmt"
	"time"
)

// ErrInitTable reports a table that runs out before its terminator.
var ErrInitTable = errors.New("spilcd: malformed init table")

// TableEnd is the data length that terminates an init table.
const TableEnd = 255

// An init table is a sequence of
//
//	command u8, delay_ms u8, data_len u8, data[data_len]
//
// entries ending with an entry whose data_len is TableEnd. The delay is slept
// after the command and its data have been sent.

// RunInitTable walks table, calling send for every command and sleep for
// every non-zero delay. It stops at the terminator, at the first send error,
// or with ErrInitTable if the table is truncated.
func RunInitTable(table []byte, send func(cmd byte, data []byte) error, sleep func(time.Duration)) error {
	for i := 0; ; {
		if i+3 > len(table) {
			return fmt.Errorf("%w: no terminator after byte %d", ErrInitTable, i)
		}
		cmd, delay, n := table[i], table[i+1], int(table[i+2])
		if n == TableEnd {
			return nil
		}
		i += 3
		if i+n > len(table) {
			return fmt.Errorf("%w: command %#02x wants %d data bytes, %d left", ErrInitTable, cmd, n, len(table)-i)
		}
		if err := send(cmd, table[i:i+n]); err != nil {
			return fmt.Errorf("spilcd: command %#02x: %w", cmd, err)
		}
		i += n
		if delay > 0 && sleep != nil {
			sleep(time.Duration(delay) * time.Millisecond)
		}
	}
}

// Table builds an init table from entries. Each entry is command, delay and
// data; the terminator is appended.
func Table(entries ...Entry) []byte {
	var t []byte
	for _, e := range entries {
		t = append(t, e.Cmd, e.DelayMS, byte(len(e.Data)))
		t = append(t, e.Data...)
	}
	return append(t, 0, 0, TableEnd)
}

// Entry is one init table step.
type Entry struct {
	Cmd     byte
	DelayMS byte
	Data    []byte
}

func cmd(c byte, data ...byte) Entry { return Entry{Cmd: c, Data: data} }

func cmdWait(c byte, ms byte, data ...byte) Entry { return Entry{Cmd: c, DelayMS: ms, Data: data} }
