package board_test

import (
	"testing"

	"github.com/BenjaminSchaaf/PyWave/board"
)

func TestCommandLogUndoRedo(t *testing.T) {
	var log board.CommandLog
	value := 0
	add := func(n int) {
		log.Add(func() { value += n }, func() { value -= n })
	}
	for i := 1; i <= 4; i++ {
		add(i)
	}
	if value != 10 {
		t.Fatalf("value = %d after four adds, expected 10", value)
	}
	for log.CanUndo() {
		log.Undo()
	}
	if value != 0 {
		t.Errorf("value = %d after undoing everything, expected 0", value)
	}
	for log.CanRedo() {
		log.Redo()
	}
	if value != 10 {
		t.Errorf("value = %d after redoing everything, expected 10", value)
	}
	log.Undo()
	log.Redo()
	log.Undo()
	log.Redo()
	if value != 10 {
		t.Errorf("value = %d after undo/redo cycles, expected 10", value)
	}
}

func TestCommandLogAddClearsRedo(t *testing.T) {
	var log board.CommandLog
	value := 0
	log.Add(func() { value = 1 }, func() { value = 0 })
	log.Undo()
	log.Add(func() { value = 2 }, func() { value = 0 })
	if log.CanRedo() {
		t.Error("a new command should clear the redo stack")
	}
	if value != 2 {
		t.Errorf("value = %d, expected 2", value)
	}
}

func TestCommandLogEmpty(t *testing.T) {
	var log board.CommandLog
	if log.CanUndo() || log.CanRedo() {
		t.Error("a fresh log should have nothing to undo or redo")
	}
	log.Undo()
	log.Redo()
}

func TestCommandLogReset(t *testing.T) {
	var log board.CommandLog
	value := 0
	log.Add(func() { value = 1 }, func() { value = 0 })
	log.Add(func() { value = 2 }, func() { value = 1 })
	log.Undo()
	log.Reset()
	if log.CanUndo() || log.CanRedo() {
		t.Error("Reset should drop both stacks")
	}
	if value != 1 {
		t.Errorf("value = %d, Reset should not revert state", value)
	}
}
