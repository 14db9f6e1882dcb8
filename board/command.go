package board

type (
	// Command is a single reversible state transition: an apply closure and
	// a revert closure. The pair must be symmetric — apply followed by
	// revert restores all observable state exactly, including cascading
	// cross-entity effects — but the log does not and cannot verify that;
	// it is the contract of whoever builds the pair. Captured entities are
	// held by reference, never by copy, so the closures always act on the
	// live objects.
	Command struct {
		apply  func()
		revert func()
	}

	// CommandLog is the undo/redo engine. It knows nothing about the data
	// model: it just stores opaque Commands on two stacks, most recent
	// last. Every state mutation in the whole program enters through Add;
	// mutating model state any other way breaks the undo contract.
	CommandLog struct {
		undoStack []Command
		redoStack []Command
	}
)

const maxUndo = 256

// Add executes apply immediately, records the pair for undo and clears the
// redo stack.
func (l *CommandLog) Add(apply, revert func()) {
	apply()
	if len(l.undoStack) >= maxUndo {
		l.undoStack = l.undoStack[1:]
	}
	l.undoStack = append(l.undoStack, Command{apply: apply, revert: revert})
	l.redoStack = l.redoStack[:0]
}

// Undo reverts the most recent command and moves it to the redo stack. Does
// nothing when there is nothing to undo.
func (l *CommandLog) Undo() {
	if len(l.undoStack) == 0 {
		return
	}
	command := l.undoStack[len(l.undoStack)-1]
	l.undoStack = l.undoStack[:len(l.undoStack)-1]
	command.revert()
	if len(l.redoStack) >= maxUndo {
		l.redoStack = l.redoStack[1:]
	}
	l.redoStack = append(l.redoStack, command)
}

// Redo re-applies the most recently undone command and moves it back to the
// undo stack. Does nothing when there is nothing to redo.
func (l *CommandLog) Redo() {
	if len(l.redoStack) == 0 {
		return
	}
	command := l.redoStack[len(l.redoStack)-1]
	l.redoStack = l.redoStack[:len(l.redoStack)-1]
	command.apply()
	if len(l.undoStack) >= maxUndo {
		l.undoStack = l.undoStack[1:]
	}
	l.undoStack = append(l.undoStack, command)
}

// Reset drops both stacks. Used when the active project is swapped out;
// Reset itself is not undoable.
func (l *CommandLog) Reset() {
	l.undoStack = l.undoStack[:0]
	l.redoStack = l.redoStack[:0]
}

func (l *CommandLog) CanUndo() bool { return len(l.undoStack) > 0 }
func (l *CommandLog) CanRedo() bool { return len(l.redoStack) > 0 }
