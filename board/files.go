package board

import (
	"fmt"
	"io"
	"os"

	pywave "github.com/BenjaminSchaaf/PyWave"
)

// NewProject replaces the open project with an empty one. Not undoable: the
// command log belongs to the project it recorded, so it is reset.
func (m *Model) NewProject() {
	m.project = pywave.NewProject()
	m.editing = nil
	m.filePath = ""
	m.log.Reset()
	TrySend(m.broker.ToView, MsgToView{Kind: ProjectChanged})
}

// ReadProject replaces the open project with one read from r. Sound clips
// are loaded through the model's loader; per-entry load problems become
// warnings and never abort the load.
func (m *Model) ReadProject(r io.ReadCloser) {
	b, err := io.ReadAll(r)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error reading a project file: %v", err), Error)
		return
	}
	if err := r.Close(); err != nil {
		m.alerts.Add(fmt.Sprintf("Error closing a project file: %v", err), Error)
		return
	}
	project, warnings, err := pywave.UnmarshalProject(b, m.loader)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error unmarshaling a project file: %v", err), Error)
		return
	}
	for _, w := range warnings {
		m.alerts.Add(w, Warning)
	}
	m.project = project
	m.editing = nil
	if f, ok := r.(*os.File); ok {
		m.filePath = f.Name()
	}
	m.log.Reset()
	TrySend(m.broker.ToView, MsgToView{Kind: ProjectChanged})
}

// WriteProject saves the open project to w, closing it on every path. The
// file path is only adopted once the write has fully succeeded, so a failed
// save never changes where the next save goes. Reports whether the write
// succeeded; failures become alerts.
func (m *Model) WriteProject(w io.WriteCloser) bool {
	contents, err := m.project.Marshal()
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error marshaling a project file: %v", err), Error)
		w.Close()
		return false
	}
	if _, err := w.Write(contents); err != nil {
		m.alerts.Add(fmt.Sprintf("Error writing to file: %v", err), Error)
		w.Close()
		return false
	}
	if err := w.Close(); err != nil {
		m.alerts.Add(fmt.Sprintf("Error closing a project file: %v", err), Error)
		return false
	}
	if f, ok := w.(*os.File); ok {
		m.filePath = f.Name()
	}
	return true
}

// OpenProject opens the project file at path.
func (m *Model) OpenProject(path string) {
	f, err := os.Open(path)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error opening a project file: %v", err), Error)
		return
	}
	m.ReadProject(f)
}

// SaveProject saves to the path the project was loaded from or last saved
// to. Reports whether the project has a path and the save succeeded.
func (m *Model) SaveProject() bool {
	if m.filePath == "" {
		return false
	}
	return m.SaveProjectAs(m.filePath)
}

func (m *Model) SaveProjectAs(path string) bool {
	f, err := os.Create(path)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error creating a project file: %v", err), Error)
		return false
	}
	return m.WriteProject(f)
}

// ChangedSinceSave reports whether the open project differs from its file on
// disk, or from a pristine empty project when it has never been saved. The
// check is structural: the reference is reparsed and compared to the
// project's serialized form, so undoing back to the saved state counts as
// clean even though commands were logged since.
func (m *Model) ChangedSinceSave() bool {
	var b []byte
	var err error
	if m.filePath == "" {
		b, err = pywave.NewProject().Marshal()
	} else {
		b, err = os.ReadFile(m.filePath)
	}
	if err != nil {
		return true
	}
	return !m.project.EqualsSerialized(b)
}
