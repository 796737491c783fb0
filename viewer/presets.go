package viewer

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chordscope/chordscope"
	"gopkg.in/yaml.v2"
)

//go:embed presets/*.yml
var chordPresetFS embed.FS

type (
	// Preset is a named chord, loadable into the note field. Built-in
	// presets are embedded in the binary; the user can add their own as
	// .yml files under <UserConfigDir>/chordscope/presets/.
	Preset struct {
		Name  string
		User  bool
		Notes []int `yaml:"notes"`
	}

	Presets []Preset

	loadPreset struct {
		Index int
		*Model
	}
)

func (p *Presets) load() {
	*p = Presets{}
	p.loadPresetsFromFs(chordPresetFS, false)
	if configDir, err := os.UserConfigDir(); err == nil {
		userPresets := filepath.Join(configDir, "chordscope")
		p.loadPresetsFromFs(os.DirFS(userPresets), true)
	}
	sort.SliceStable(*p, func(i, j int) bool { return (*p)[i].Name < (*p)[j].Name })
}

func (p *Presets) loadPresetsFromFs(fsys fs.FS, userDefined bool) {
	fs.WalkDir(fsys, "presets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil
		}
		var preset Preset
		if yaml.UnmarshalStrict(data, &preset) == nil {
			noExt := path[:len(path)-len(filepath.Ext(path))]
			preset.Name = strings.ReplaceAll(filepath.Base(noExt), "_", " ")
			preset.User = userDefined
			*p = append(*p, preset)
		}
		return nil
	})
}

// Model methods

func (m *Model) PresetCount() int { return len(m.presets) }

func (m *Model) PresetName(index int) string {
	if index < 0 || index >= len(m.presets) {
		return ""
	}
	return m.presets[index].Name
}

// LoadPreset returns an Action replacing the note list with the preset's
// notes. Notes outside 0..127 in a (user-written) preset are dropped.
func (m *Model) LoadPreset(index int) Action {
	return MakeAction(loadPreset{Index: index, Model: m})
}
func (a loadPreset) Enabled() bool { return a.Index >= 0 && a.Index < len(a.Model.presets) }
func (a loadPreset) Do() {
	m := a.Model
	defer m.change("LoadPreset", NotesChange, MajorChange)()
	preset := m.presets[a.Index]
	m.d.Notes = m.d.Notes[:0]
	for _, n := range preset.Notes {
		if n < 0 || n > 127 {
			continue
		}
		m.d.Notes = append(m.d.Notes, chordscope.Note(n))
	}
	m.d.NoteText = notesAsString(m.d.Notes)
}
