package dialog

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// dirEntry adapts os.DirEntry to list.Item; directories sort first and
// carry a trailing separator so they're visually distinct in the listing.
type dirEntry struct {
	name  string
	isDir bool
}

func (d dirEntry) Title() string {
	if d.isDir {
		return d.name + string(filepath.Separator)
	}
	return d.name
}
func (d dirEntry) Description() string {
	if d.isDir {
		return "directory"
	}
	return "file"
}
func (d dirEntry) FilterValue() string { return d.name }

// Open is the Open-file dialog: a one-level directory listing (no
// recursive globbing, per the Non-goals) navigable with bubbles/list, and
// Enter either descends into a directory or commits a file selection.
type Open struct {
	list     list.Model
	dir      string
	done     bool
	canceled bool
	err      error
}

func NewOpen(dir string, width, height int) *Open {
	o := &Open{dir: dir}
	o.list = list.New(nil, list.NewDefaultDelegate(), width, height)
	o.list.Title = "Open"
	o.reload()
	return o
}

func (o *Open) reload() {
	entries, err := os.ReadDir(o.dir)
	if err != nil {
		o.err = err
		o.list.SetItems(nil)
		return
	}
	o.err = nil
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	items := make([]list.Item, 0, len(entries)+1)
	if parent := filepath.Dir(o.dir); parent != o.dir {
		items = append(items, dirEntry{name: "..", isDir: true})
	}
	for _, e := range entries {
		items = append(items, dirEntry{name: e.Name(), isDir: e.IsDir()})
	}
	o.list.SetItems(items)
}

func (o *Open) Init() tea.Cmd { return nil }

func (o *Open) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			o.canceled = true
			return o, nil
		case tea.KeyEnter:
			if sel, ok := o.list.SelectedItem().(dirEntry); ok {
				if sel.isDir {
					if sel.name == ".." {
						o.dir = filepath.Dir(o.dir)
					} else {
						o.dir = filepath.Join(o.dir, sel.name)
					}
					o.reload()
					return o, nil
				}
				o.done = true
			}
			return o, nil
		}
	}
	var cmd tea.Cmd
	o.list, cmd = o.list.Update(msg)
	return o, cmd
}

func (o *Open) View() string { return boxStyle.Render(o.list.View()) }

func (o *Open) Done() bool     { return o.done }
func (o *Open) Canceled() bool { return o.canceled }

// Path returns the selected file's name joined onto the dialog's directory;
// the result is relative when that directory is (e.g. "."). Only
// meaningful once Done reports true.
func (o *Open) Path() string {
	sel, ok := o.list.SelectedItem().(dirEntry)
	if !ok {
		return ""
	}
	return filepath.Join(o.dir, sel.name)
}

// Err surfaces a directory-read failure (e.g. permission denied) so the
// caller can fall back to a message box instead of showing an empty list.
func (o *Open) Err() error { return o.err }
