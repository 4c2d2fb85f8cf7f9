package presets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// BuiltinSource is the Source of presets bundled with the binary.
const BuiltinSource = "builtin"

// ErrDuplicatePreset is returned when one layer defines a name twice.
var ErrDuplicatePreset = errors.New("duplicate preset name")

// layer is one directory of preset files. Disk layers and the embedded
// builtins are read through the same fs.FS path.
type layer struct {
	fsys fs.FS
	dir  string
	// origin prefixes the Source of each preset; empty for builtins.
	origin string
}

func (l layer) source(file string) string {
	if l.origin == "" {
		return BuiltinSource
	}
	return filepath.Join(l.origin, file)
}

func diskLayer(dir string) layer {
	return layer{fsys: os.DirFS(dir), dir: ".", origin: dir}
}

func builtinLayer() layer {
	return layer{fsys: builtinFS, dir: "builtin"}
}

// SearchPaths returns preset directories in precedence order: project,
// user, system. Builtins always come last.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".brandkit", "presets"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "brandkit", "presets"))
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "brandkit", "presets"))
	return paths
}

// Catalog is the merged view of every preset layer. A preset in an earlier
// layer shadows presets of the same name in later layers.
type Catalog struct {
	byName   map[string]*Preset
	shadowed map[string][]string
}

// Load builds the catalog for projectDir from the search paths and the
// builtins.
func Load(projectDir string) (*Catalog, error) {
	layers := make([]layer, 0, 4)
	for _, dir := range SearchPaths(projectDir) {
		layers = append(layers, diskLayer(dir))
	}
	return newCatalog(append(layers, builtinLayer()))
}

// Builtin returns a catalog of the bundled presets only.
func Builtin() (*Catalog, error) {
	return newCatalog([]layer{builtinLayer()})
}

func newCatalog(layers []layer) (*Catalog, error) {
	c := &Catalog{
		byName:   make(map[string]*Preset),
		shadowed: make(map[string][]string),
	}
	for _, l := range layers {
		found, err := readLayer(l)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			if winner, ok := c.byName[p.Name]; ok {
				c.shadowed[winner.Name] = append(c.shadowed[winner.Name], p.Source)
				continue
			}
			c.byName[p.Name] = p
		}
	}
	return c, nil
}

// List returns every visible preset ordered by name.
func (c *Catalog) List() []*Preset {
	out := make([]*Preset, 0, len(c.byName))
	for _, p := range c.byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Find returns the visible preset called name.
func (c *Catalog) Find(name string) (*Preset, error) {
	p, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return p, nil
}

// Shadowed lists the sources of presets hidden by the visible preset name.
func (c *Catalog) Shadowed(name string) []string {
	return append([]string(nil), c.shadowed[name]...)
}

// Find loads the catalog for projectDir and looks up name.
func Find(projectDir, name string) (*Preset, error) {
	c, err := Load(projectDir)
	if err != nil {
		return nil, err
	}
	return c.Find(name)
}

// readLayer parses every YAML file of a layer. A missing directory is an
// empty layer; a name defined twice within one layer is an error.
func readLayer(l layer) ([]*Preset, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read presets %s: %w", l.source(""), err)
	}

	files := make(map[string]string, len(entries))
	found := make([]*Preset, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		data, err := fs.ReadFile(l.fsys, path.Join(l.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", l.source(name), err)
		}
		p, err := parsePreset(data)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", l.source(name), err)
		}
		if first, dup := files[p.Name]; dup {
			return nil, fmt.Errorf("%w %q in %s and %s", ErrDuplicatePreset, p.Name, first, name)
		}
		files[p.Name] = name
		p.Source = l.source(name)
		found = append(found, p)
	}
	return found, nil
}
