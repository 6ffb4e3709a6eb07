package data

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

// MeshEntry is one mesh of the asset bundle. Its id is its position in the
// manifest, matching the order meshes are uploaded by the renderer.
type MeshEntry struct {
	Name     string `yaml:"name"`
	Material int    `yaml:"material"`
}

// MaterialEntry names a material slot of the asset bundle.
type MaterialEntry struct {
	Name    string `yaml:"name"`
	Texture string `yaml:"texture,omitempty"`
}

type manifestFile struct {
	Meshes    []MeshEntry     `yaml:"meshes"`
	Materials []MaterialEntry `yaml:"materials"`
}

// MeshRef is the (mesh id, material id) pair a Renderable points at.
type MeshRef struct {
	Mesh     int
	Material int
}

// Manifest resolves mesh names to render resource ids.
type Manifest struct {
	meshes    []MeshEntry
	materials []MaterialEntry
	byName    map[string]int
}

// LoadManifest loads the asset manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// DefaultManifest returns the manifest bundled with the binary.
func DefaultManifest() *Manifest {
	m, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("bundled manifest: %v", err))
	}
	return m
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(raw []byte) (*Manifest, error) {
	var f manifestFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	m := &Manifest{
		meshes:    f.Meshes,
		materials: f.Materials,
		byName:    make(map[string]int, len(f.Meshes)),
	}
	for i, mesh := range f.Meshes {
		if mesh.Name == "" {
			return nil, fmt.Errorf("mesh %d: empty name", i)
		}
		if _, dup := m.byName[mesh.Name]; dup {
			return nil, fmt.Errorf("mesh %q: duplicate name", mesh.Name)
		}
		if len(f.Materials) > 0 && (mesh.Material < 0 || mesh.Material >= len(f.Materials)) {
			return nil, fmt.Errorf("mesh %q: material %d out of range", mesh.Name, mesh.Material)
		}
		m.byName[mesh.Name] = i
	}
	return m, nil
}

// Mesh returns the render ids of a mesh by name.
func (m *Manifest) Mesh(name string) (MeshRef, bool) {
	id, ok := m.byName[name]
	if !ok {
		return MeshRef{}, false
	}
	return MeshRef{Mesh: id, Material: m.meshes[id].Material}, true
}

// MustMesh is Mesh for names the game cannot run without. A missing mesh is
// a broken asset bundle, so it panics.
func (m *Manifest) MustMesh(name string) MeshRef {
	ref, ok := m.Mesh(name)
	if !ok {
		panic(fmt.Sprintf("asset manifest: mesh %q not found", name))
	}
	return ref
}

// MeshCount returns the number of meshes in the manifest.
func (m *Manifest) MeshCount() int {
	return len(m.meshes)
}

// MaterialName returns the name of a material id, or "" if unknown.
func (m *Manifest) MaterialName(id int) string {
	if id < 0 || id >= len(m.materials) {
		return ""
	}
	return m.materials[id].Name
}
