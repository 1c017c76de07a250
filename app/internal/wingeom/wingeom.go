// SPDX-License-Identifier: Unlicense OR MIT

// Package wingeom persists window placement between sessions. A
// Store maps window names to their last content rectangle so a
// window can reopen where the user left it.
//
// The store is written by whole-file replace under an advisory lock,
// so concurrent processes sharing a store file do not interleave
// writes.
package wingeom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Record is the persisted placement of one window.
type Record struct {
	// X, Y, Width and Height are the content rectangle in physical
	// pixels, relative to the screen arrangement at save time.
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Scale is the DPI scale the rectangle was saved under.
	Scale float32 `yaml:"scale"`
}

// Store reads and writes placement records in a YAML file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. The file is
// not touched until the first Lookup or Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all records. A missing file is an empty store, not an
// error.
func (s *Store) Load() (map[string]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wingeom: load %s: %w", s.path, err)
	}
	recs := map[string]Record{}
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("wingeom: parse %s: %w", s.path, err)
	}
	return recs, nil
}

// Lookup returns the record for name, if present.
func (s *Store) Lookup(name string) (Record, bool, error) {
	recs, err := s.Load()
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := recs[name]
	return rec, ok, nil
}

// Save stores the record for name, keeping all other records.
func (s *Store) Save(name string, rec Record) error {
	unlock, err := lock(s.path + ".lock")
	if err != nil {
		return fmt.Errorf("wingeom: lock %s: %w", s.path, err)
	}
	defer unlock()
	recs, err := s.Load()
	if err != nil {
		return err
	}
	recs[name] = rec
	return s.write(recs)
}

// write replaces the store file atomically: marshal to a temporary
// file in the same directory, then rename over the target.
func (s *Store) write(recs map[string]Record) error {
	data, err := marshal(recs)
	if err != nil {
		return fmt.Errorf("wingeom: encode: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("wingeom: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".wingeom-*")
	if err != nil {
		return fmt.Errorf("wingeom: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("wingeom: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("wingeom: close %s: %w", name, err)
	}
	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("wingeom: replace %s: %w", s.path, err)
	}
	return nil
}

// marshal encodes records with names in sorted order so saved files
// diff cleanly.
func marshal(recs map[string]Record) ([]byte, error) {
	names := maps.Keys(recs)
	slices.Sort(names)
	root := yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		var k, v yaml.Node
		k.SetString(name)
		if err := v.Encode(recs[name]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content, &k, &v)
	}
	return yaml.Marshal(&root)
}
