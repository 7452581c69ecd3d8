// Package store keeps named grids ("slots") in the per-user data directory.
//
// Each slot is a .bgol payload stored as a gdata object property; the list of
// slot names lives in a YAML index next to them. When the data directory is
// unavailable the store keeps slots in memory for the life of the process.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"lifegrid/internal/observability"
	"lifegrid/pkg/grid"
	"lifegrid/pkg/zoo"
)

var (
	ErrInvalidName = errors.New("store: invalid slot name")
	ErrNotFound    = errors.New("store: slot not found")
)

const (
	slotsObject   = "slots"
	indexObject   = "index"
	indexProperty = "slots"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type index struct {
	Slots []string `yaml:"slots"`
}

// Store persists grids under validated names.
type Store struct {
	manager *gdata.Manager // nil in memory-only mode
	memory  map[string][]byte
	logger  zerolog.Logger
}

// Open opens the data directory for appName. If gdata cannot open it the
// returned Store works in memory and Persistent reports false.
func Open(appName string) (*Store, error) {
	if appName == "" {
		return nil, fmt.Errorf("store: empty app name")
	}
	s := &Store{logger: log.With().Str("component", "store").Logger()}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		s.logger.Warn().Err(err).Str("app", appName).Msg("data directory unavailable, keeping slots in memory")
		s.memory = map[string][]byte{}
		return s, nil
	}
	s.manager = manager
	return s, nil
}

// NewMemory returns a Store that never touches disk.
func NewMemory() *Store {
	return &Store{memory: map[string][]byte{}, logger: log.With().Str("component", "store").Logger()}
}

// Persistent reports whether slots survive the process.
func (s *Store) Persistent() bool { return s.manager != nil }

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Save writes g under name, replacing any previous slot.
func (s *Store) Save(name string, g *grid.Grid) (err error) {
	defer func() { observability.RecordStoreOp("save", err == nil) }()
	if err := checkName(name); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := zoo.WriteBinary(&buf, g); err != nil {
		return fmt.Errorf("store: encode %q: %w", name, err)
	}
	if s.manager == nil {
		s.memory[name] = buf.Bytes()
		return nil
	}
	if err := s.manager.SaveObjectProp(slotsObject, name, buf.Bytes()); err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}
	names, err := s.List()
	if err != nil {
		return err
	}
	if i := sort.SearchStrings(names, name); i == len(names) || names[i] != name {
		names = append(names, name)
		sort.Strings(names)
		if err := s.writeIndex(names); err != nil {
			return err
		}
	}
	s.logger.Debug().Str("slot", name).Int("bytes", buf.Len()).Msg("slot saved")
	return nil
}

// Load reads the grid stored under name.
func (s *Store) Load(name string) (g *grid.Grid, err error) {
	defer func() { observability.RecordStoreOp("load", err == nil) }()
	if err := checkName(name); err != nil {
		return nil, err
	}
	var data []byte
	if s.manager == nil {
		var ok bool
		if data, ok = s.memory[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
	} else {
		if !s.manager.ObjectPropExists(slotsObject, name) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		if data, err = s.manager.LoadObjectProp(slotsObject, name); err != nil {
			return nil, fmt.Errorf("store: load %q: %w", name, err)
		}
	}
	g, err = zoo.ReadBinary(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store: decode %q: %w", name, err)
	}
	return g, nil
}

// Exists reports whether a slot named name is stored.
func (s *Store) Exists(name string) bool {
	if checkName(name) != nil {
		return false
	}
	if s.manager == nil {
		_, ok := s.memory[name]
		return ok
	}
	return s.manager.ObjectPropExists(slotsObject, name)
}

// List returns the stored slot names in sorted order.
func (s *Store) List() ([]string, error) {
	if s.manager == nil {
		names := make([]string, 0, len(s.memory))
		for name := range s.memory {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, nil
	}
	if !s.manager.ObjectPropExists(indexObject, indexProperty) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(indexObject, indexProperty)
	if err != nil {
		return nil, fmt.Errorf("store: load index: %w", err)
	}
	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("store: parse index: %w", err)
	}
	sort.Strings(idx.Slots)
	return idx.Slots, nil
}

// Delete removes the slot named name.
func (s *Store) Delete(name string) (err error) {
	defer func() { observability.RecordStoreOp("delete", err == nil) }()
	if err := checkName(name); err != nil {
		return err
	}
	if !s.Exists(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if s.manager == nil {
		delete(s.memory, name)
		return nil
	}
	if err := s.manager.DeleteObjectProp(slotsObject, name); err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	names, err := s.List()
	if err != nil {
		return err
	}
	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	s.logger.Debug().Str("slot", name).Msg("slot deleted")
	return s.writeIndex(kept)
}

func (s *Store) writeIndex(names []string) error {
	data, err := yaml.Marshal(index{Slots: names})
	if err != nil {
		return fmt.Errorf("store: marshal index: %w", err)
	}
	if err := s.manager.SaveObjectProp(indexObject, indexProperty, data); err != nil {
		return fmt.Errorf("store: save index: %w", err)
	}
	return nil
}
