package engine

import (
	"sort"
	"sync"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/hazards"
)

// Catalog looks up the weapons, spells and hazards a request names
type Catalog interface {
	Weapon(key string) (*equipment.Weapon, error)
	Spell(key string) (*spells.Spell, error)
	Hazard(key string) (*hazards.Definition, error)
}

// StaticCatalog is an in-memory Catalog. It is safe for concurrent use so
// a loader can fill it from several goroutines.
type StaticCatalog struct {
	mu      sync.RWMutex
	weapons map[string]*equipment.Weapon
	spells  map[string]*spells.Spell
	hazards map[string]*hazards.Definition
}

// NewStaticCatalog creates an empty catalog
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		weapons: make(map[string]*equipment.Weapon),
		spells:  make(map[string]*spells.Spell),
		hazards: make(map[string]*hazards.Definition),
	}
}

// DefaultCatalog holds the built-in weapons, spells and hazards
func DefaultCatalog() (*StaticCatalog, error) {
	c := NewStaticCatalog()
	for _, key := range equipment.Keys() {
		w, err := equipment.Lookup(key)
		if err != nil {
			return nil, err
		}
		if err := c.AddWeapon(w); err != nil {
			return nil, err
		}
	}
	for _, key := range spells.Keys() {
		s, err := spells.Lookup(key)
		if err != nil {
			return nil, err
		}
		if err := c.AddSpell(s); err != nil {
			return nil, err
		}
	}
	for _, def := range hazards.Catalog() {
		if err := c.AddHazard(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddWeapon validates and stores a weapon, replacing any with the same key
func (c *StaticCatalog) AddWeapon(w *equipment.Weapon) error {
	if w == nil {
		return errors.InvalidArgument("weapon is required")
	}
	if err := w.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weapons[w.Key] = w.Clone()
	return nil
}

// AddSpell validates and stores a spell
func (c *StaticCatalog) AddSpell(s *spells.Spell) error {
	if s == nil {
		return errors.InvalidArgument("spell is required")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spells[s.Key] = s.Clone()
	return nil
}

// AddHazard validates and stores a hazard
func (c *StaticCatalog) AddHazard(def *hazards.Definition) error {
	if def == nil {
		return errors.InvalidArgument("hazard is required")
	}
	if err := def.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hazards[def.Key] = def.Clone()
	return nil
}

// Weapon implements Catalog
func (c *StaticCatalog) Weapon(key string) (*equipment.Weapon, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	w, ok := c.weapons[key]
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", key).WithMeta("weapon", key)
	}
	return w.Clone(), nil
}

// Spell implements Catalog
func (c *StaticCatalog) Spell(key string) (*spells.Spell, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.spells[key]
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", key).WithMeta("spell", key)
	}
	return s.Clone(), nil
}

// Hazard implements Catalog
func (c *StaticCatalog) Hazard(key string) (*hazards.Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.hazards[key]
	if !ok {
		return nil, errors.NotFoundf("hazard %q not found", key).WithMeta("hazard", key)
	}
	return def.Clone(), nil
}

// WeaponKeys lists stored weapon keys in order
func (c *StaticCatalog) WeaponKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.weapons)
}

// SpellKeys lists stored spell keys in order
func (c *StaticCatalog) SpellKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.spells)
}

// HazardKeys lists stored hazard keys in order
func (c *StaticCatalog) HazardKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.hazards)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
