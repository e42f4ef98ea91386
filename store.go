package hunter

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Persistence filenames. The canonical name carries the schema revision;
// earlier revisions are tried once at load time and migrated forward, so an
// upgrade never silently loses a user's sectors.
const sectorsFilename = "hunter_sectors_v3.json"

var legacySectorsFilenames = []string{
	"hunter_sectors_v2.json",
	"hunter_sectors.json",
}

// Store owns the canonical in-memory sector collection and the active sector
// id, and persists the whole collection to one durable file. Every mutation
// rewrites the file; there is no partial or field-level persistence.
type Store struct {
	dir string

	mu      sync.Mutex
	sectors []Sector
	active  string
}

// NewStore returns a store persisting into the given directory. Call Load
// before anything else.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the persisted collection, falling back to prior persistence
// filenames once, and to the built-in seed collection when nothing readable
// exists. A corrupt file is equivalent to no saved state: Load never fails.
func (st *Store) Load() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if sectors, ok := st.read(filepath.Join(st.dir, sectorsFilename)); ok {
		st.install(sectors)
		return
	}
	for _, name := range legacySectorsFilenames {
		sectors, ok := st.read(filepath.Join(st.dir, name))
		if !ok {
			continue
		}
		log.Printf("migrate-sectors-file from=%q to=%q", name, sectorsFilename)
		st.install(sectors)
		if err := st.save(); err != nil {
			log.Printf("migration write failed (will retry on next save): %v", err)
		}
		return
	}
	st.install(DefaultSectors())
}

// read parses one persistence file. Any failure is logged and treated as
// absent state.
func (st *Store) read(path string) ([]Sector, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	sectors, derr := DecodeBackup(data)
	if derr != nil {
		log.Printf("ignoring unreadable sectors file %q: %v", path, derr)
		return nil, false
	}
	return sectors, true
}

// install sets the collection, repairing the leader invariant on every
// sector, and resets the active sector to the first one.
func (st *Store) install(sectors []Sector) {
	for i := range sectors {
		sectors[i].repairLeader()
	}
	st.sectors = sectors
	st.active = ""
	if len(sectors) > 0 {
		st.active = sectors[0].ID
	}
}

// save rewrites the canonical persistence file. The write goes through a
// temporary file and a rename so a crash cannot leave a truncated
// collection behind.
func (st *Store) save() error {
	path := filepath.Join(st.dir, sectorsFilename)
	data, err := EncodeBackup(st.sectors)
	if err != nil {
		return fmt.Errorf("persist error: cannot encode sectors: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("persist error: cannot rename %q: %w", tmp, err)
	}
	return nil
}

// Sectors returns a copy of the collection in display order.
func (st *Store) Sectors() []Sector {
	st.mu.Lock()
	defer st.mu.Unlock()
	return cloneSectors(st.sectors)
}

// Sector returns a copy of the sector with the given id.
func (st *Store) Sector(id string) (Sector, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.sectors {
		if st.sectors[i].ID == id {
			return cloneSector(st.sectors[i]), true
		}
	}
	return Sector{}, false
}

// ActiveID returns the id of the active sector, empty only when the
// collection is empty.
func (st *Store) ActiveID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.active
}

// Active returns a copy of the active sector.
func (st *Store) Active() (Sector, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.sectors {
		if st.sectors[i].ID == st.active {
			return cloneSector(st.sectors[i]), true
		}
	}
	return Sector{}, false
}

// SetActive selects the active sector. An id absent from the collection
// falls back to the first sector, so a non-empty collection always has an
// observable active sector.
func (st *Store) SetActive(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.sectors {
		if st.sectors[i].ID == id {
			st.active = id
			return
		}
	}
	if len(st.sectors) > 0 {
		st.active = st.sectors[0].ID
	} else {
		st.active = ""
	}
}

// AddSector appends a sector. The caller must have assigned a unique id
// already (SectorForm.Build does).
func (st *Store) AddSector(sec Sector) error {
	if err := sec.Validate(); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.sectors {
		if st.sectors[i].ID == sec.ID {
			return fmt.Errorf("sector id %q already exists", sec.ID)
		}
	}
	sec.repairLeader()
	st.sectors = append(st.sectors, cloneSector(sec))
	if st.active == "" {
		st.active = sec.ID
	}
	return st.save()
}

// UpdateSector replaces the sector with the same id in place.
func (st *Store) UpdateSector(sec Sector) error {
	if err := sec.Validate(); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.sectors {
		if st.sectors[i].ID == sec.ID {
			sec.repairLeader()
			st.sectors[i] = cloneSector(sec)
			return st.save()
		}
	}
	return fmt.Errorf("unknown sector id %q", sec.ID)
}

// RemoveSector deletes a sector. Removing the active sector moves the
// selection to the first remaining one.
func (st *Store) RemoveSector(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.sectors {
		if st.sectors[i].ID != id {
			continue
		}
		st.sectors = append(st.sectors[:i], st.sectors[i+1:]...)
		if st.active == id {
			st.active = ""
			if len(st.sectors) > 0 {
				st.active = st.sectors[0].ID
			}
		}
		return st.save()
	}
	return fmt.Errorf("unknown sector id %q", id)
}

// ReplaceAll atomically swaps in a whole new collection; used by backup
// import after the user confirmed. Validation happens before any state is
// touched, so a bad collection leaves the store unchanged.
func (st *Store) ReplaceAll(sectors []Sector) error {
	var errs error
	seen := make(map[string]bool, len(sectors))
	for i := range sectors {
		if seen[sectors[i].ID] {
			errs = errors.Join(errs, fmt.Errorf("duplicate sector id %q", sectors[i].ID))
		}
		seen[sectors[i].ID] = true
	}
	if errs != nil {
		return errs
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.install(cloneSectors(sectors))
	return st.save()
}

// MergeQuotes applies quote patches to the given sector, matching stocks by
// id. Stocks without a patch and all other sectors are left untouched. It
// returns the number of patches applied. A sector id that no longer exists
// applies nothing: this is the staleness guard's discard path.
func (st *Store) MergeQuotes(sectorID string, patches []QuotePatch) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	var sec *Sector
	for i := range st.sectors {
		if st.sectors[i].ID == sectorID {
			sec = &st.sectors[i]
			break
		}
	}
	if sec == nil {
		return 0, nil
	}
	applied := 0
	for _, p := range patches {
		stk := sec.Stock(p.Symbol)
		if stk == nil {
			// provider answered for a symbol we no longer track
			continue
		}
		p.apply(stk)
		applied++
	}
	if applied == 0 {
		return 0, nil
	}
	return applied, st.save()
}

func cloneSector(s Sector) Sector {
	s.Stocks = append([]Stock(nil), s.Stocks...)
	return s
}

func cloneSectors(s []Sector) []Sector {
	out := make([]Sector, len(s))
	for i := range s {
		out[i] = cloneSector(s[i])
	}
	return out
}
