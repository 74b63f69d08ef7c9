// ABOUTME: File-backed record store for FAQ entries, lead snapshots, and fraud cases
// ABOUTME: Handles load-or-seed, atomic JSON saves, and case upserts
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/poojareddy/voicedesk/models"
)

// Collection file names inside the store directory.
const (
	faqFile   = "faq.json"
	leadsFile = "leads.json"
	casesFile = "cases.json"
)

// Store persists the three record collections as JSON arrays on disk.
// Construct one per process and inject it; there is no package-level state.
//
// The mutex serializes read-modify-write sequences within this process.
// Concurrent writers from other processes are not coordinated; last write
// wins and may drop the other writer's change.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares the store directory and returns a Store. Collections are
// seeded lazily on first load.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string {
	return s.dir
}

// LoadFAQ returns the reference collection, seeding the default FAQ if the
// file is absent or unreadable.
func (s *Store) LoadFAQ() ([]models.ReferenceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection(s, faqFile, DefaultFAQ())
}

// SaveFAQ overwrites the reference collection.
func (s *Store) SaveFAQ(entries []models.ReferenceEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCollection(s, faqFile, entries)
}

// LoadLeads returns the lead snapshot history, oldest first.
func (s *Store) LoadLeads() ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection(s, leadsFile, []models.Lead{})
}

// SaveLeads overwrites the lead snapshot history.
func (s *Store) SaveLeads(leads []models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCollection(s, leadsFile, leads)
}

// AppendLead appends a full snapshot of the lead to the history. Snapshots
// are never rewritten or deleted.
func (s *Store) AppendLead(lead models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := loadCollection(s, leadsFile, []models.Lead{})
	if err != nil {
		return err
	}
	leads = append(leads, lead)
	return saveCollection(s, leadsFile, leads)
}

// LoadCases returns the case collection, seeding defaults if absent.
func (s *Store) LoadCases() ([]models.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection(s, casesFile, DefaultCases())
}

// SaveCases overwrites the case collection.
func (s *Store) SaveCases(cases []models.CaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCollection(s, casesFile, cases)
}

// UpsertCase sets the status and outcome note of the case with the given ID
// and persists the whole collection. Returns the updated record, or nil when
// no case matches. The entire read-modify-write runs under the store lock.
func (s *Store) UpsertCase(caseID, status, note string) (*models.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cases, err := loadCollection(s, casesFile, DefaultCases())
	if err != nil {
		return nil, err
	}

	for i := range cases {
		if cases[i].CaseID != caseID {
			continue
		}
		cases[i].Status = status
		cases[i].OutcomeNote = note
		if err := saveCollection(s, casesFile, cases); err != nil {
			return nil, err
		}
		updated := cases[i]
		return &updated, nil
	}

	return nil, nil
}

// Seed rewrites every collection with its built-in defaults.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := saveCollection(s, faqFile, DefaultFAQ()); err != nil {
		return err
	}
	if err := saveCollection(s, leadsFile, []models.Lead{}); err != nil {
		return err
	}
	return saveCollection(s, casesFile, DefaultCases())
}

// loadCollection reads a JSON array from the store directory. A missing file
// seeds and persists the defaults. A file that fails to parse is moved aside
// to <name>.corrupt for repair and the defaults are reseeded in its place.
func loadCollection[T any](s *Store, name string, defaults []T) ([]T, error) {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := saveCollection(s, name, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		quarantine := path + ".corrupt"
		log.Printf("warning: %s is not a valid collection (%v); moving to %s and reseeding defaults", name, err, quarantine)
		if renameErr := os.Rename(path, quarantine); renameErr != nil {
			return nil, fmt.Errorf("failed to quarantine corrupt %s: %w", name, renameErr)
		}
		if err := saveCollection(s, name, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	return items, nil
}

// saveCollection writes the collection to a temp file in the store directory
// and renames it into place, so readers never observe a partial write.
func saveCollection[T any](s *Store, name string, items []T) error {
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}
