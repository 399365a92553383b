package content

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"
)

// reloadDebounce coalesces editor write bursts into one reload. The timer is
// armed by the first change and not pushed back by later ones, so a steady
// stream of writes still reloads at least once per interval.
const reloadDebounce = 250 * time.Millisecond

// Store serves the current catalogs. Overrides from a directory are layered
// on the embedded copy and can be reloaded while the server runs.
type Store struct {
	dir      string
	embedded Catalog

	mu      sync.RWMutex
	catalog Catalog
	matcher language.Matcher
	tags    []language.Tag
}

// NewStore loads the embedded catalogs and, when dir is not empty, the
// overrides found there.
func NewStore(dir string) (*Store, error) {
	base, err := Embedded()
	if err != nil {
		return nil, err
	}
	s := &Store{dir: strings.TrimSpace(dir), embedded: base}
	catalog := base
	if s.dir != "" {
		catalog, err = overlay(base, os.DirFS(s.dir))
		if err != nil {
			return nil, err
		}
	}
	s.set(catalog)
	return s, nil
}

// NewStoreFromCatalog wraps an already loaded catalog. The result has no
// override directory.
func NewStoreFromCatalog(catalog Catalog) (*Store, error) {
	if _, ok := catalog[BaseLocale]; !ok {
		return nil, fmt.Errorf("content: base locale %s missing", BaseLocale)
	}
	s := &Store{embedded: catalog}
	s.set(catalog)
	return s, nil
}

func (s *Store) set(catalog Catalog) {
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for _, locale := range catalog.Locales() {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	s.mu.Lock()
	s.catalog = catalog
	s.tags = tags
	s.matcher = language.NewMatcher(tags)
	s.mu.Unlock()
}

// Tags returns the supported locales, base locale first.
func (s *Store) Tags() []language.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]language.Tag(nil), s.tags...)
}

// Landing returns the copy for tag, falling back to the closest supported
// locale and finally to the base locale.
func (s *Store) Landing(tag language.Tag) Landing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if landing, ok := s.catalog[tag.String()]; ok {
		return landing
	}
	_, index, confidence := s.matcher.Match(tag)
	if confidence != language.No && index < len(s.tags) {
		if landing, ok := s.catalog[s.tags[index].String()]; ok {
			return landing
		}
	}
	return s.catalog[BaseLocale]
}

// Reload re-reads the override directory. On error the current catalog is
// kept.
func (s *Store) Reload() error {
	if s.dir == "" {
		return nil
	}
	catalog, err := overlay(s.embedded, os.DirFS(s.dir))
	if err != nil {
		return err
	}
	s.set(catalog)
	return nil
}

// Watch reloads the catalogs whenever a YAML file in the override directory
// changes. It returns nil when ctx ends and immediately when no directory is
// configured.
func (s *Store) Watch(ctx context.Context) error {
	if s.dir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("content: watch %s: %w", s.dir, err)
	}

	debounce := time.NewTimer(reloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if relevant(event) && !pending {
				pending = true
				debounce.Reset(reloadDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("content: watcher error: %v", err)
		case <-debounce.C:
			pending = false
			if err := s.Reload(); err != nil {
				log.Printf("content: reload failed, keeping previous catalog: %v", err)
				continue
			}
			log.Printf("content: reloaded catalogs dir=%s", s.dir)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Ext(event.Name) == ".yaml"
}
