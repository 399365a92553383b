package modules

import (
	"testing"

	"github.com/amlsafe/landing/internal/particlefield/raster"
)

func moduleIDs(mods []Module) []string {
	ids := make([]string, 0, len(mods))
	for _, m := range mods {
		ids = append(ids, m.ID())
	}
	return ids
}

func TestDefaultModulesWithoutWasm(t *testing.T) {
	t.Parallel()

	got := moduleIDs(DefaultModules(Dependencies{}))
	want := []string{"assets", "particles", "landing"}
	if len(got) != len(want) {
		t.Fatalf("module ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("module ids = %v, want %v", got, want)
		}
	}
}

func TestDefaultModulesIncludeWasmWhenConfigured(t *testing.T) {
	t.Parallel()

	got := moduleIDs(DefaultModules(Dependencies{WasmDir: t.TempDir()}))
	if len(got) != 4 || got[2] != "wasm" {
		t.Fatalf("module ids = %v, want wasm before landing", got)
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	deps := Dependencies{
		Posters: raster.NewPosterCache(raster.PosterOptions{}),
		WasmDir: t.TempDir(),
	}
	seen := map[string]string{}
	for _, m := range DefaultModules(deps) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("%s Mount() error = %v", m.ID(), err)
		}
		if owner, ok := seen[mount.Prefix]; ok {
			t.Fatalf("module %q duplicates prefix %q owned by %q", m.ID(), mount.Prefix, owner)
		}
		seen[mount.Prefix] = m.ID()
	}
}

func TestPageOptionsFollowDependencies(t *testing.T) {
	t.Parallel()

	if got := len(Dependencies{}.pageOptions()); got != 2 {
		t.Fatalf("options without posters = %d, want 2", got)
	}
	withPosters := Dependencies{Posters: raster.NewPosterCache(raster.PosterOptions{})}
	if got := len(withPosters.pageOptions()); got != 1 {
		t.Fatalf("options with posters = %d, want 1", got)
	}
}
