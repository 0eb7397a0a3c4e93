package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/internal/life"
)

func glider(g *life.Grid) {
	g.Set(1, 0, true)
	g.Set(2, 1, true)
	g.Set(0, 2, true)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
}

func TestFileRoundTrip(t *testing.T) {
	gw := NewGateway(NewFileStore(t.TempDir()), nil)

	src := life.New(6, 4)
	glider(src)
	require.NoError(t, gw.Save(3, src))

	dst := life.New(6, 4)
	require.True(t, gw.Load(3, dst))
	assert.Equal(t, src.Pattern(), dst.Pattern())
	assert.Equal(t, dst.Len(), dst.Tracker().Pending(), "load must request a full redraw")
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			c := dst.At(x, y)
			require.Equal(t, c.Active, c.Previous, "snapshot differs at (%d,%d)", x, y)
		}
	}
}

func TestSavedDocumentShape(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	g := life.New(3, 2)
	g.Set(2, 0, true)
	require.NoError(t, NewGateway(store, nil).Save(1, g))

	data, err := os.ReadFile(filepath.Join(dir, "save_1.json"))
	require.NoError(t, err)
	p, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, life.Pattern{{false, false, true}, {false, false, false}}, p)
	assert.Contains(t, string(data), "\n  [\n    0,")
}

func TestLoadMissingSlotResets(t *testing.T) {
	gw := NewGateway(NewFileStore(t.TempDir()), nil)
	g := life.New(4, 4)
	glider(g)
	assert.False(t, gw.Load(7, g))
	assert.Zero(t, g.Population())
	assert.Equal(t, g.Len(), g.Tracker().Pending())
}

func TestLoadTruncatedDocumentResets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "save_2.json"), []byte("[[1, 0, 1], [0, 1"), 0o644))
	g := life.New(3, 3)
	glider(g)
	assert.False(t, NewGateway(NewFileStore(dir), nil).Load(2, g))
	assert.Zero(t, g.Population())
}

func TestDecodeRecoversPerCell(t *testing.T) {
	p, err := Decode([]byte(`[[1, "x", 1, 1], {"a": 1}, [0, 1, 2], [1]]`))
	require.NoError(t, err)

	g := life.New(3, 3)
	g.Replace(p)
	want := life.Pattern{
		{true, false, true},
		{false, false, false},
		{false, true, false},
	}
	assert.Equal(t, want, g.Pattern())
}

func TestDecodeAcceptsBooleanTrue(t *testing.T) {
	p, err := Decode([]byte(`[[true, 1.0, 1], [false, null, 0.5]]`))
	require.NoError(t, err)
	assert.Equal(t, life.Pattern{{true, true, true}, {false, false, false}}, p)
}

func TestDecodeRejectsNonArray(t *testing.T) {
	_, err := Decode([]byte(`{"rows": []}`))
	assert.Error(t, err)
}

func TestBadgerRoundTrip(t *testing.T) {
	store, err := OpenBadger(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.Load(4)
	assert.True(t, errors.Is(err, ErrSlotNotFound))

	gw := NewGateway(store, nil)
	src := life.New(5, 5)
	glider(src)
	require.NoError(t, gw.Save(4, src))

	dst := life.New(5, 5)
	require.True(t, gw.Load(4, dst))
	assert.Equal(t, src.Pattern(), dst.Pattern())
}

func TestInvalidSlot(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.ErrorIs(t, store.Save(0, []byte("[]")), ErrInvalidSlot)
	_, err := store.Load(-1)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSlotFromPath(t *testing.T) {
	cases := map[string]int{
		"save_1.json":         1,
		"/tmp/x/save_12.json": 12,
		"save_0.json":         0,
		"save_1.json.swp":     0,
		"notes.txt":           0,
		"save_a.json":         0,
		"saves/save_003.json": 3,
	}
	for path, want := range cases {
		got, ok := SlotFromPath(path)
		assert.Equal(t, want != 0, ok, path)
		assert.Equal(t, want, got, path)
	}
}

func TestWatcherReportsExternalWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	w.Suppress(1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "save_1.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "save_5.json"), []byte("[]"), 0o644))

	select {
	case slot := <-w.Events():
		assert.Equal(t, 5, slot)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for externally written slot")
	}
}
