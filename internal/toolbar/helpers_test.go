package toolbar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"modebar/internal/editor"
	"modebar/internal/locale"
	"modebar/internal/mode"
	"modebar/internal/preset"
)

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type layoutRecorder struct{ checks []string }

func (l *layoutRecorder) CheckOverflow(selector string) { l.checks = append(l.checks, selector) }

type classSet map[string]bool

func (c classSet) Classed(class string, on bool) {
	if on {
		c[class] = true
		return
	}
	delete(c, class)
}

// fixture is a coordinator mounted against a real editor host.
type fixture struct {
	host      *editor.Host
	coord     *Coordinator
	clock     *fakeClock
	layout    *layoutRecorder
	container classSet
	tr        *locale.Table
}

func newFixture(t *testing.T, opts editor.Options, favs ...preset.Favorite) *fixture {
	t.Helper()
	cat, err := preset.Default()
	require.NoError(t, err)
	tr := locale.English()
	host, err := editor.New(context.Background(), tr, editor.NewMemoryFavorites(favs...), opts, nil)
	require.NoError(t, err)

	f := &fixture{
		host:      host,
		clock:     newFakeClock(),
		layout:    &layoutRecorder{},
		container: classSet{},
		tr:        tr,
	}
	f.coord = NewCoordinator(Config{
		Host:       host,
		Catalog:    cat,
		Translator: tr,
		Icons:      preset.Icons{},
		Layout:     f.layout,
		Container:  f.container,
		Clock:      f.clock,
	})
	return f
}

func buttonIDs(buttons []Button) []string {
	ids := make([]string, len(buttons))
	for i, b := range buttons {
		ids[i] = b.Mode.ID
	}
	return ids
}

func notesOptions() editor.Options {
	opts := editor.DefaultOptions()
	opts.NotesEnabled = true
	return opts
}

var coffeePoint = preset.Favorite{PresetID: "shop/coffee", Geom: "point"}

const coffeePointID = "add-preset add-point add-preset-Coffee_Shop-point"

func builtinIDs() []string {
	return []string{mode.IDAddPoint, mode.IDAddLine, mode.IDAddArea}
}

// settle fires every debounce timer the coordinator arms, advancing the
// clock to each deadline.
func (f *fixture) settle() {
	for {
		dl, armed := f.coord.Deadline()
		if !armed {
			return
		}
		f.clock.now = dl
		f.coord.Expire(dl)
	}
}
