package designsystem

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/petal/internal/appearance"
	"github.com/opencode-ai/petal/internal/theme"
)

type countingApplier struct {
	calls  atomic.Int32
	mu     sync.Mutex
	tokens []theme.DesignTokens
}

func (a *countingApplier) Apply(tokens theme.DesignTokens) {
	a.calls.Add(1)
	a.mu.Lock()
	a.tokens = append(a.tokens, tokens)
	a.mu.Unlock()
}

func newTestRegistry(applier Applier) *Registry {
	return NewRegistry(WithAppearance(applier), WithLogger(zerolog.Nop()))
}

func namedTheme(i int) theme.Theme {
	presets := theme.AllPresets()
	th := presets[i%len(presets)].MakeTheme()
	th.Name = fmt.Sprintf("theme-%d", i)
	return th
}

func TestRegistryStartsUnconfigured(t *testing.T) {
	r := newTestRegistry(nil)

	if r.IsConfigured() {
		t.Fatal("new registry should be unconfigured")
	}
	if r.Theme() != theme.ClassicMono() {
		t.Errorf("initial theme = %q, want classic-mono", r.Theme().Name)
	}
}

func TestConfigureOnce(t *testing.T) {
	applier := &countingApplier{}
	r := newTestRegistry(applier)

	themeA := theme.EditorialGarden()
	themeB := theme.BotanicalLuxe()

	if !r.Configure(themeA) {
		t.Fatal("first Configure should succeed")
	}
	if r.Theme() != themeA {
		t.Fatalf("active theme = %q, want %q", r.Theme().Name, themeA.Name)
	}
	if r.Configure(themeB) {
		t.Fatal("second Configure should be ignored")
	}
	if r.Theme() != themeA {
		t.Errorf("active theme changed to %q after ignored Configure", r.Theme().Name)
	}
	if !r.IsConfigured() {
		t.Error("registry should report configured")
	}
	if got := applier.calls.Load(); got != 1 {
		t.Errorf("appearance applied %d times, want 1", got)
	}
	if applier.tokens[0] != themeA.Tokens {
		t.Error("appearance should receive the configured tokens")
	}
}

func TestConfigureWithDefaultsConsumesConfiguration(t *testing.T) {
	r := newTestRegistry(nil)

	if !r.ConfigureWithDefaults() {
		t.Fatal("ConfigureWithDefaults should succeed on a fresh registry")
	}
	if r.ConfigurePreset(theme.PresetPorcelainTech) {
		t.Fatal("ConfigurePreset after ConfigureWithDefaults should be ignored")
	}
	if r.Theme() != theme.ClassicMono() {
		t.Errorf("active theme = %q, want classic-mono", r.Theme().Name)
	}
}

func TestConfigureAcceptsAnyTheme(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*theme.Theme)
	}{
		{"ansi color", func(th *theme.Theme) { th.Tokens.Colors.Accent.Light = "205" }},
		{"short hex", func(th *theme.Theme) { th.Tokens.Colors.Accent.Dark = "#fff" }},
		{"named color", func(th *theme.Theme) { th.Tokens.Colors.Primary.Light = "blue" }},
		{"unnamed", func(th *theme.Theme) { th.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applier := &countingApplier{}
			r := newTestRegistry(applier)

			th := theme.CloudPetal()
			tt.mutate(&th)

			if !r.Configure(th) {
				t.Fatal("Configure() = false, want true")
			}
			if !r.IsConfigured() {
				t.Fatal("registry should be configured")
			}
			if r.Theme() != th {
				t.Errorf("active theme = %q, want the configured theme", r.Theme().Name)
			}
			if got := applier.calls.Load(); got != 1 {
				t.Errorf("appearance applied %d times, want 1", got)
			}
		})
	}
}

func TestDerivedAccessors(t *testing.T) {
	r := newTestRegistry(nil)
	th := theme.PorcelainTech()
	r.Configure(th)

	if r.Tokens() != th.Tokens {
		t.Error("Tokens mismatch")
	}
	if r.Colors() != th.Tokens.Colors {
		t.Error("Colors mismatch")
	}
	if r.Typography() != th.Tokens.Typography {
		t.Error("Typography mismatch")
	}
	if r.Spacing() != th.Tokens.Spacing {
		t.Error("Spacing mismatch")
	}
	if r.Layout() != th.Tokens.Layout {
		t.Error("Layout mismatch")
	}
}

func TestThemeReturnsCopy(t *testing.T) {
	r := newTestRegistry(nil)
	r.ConfigurePreset(theme.PresetBotanicalLuxe)

	th := r.Theme()
	th.Name = "mutated"
	th.Tokens.Colors.Primary.Light = "#000000"

	if r.Theme() != theme.BotanicalLuxe() {
		t.Error("mutating a returned theme must not affect the registry")
	}
}

func TestConcurrentConfigureRace(t *testing.T) {
	const workers = 32

	for run := 0; run < 20; run++ {
		applier := &countingApplier{}
		r := newTestRegistry(applier)

		themes := make([]theme.Theme, workers)
		for i := range themes {
			themes[i] = namedTheme(i)
		}

		var (
			wg       sync.WaitGroup
			start    = make(chan struct{})
			wins     atomic.Int32
			winnerID atomic.Int32
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				if r.Configure(themes[i]) {
					wins.Add(1)
					winnerID.Store(int32(i))
				}
			}(i)
		}
		close(start)
		wg.Wait()

		require.EqualValues(t, 1, wins.Load(), "exactly one Configure should win")
		require.True(t, r.IsConfigured())
		require.EqualValues(t, 1, applier.calls.Load(), "appearance should be applied once")
		require.Equal(t, themes[winnerID.Load()], r.Theme())
		require.Equal(t, themes[winnerID.Load()].Tokens, applier.tokens[0])
	}
}

func TestConcurrentReadDuringConfigure(t *testing.T) {
	r := newTestRegistry(nil)
	initial := r.Theme()
	configured := theme.EditorialGarden()

	const readers = 16
	var (
		wg        sync.WaitGroup
		stop      atomic.Bool
		torn      atomic.Int32
		sawConfig atomic.Bool
	)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				got := r.Theme()
				switch got {
				case initial:
				case configured:
					sawConfig.Store(true)
				default:
					torn.Add(1)
				}
			}
		}()
	}

	require.True(t, r.Configure(configured))
	require.Eventually(t, sawConfig.Load, time.Second, time.Millisecond)
	stop.Store(true)
	wg.Wait()

	require.Zero(t, torn.Load(), "readers observed a theme that was neither default nor configured")
	require.Equal(t, configured, r.Theme())
}

func TestConfigureAppliesOutsideLock(t *testing.T) {
	var r *Registry
	observed := make(chan theme.Theme, 1)
	r = newTestRegistry(ApplierFunc(func(tokens theme.DesignTokens) {
		// Reading back from the applier would deadlock if the lock were held.
		observed <- r.Theme()
	}))

	r.ConfigurePreset(theme.PresetDefault)

	select {
	case got := <-observed:
		if got != theme.CloudPetal() {
			t.Errorf("applier observed %q, want default", got.Name)
		}
	default:
		t.Fatal("applier was not invoked")
	}
}

func TestProcessRegistry(t *testing.T) {
	Default().reset()
	t.Cleanup(Default().reset)

	if IsConfigured() {
		t.Fatal("process registry should start unconfigured after reset")
	}
	if Current() != theme.ClassicMono() {
		t.Errorf("Current = %q, want classic-mono", Current().Name)
	}

	if !ConfigurePreset(theme.PresetEditorialGarden) {
		t.Fatal("ConfigurePreset should succeed")
	}
	if Configure(theme.BotanicalLuxe()) || ConfigureWithDefaults() {
		t.Fatal("repeat configuration should be ignored")
	}

	want := theme.EditorialGarden()
	if Current() != want || Tokens() != want.Tokens || Colors() != want.Tokens.Colors {
		t.Error("package accessors should reflect the configured theme")
	}
	if Typography() != want.Tokens.Typography || Spacing() != want.Tokens.Spacing || Layout() != want.Tokens.Layout {
		t.Error("package scale accessors should reflect the configured theme")
	}
	if appearance.Current().Tokens != want.Tokens {
		t.Error("process registry should install appearance styles")
	}
}
