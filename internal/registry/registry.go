// Package registry provides a registry of playable modes.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/storage"
)

// Game is the interface the platform drives.
// Games contain pure logic with no terminal dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, dialogs and rendering.
type Game interface {
	// ID returns the mode identifier (e.g. "normal", "hard").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the game from scratch.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt of wall-clock time.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Dialog returns the open dialog, if any.
	Dialog() (core.Dialog, bool)

	// Submit answers the open dialog with typed text (ignored by
	// dialogs without input). An error leaves the dialog open.
	Submit(text string) error

	// Dismiss closes a dialog that can be cancelled.
	Dismiss()

	// Finish ends the current run, recording it with the given reason.
	Finish(reason string)
}

// RunRecorder persists finished runs.
type RunRecorder interface {
	SaveRun(r storage.Run) (storage.Run, error)
}

// Env carries what a factory needs to build a game.
type Env struct {
	Config   config.GoldDiggerConfig
	Logger   *log.Logger
	Recorder RunRecorder // May be nil
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
	Order       int
}

// Factory is a function that creates a new game for a mode.
type Factory func(env Env) Game

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from a game's init() function.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	modes[info.ID] = entry{info: info, factory: f}
}

// List returns all registered modes, sorted by Order then ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, e := range modes {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game for the given mode.
// Returns an error if the mode is not registered.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	return e.factory(env), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
