package scripting

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

//go:embed rules/*.lua
var builtin embed.FS

// Engine wraps a single gopher-lua VM for the collision formulas.
// Single-goroutine access only (game loop). Every formula falls back to the
// built-in result if the script is missing it or fails.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine with the bundled rules, then loads every
// .lua file in dir on top so scripts can override any formula. An empty dir
// keeps the bundled rules only.
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	if err := e.loadBuiltin(); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load builtin rules: %w", err)
	}
	if dir != "" {
		if err := e.loadDir(dir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load rules %s: %w", dir, err)
		}
	}
	return e, nil
}

// NewEngineFromSource creates an engine from a single script, with no
// bundled rules underneath.
func NewEngineFromSource(src string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return &Engine{vm: vm, log: log}, nil
}

func (e *Engine) loadBuiltin() error {
	entries, err := builtin.ReadDir("rules")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		src, err := builtin.ReadFile("rules/" + entry.Name())
		if err != nil {
			return err
		}
		if err := e.vm.DoString(string(src)); err != nil {
			return fmt.Errorf("load %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// loadDir loads all .lua files in a directory in name order.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ShipDamage calls the Lua ship_damage function.
func (e *Engine) ShipDamage(asteroidHits int) int {
	return e.callIntFunc("ship_damage", asteroidHits, asteroidHits)
}

// LaserScore calls the Lua laser_score function.
func (e *Engine) LaserScore(asteroidHits int) int {
	return e.callIntFunc("laser_score", asteroidHits, asteroidHits)
}

// callIntFunc calls a Lua function with int args and returns an int result,
// or fallback if the call is impossible.
func (e *Engine) callIntFunc(name string, fallback int, args ...int) int {
	fn := e.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		e.log.Warn("lua function not found", zap.String("name", name))
		return fallback
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Warn("lua call error", zap.String("func", name), zap.Error(err))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Warn("lua function returned non-number", zap.String("func", name), zap.String("type", result.Type().String()))
		return fallback
	}
	return max(int(n), 0)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
