package sim

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// A position script defines a global function `position(t)` returning
// centimeters for t seconds. The dispatch line below is appended so the
// compiled program evaluates it once per run.
const positionDispatchScript = `
__out := position(__t)
`

// ScriptSource evaluates a tengo position script.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScript reads a script from disk, falling back to the embedded scripts
// by base name.
func LoadScript(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return ScriptsFS.ReadFile(cleanScriptPath(name))
}

// OpenScript loads and compiles a script by name.
func OpenScript(name string) (*ScriptSource, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("sim: load %s: %w", name, err)
	}
	return NewScriptSource(name, src)
}

func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	full := string(src) + "\n" + positionDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__t", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sim: compile %s: %w", name, err)
	}
	return &ScriptSource{name: name, compiled: compiled}, nil
}

func (s *ScriptSource) Name() string { return s.name }

func (s *ScriptSource) Position(t float64) (float64, error) {
	if s == nil || s.compiled == nil {
		return 0, fmt.Errorf("sim: nil script source")
	}
	if err := s.compiled.Set("__t", t); err != nil {
		return 0, fmt.Errorf("sim: %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("sim: %s: run: %w", s.name, err)
	}
	out := s.compiled.Get("__out")
	switch out.ValueType() {
	case "float", "int":
		return out.Float(), nil
	default:
		return 0, fmt.Errorf("sim: %s: position(t) returned %s, want a number", s.name, out.ValueType())
	}
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "scripts/"); idx >= 0 {
		s = s[idx+len("scripts/"):]
	} else {
		s = filepath.Base(s)
	}
	if filepath.Ext(s) == "" {
		s += ".tengo"
	}
	return "scripts/" + s
}
