package tuning

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

// ScriptDirector implements sim.Director with a tengo script. The script
// receives the global `progress` (settled stack height over target height)
// and assigns `width_scale` and `interval_scale`; either left unset keeps
// the configured fixed value.
type ScriptDirector struct {
	name     string
	compiled *tengo.Compiled
}

// NewScriptDirector loads and compiles a director script by name
// (e.g. "director.tengo").
func NewScriptDirector(name string) (*ScriptDirector, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("tuning: load script %s: %w", name, err)
	}
	return compileDirector(name, src)
}

// NewScriptDirectorSource compiles a director from in-memory source.
func NewScriptDirectorSource(name string, src []byte) (*ScriptDirector, error) {
	return compileDirector(name, src)
}

func compileDirector(name string, src []byte) (*ScriptDirector, error) {
	script := tengo.NewScript(src)
	if err := script.Add("progress", 0.0); err != nil {
		return nil, fmt.Errorf("tuning: script %s: %w", name, err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tuning: compile script %s: %w", name, err)
	}
	return &ScriptDirector{name: name, compiled: compiled}, nil
}

// Next evaluates the script for the given progress.
func (d *ScriptDirector) Next(progress float64) (widthScale, intervalScale float64, err error) {
	widthScale, intervalScale = 1.0, 1.0
	if d == nil || d.compiled == nil {
		return widthScale, intervalScale, nil
	}

	c := d.compiled.Clone()
	if err := c.Set("progress", progress); err != nil {
		return 1, 1, fmt.Errorf("tuning: script %s: %w", d.name, err)
	}
	if err := c.Run(); err != nil {
		return 1, 1, fmt.Errorf("tuning: script %s: %w", d.name, err)
	}

	if v := c.Get("width_scale"); v != nil && !v.IsUndefined() {
		widthScale = v.Float()
	}
	if v := c.Get("interval_scale"); v != nil && !v.IsUndefined() {
		intervalScale = v.Float()
	}
	return widthScale, intervalScale, nil
}
