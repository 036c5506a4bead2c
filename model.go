package csspectrum

import (
	"fmt"
	"strings"
)

// Model is a component-addressed view of one Color in one model: get, set
// and mix operations by component name, independent of the format the color
// was parsed from. The view is cheap to construct and re-binds freely; all
// mutations go through the owning Color's single mutation boundary.
type Model struct {
	color *Color
	name  string
	conv  *ComponentConverter
}

// resolveModel maps a model identifier to the structured converter backing
// it. Opaque formats delegate to their declared backing model.
func (r *Registry) resolveModel(model string) (*ComponentConverter, error) {
	e, ok := r.lookup(model)
	if !ok {
		return nil, r.unsupported(model)
	}
	switch conv := e.conv.(type) {
	case *ComponentConverter:
		return conv, nil
	case *OpaqueConverter:
		backing, ok := r.lookup(conv.Model)
		if !ok {
			return nil, r.unsupported(conv.Model)
		}
		if cc, ok := backing.conv.(*ComponentConverter); ok {
			return cc, nil
		}
	}
	return nil, r.unsupported(model)
}

// In binds a component view of model to an implicit zero color (all
// components zero, alpha 1). This is the component-construction entry
// point: follow with Set or SetArray.
func (r *Registry) In(model string) (*Model, error) {
	conv, err := r.resolveModel(model)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(conv.Components))
	vals[len(vals)-1] = 1
	return &Model{color: newColor(r, conv.ToXYZ(vals)), name: model, conv: conv}, nil
}

// In binds a component view of model to this color.
func (c *Color) In(model string) (*Model, error) {
	conv, err := c.reg.resolveModel(model)
	if err != nil {
		return nil, err
	}
	return &Model{color: c, name: model, conv: conv}, nil
}

// Color returns the underlying handle, ending a chain.
func (m *Model) Color() *Color { return m.color }

func (m *Model) component(name string) (Component, error) {
	def, ok := m.conv.Components[strings.ToLower(name)]
	if !ok {
		return Component{}, fmt.Errorf("%w: model %q has no component %q", ErrInvalidArgument, m.name, name)
	}
	return def, nil
}

// GetArray derives the model's positional values from the interchange
// value, clamped to each component's range and rounded to its step. Loop
// components are clamped here, not wrapped; wraparound applies only at
// string serialization.
func (m *Model) GetArray() ([]float64, error) {
	raw := m.conv.FromXYZ(m.color.xyz)
	out := make([]float64, len(raw))
	for i, v := range raw {
		def, ok := m.conv.componentAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: array position %d", ErrMissingComponent, i)
		}
		out[i] = def.Round(def.Clamp(v))
	}
	return out, nil
}

// Get returns one component by name, with GetArray's clamping and rounding.
func (m *Model) Get(component string) (float64, error) {
	def, err := m.component(component)
	if err != nil {
		return 0, err
	}
	vals, err := m.GetArray()
	if err != nil {
		return 0, err
	}
	return vals[def.Index], nil
}

// GetComponents returns all components as a name-to-value map, alpha
// included.
func (m *Model) GetComponents() (map[string]float64, error) {
	vals, err := m.GetArray()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(vals))
	for name, def := range m.conv.Components {
		out[name] = vals[def.Index]
	}
	return out, nil
}

// sanitize maps non-finite entries onto their component bounds before the
// array reaches the converter, where an infinity times a matrix row would
// produce NaN on every channel.
func (m *Model) sanitize(raw []float64) {
	for i := range raw {
		if def, ok := m.conv.componentAt(i); ok {
			raw[i] = def.finite(raw[i])
		}
	}
}

// Set replaces the named components with new values, leaving unspecified
// components untouched. Finite values are written unclamped; range
// enforcement happens on read and at serialization. Returns the view for
// chaining.
func (m *Model) Set(values map[string]float64) (*Model, error) {
	raw := m.conv.FromXYZ(m.color.xyz)
	for name, v := range values {
		def, err := m.component(name)
		if err != nil {
			return nil, err
		}
		raw[def.Index] = v
	}
	m.sanitize(raw)
	m.color.setXYZ(m.conv.ToXYZ(raw))
	return m, nil
}

// SetFunc is Set with value-from-previous-value functions; each function
// receives the component's current value under Get semantics.
func (m *Model) SetFunc(values map[string]func(float64) float64) (*Model, error) {
	current, err := m.GetArray()
	if err != nil {
		return nil, err
	}
	raw := m.conv.FromXYZ(m.color.xyz)
	for name, fn := range values {
		def, err := m.component(name)
		if err != nil {
			return nil, err
		}
		raw[def.Index] = fn(current[def.Index])
	}
	m.sanitize(raw)
	m.color.setXYZ(m.conv.ToXYZ(raw))
	return m, nil
}

// SetArray replaces the whole positional array at once. vals may omit the
// trailing alpha, which is then preserved from the current value.
func (m *Model) SetArray(vals []float64) (*Model, error) {
	n := len(m.conv.Components)
	raw := m.conv.FromXYZ(m.color.xyz)
	switch len(vals) {
	case n:
		copy(raw, vals)
	case n - 1:
		copy(raw[:n-1], vals)
	default:
		return nil, fmt.Errorf("%w: model %q takes %d or %d values, got %d",
			ErrInvalidArgument, m.name, n-1, n, len(vals))
	}
	m.sanitize(raw)
	m.color.setXYZ(m.conv.ToXYZ(raw))
	return m, nil
}

// MixWith interpolates this color toward other by amount in [0,1], within
// this view's model. Loop components interpolate angularly using hueMethod
// (default "shorter"); everything else, alpha included, interpolates
// linearly. The receiver's color is mutated and the view returned.
func (m *Model) MixWith(other string, amount float64, hueMethod ...string) (*Model, error) {
	if amount < 0 || amount > 1 {
		return nil, fmt.Errorf("%w: mix amount %v outside [0,1]", ErrInvalidArgument, amount)
	}
	method := hueShorter
	if len(hueMethod) > 0 {
		method = hueMethod[0]
	}
	oc, err := m.color.reg.From(other)
	if err != nil {
		return nil, err
	}

	cur := m.conv.FromXYZ(m.color.xyz)
	oth := m.conv.FromXYZ(oc.xyz)
	mixed := make([]float64, len(cur))
	for i := range cur {
		def, ok := m.conv.componentAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: array position %d", ErrMissingComponent, i)
		}
		a, b := def.Clamp(cur[i]), def.Clamp(oth[i])
		if def.Loop {
			mixed[i], err = mixAngle(a-def.Min, b-def.Min, amount, def.Max-def.Min, method)
			if err != nil {
				return nil, err
			}
			mixed[i] += def.Min
		} else {
			mixed[i] = a*(1-amount) + b*amount
		}
	}
	m.color.setXYZ(m.conv.ToXYZ(mixed))
	return m, nil
}
