package csspectrum

import (
	"math/rand"
)

// Random generates a random color serialized in the given format or space.
// Structured targets draw each component uniformly from its declared range
// (opaque alpha); the named format picks a random table entry; other opaque
// formats serialize a random sRGB color.
func (r *Registry) Random(format string) (string, error) {
	e, ok := r.lookup(format)
	if !ok {
		return "", r.unsupported(format)
	}
	switch conv := e.conv.(type) {
	case *ComponentConverter:
		vals := make([]float64, len(conv.Components))
		for name, def := range conv.Components {
			if name == "alpha" {
				vals[def.Index] = 1
				continue
			}
			vals[def.Index] = def.Min + rand.Float64()*(def.Max-def.Min)
		}
		cleaned, err := cleanValues(conv, vals)
		if err != nil {
			return "", err
		}
		return conv.Serialize(cleaned, Options{}), nil
	case *OpaqueConverter:
		if e.name == "named" {
			return r.named.entries[rand.Intn(len(r.named.entries))].name, nil
		}
		c := srgbFractionsToXYZ(rand.Float64(), rand.Float64(), rand.Float64(), 1)
		return conv.FromXYZ(c)
	}
	return "", r.unsupported(format)
}
