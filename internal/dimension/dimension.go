// Package dimension holds the statically registered VECTA 12D dimension
// table. Every dimension is a named placeholder returning a fixed value;
// no measurement logic exists yet, and none is invented here. The earlier
// reflection-based loader that scanned files for dimension classes is
// gone: the roster below is the complete, explicit registry.
package dimension

// Dimension is one named axis of the 12-D profile.
type Dimension struct {
	Number int
	Name   string
	Weight float64
	Value  float64
}

// placeholder value shared by every dimension until real measurement
// logic exists.
const placeholderValue = 0.5

var registered = []Dimension{
	{1, "Intencionalidad Pura", 0.15, placeholderValue},
	{2, "Estructura Logica", 0.12, placeholderValue},
	{3, "Contexto Sistemico", 0.0833, placeholderValue},
	{4, "Temporalidad", 0.0833, placeholderValue},
	{5, "Escala de Impacto", 0.0833, placeholderValue},
	{6, "Complejidad Intrinseca", 0.0833, placeholderValue},
	{7, "Evolucion Potencial", 0.0833, placeholderValue},
	{8, "Simetria/Asimetria", 0.0833, placeholderValue},
	{9, "Informacion/Entropia", 0.0833, placeholderValue},
	{10, "Consciencia Reflexiva", 0.0833, placeholderValue},
	{11, "Integridad Etica", 0.0833, placeholderValue},
	{12, "Unificacion Holistica", 0.0833, placeholderValue},
}

// All returns the registered dimensions in order.
func All() []Dimension {
	out := make([]Dimension, len(registered))
	copy(out, registered)
	return out
}
