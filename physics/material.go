package physics

// Material tags a body or static plane so contact behavior can be looked up per pair.
type Material struct {
	Name string
}

// NewMaterial creates a named material.
func NewMaterial(name string) *Material {
	return &Material{Name: name}
}

// ContactMaterial defines how two materials respond when they touch.
type ContactMaterial struct {
	A, B *Material

	// Restitution is the fraction of normal speed kept after a bounce (0..1)
	Restitution float64

	// Friction is the Coulomb friction coefficient
	Friction float64
}

// DefaultContactMaterial is used when no pair has been registered.
var DefaultContactMaterial = ContactMaterial{
	Restitution: 0.0,
	Friction:    0.3,
}

// matches reports whether this contact material is for the pair a/b in either order.
func (c ContactMaterial) matches(a, b *Material) bool {
	return (c.A == a && c.B == b) || (c.A == b && c.B == a)
}
