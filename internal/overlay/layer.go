package overlay

// Layer is the set of overlays on a page.
type Layer struct {
	positioners []*Positioner
}

// NewLayer groups positioners. Order is kept for rendering.
func NewLayer(ps ...*Positioner) *Layer {
	return &Layer{positioners: ps}
}

// Mount mounts every positioner.
func (l *Layer) Mount(env Env) {
	for _, p := range l.positioners {
		p.Mount(env)
	}
}

// Unmount unmounts every positioner.
func (l *Layer) Unmount() {
	for _, p := range l.positioners {
		p.Unmount()
	}
}

// Get returns the positioner called name.
func (l *Layer) Get(name string) (*Positioner, bool) {
	for _, p := range l.positioners {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Positioners returns the layer's positioners in order.
func (l *Layer) Positioners() []*Positioner {
	return append([]*Positioner(nil), l.positioners...)
}

// Visible returns the names of the overlays currently shown.
func (l *Layer) Visible() []string {
	var names []string
	for _, p := range l.positioners {
		if p.Visible() {
			names = append(names, p.Name())
		}
	}
	return names
}

// Views returns every overlay's render state.
func (l *Layer) Views() []View {
	views := make([]View, 0, len(l.positioners))
	for _, p := range l.positioners {
		views = append(views, p.View())
	}
	return views
}
