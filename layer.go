package easel

import (
	"errors"
	"fmt"
)

// ErrLayerIndex is returned when a layer operation names an index
// outside the layer sequence.
var ErrLayerIndex = errors.New("easel: layer index out of range")

// Layer is an independently addressable raster surface. Exactly one
// layer is active for editing at a time; only the active layer is ever
// mutated by drawing operations. Layers are never deleted.
type Layer struct {
	id      int
	name    string
	buffer  *Pixmap
	visible bool
	opacity float64
	locked  bool
	history *history
}

// ID returns the layer's unique id.
func (l *Layer) ID() int { return l.id }

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// Visible reports whether composite export includes the layer.
func (l *Layer) Visible() bool { return l.visible }

// Opacity returns the layer's composite opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// Locked reports whether mutating gestures are ignored on the layer.
func (l *Layer) Locked() bool { return l.locked }

// Buffer returns the layer's raster content. Callers must treat it as
// read-only; all mutation goes through the engine command surface.
func (l *Layer) Buffer() *Pixmap { return l.buffer }

// LayerInfo is a value snapshot of layer metadata for chromes.
type LayerInfo struct {
	ID      int
	Name    string
	Visible bool
	Opacity float64
	Locked  bool
	Active  bool
}

// layerStore owns the ordered, append-only layer sequence and the
// active index.
type layerStore struct {
	layers []*Layer
	active int
	nextID int
	width  int
	height int
}

// newLayerStore creates a store holding one empty layer.
func newLayerStore(width, height int, maxHistory int) *layerStore {
	s := &layerStore{width: width, height: height}
	s.add(maxHistory)
	return s
}

// add appends a new empty layer with an auto-incremented display name.
// The active index is left unchanged by design; callers select the new
// layer explicitly if they want to draw on it.
func (s *layerStore) add(maxHistory int) *Layer {
	s.nextID++
	l := &Layer{
		id:      s.nextID,
		name:    fmt.Sprintf("Layer %d", s.nextID),
		buffer:  NewPixmap(s.width, s.height),
		visible: true,
		opacity: 1,
		history: newHistory(maxHistory),
	}
	s.layers = append(s.layers, l)
	return l
}

// selectLayer sets the active index.
func (s *layerStore) selectLayer(index int) error {
	if index < 0 || index >= len(s.layers) {
		return fmt.Errorf("easel: select layer %d of %d: %w", index, len(s.layers), ErrLayerIndex)
	}
	s.active = index
	return nil
}

// layer returns the layer at index.
func (s *layerStore) layer(index int) (*Layer, error) {
	if index < 0 || index >= len(s.layers) {
		return nil, fmt.Errorf("easel: layer %d of %d: %w", index, len(s.layers), ErrLayerIndex)
	}
	return s.layers[index], nil
}

// activeLayer returns the layer currently being edited.
func (s *layerStore) activeLayer() *Layer {
	return s.layers[s.active]
}

// count returns the number of layers.
func (s *layerStore) count() int {
	return len(s.layers)
}

// infos returns metadata snapshots for every layer in order.
func (s *layerStore) infos() []LayerInfo {
	out := make([]LayerInfo, len(s.layers))
	for i, l := range s.layers {
		out[i] = LayerInfo{
			ID:      l.id,
			Name:    l.name,
			Visible: l.visible,
			Opacity: l.opacity,
			Locked:  l.locked,
			Active:  i == s.active,
		}
	}
	return out
}
