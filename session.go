package svgeom

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FillStyle describes how the interior of a shape is filled. A nil Rule uses Config.FillRule.
type FillStyle struct {
	Rule *FillRule
}

// Shape is a path to import with its presentation. A zero Transform is taken as the identity.
// Groups holds the transforms of the enclosing groups, outermost first, which apply after Transform.
// ClipPath is in the coordinates after transformation, its polygons are merged under nonzero.
type Shape struct {
	ID        string
	D         string
	Transform Matrix
	Groups    []Matrix
	Fill      *FillStyle
	Stroke    *StrokeStyle
	ClipPath  []Polygon
}

func (shape Shape) matrix() Matrix {
	stack := TransformStack{}
	for _, m := range shape.Groups {
		stack.Push(m)
	}
	if shape.Transform != (Matrix{}) {
		stack.Push(shape.Transform)
	}
	return stack.Top()
}

// Layer is the geometry produced for one shape.
type Layer struct {
	Index   int
	ShapeID string
	Fill    []Polygon
	Stroke  []Polygon
	Bounds  Bounds
	Stats   FlattenStats

	// Antialiasing is copied from the configuration, it only flags the layer for the renderer.
	Antialiasing bool

	// Overlaps holds the shape IDs of the earlier layers whose bounds intersect this layer.
	Overlaps []string
}

// Polygons returns the fill and stroke polygons.
func (l *Layer) Polygons() []Polygon {
	polygons := make([]Polygon, 0, len(l.Fill)+len(l.Stroke))
	polygons = append(polygons, l.Fill...)
	return append(polygons, l.Stroke...)
}

// Empty returns true if the layer has no geometry.
func (l *Layer) Empty() bool {
	return len(l.Fill) == 0 && len(l.Stroke) == 0
}

// Triangles tessellates the fill and stroke of the layer.
func (l *Layer) Triangles() ([]Triangle, error) {
	triangles, err := Tessellate(l.Fill, NonZero)
	if err != nil {
		return nil, fmt.Errorf("shape %s: fill: %w", l.ShapeID, err)
	}
	strokeTriangles, err := Tessellate(l.Stroke, NonZero)
	if err != nil {
		return nil, fmt.Errorf("shape %s: stroke: %w", l.ShapeID, err)
	}
	return append(triangles, strokeTriangles...), nil
}

////////////////////////////////////////////////////////////////

// Session accumulates the layers of one import and indexes their bounds. It is safe for concurrent use.
type Session struct {
	ID     uuid.UUID
	cfg    Config
	logger *slog.Logger

	mu     sync.Mutex
	layers []*Layer
	tree   *QuadTree[*Layer]
}

// NewSession returns an empty session for the configuration.
func NewSession(cfg Config) *Session {
	id := uuid.New()
	return &Session{
		ID:     id,
		cfg:    cfg,
		logger: Logger().With("session", id.String()),
		tree:   NewQuadTree[*Layer](cfg.Bounds(), cfg.QuadTreeCapacity),
	}
}

// Config returns the configuration of the session.
func (s *Session) Config() Config {
	return s.cfg
}

// ProcessShape builds the layer of the shape and adds it to the session.
func (s *Session) ProcessShape(shape Shape) (*Layer, error) {
	layer, err := s.buildLayer(shape)
	if err != nil {
		return nil, err
	}
	s.addLayer(layer)
	return layer, nil
}

// ProcessShapes builds the layers of the shapes in parallel, with at most Config.Workers at a time,
// and adds them to the session in the order of the shapes. No layer is added when any shape fails.
func (s *Session) ProcessShapes(ctx context.Context, shapes []Shape) ([]*Layer, error) {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	layers := make([]*Layer, len(shapes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, shape := range shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			layer, err := s.buildLayer(shape)
			if err != nil {
				return err
			}
			layers[i] = layer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, layer := range layers {
		s.addLayer(layer)
	}
	s.logger.Info("processed shapes", "shapes", len(shapes), "workers", workers)
	return layers, nil
}

func (s *Session) buildLayer(shape Shape) (*Layer, error) {
	path, err := ParseSVGPath(shape.D)
	if err != nil {
		return nil, fmt.Errorf("shape %s: %w", shape.ID, err)
	}
	subpaths, stats := Flatten(path, s.cfg)
	if 0 < stats.Truncated {
		s.logger.Debug("curve flattening truncated", "shape", shape.ID, "curves", stats.Truncated)
	}

	m := shape.matrix()

	layer := &Layer{
		ShapeID:      shape.ID,
		Stats:        stats,
		Antialiasing: s.cfg.Antialiasing,
	}
	if shape.Fill != nil {
		polygons := make([]Polygon, 0, len(subpaths))
		for _, subpath := range subpaths {
			polygons = append(polygons, PolygonFromSubpath(subpath).Transform(m))
		}
		fillRule := s.cfg.FillRule
		if shape.Fill.Rule != nil {
			fillRule = *shape.Fill.Rule
		}
		layer.Fill = SimplifyPolygons(polygons, fillRule)
	}
	if shape.Stroke != nil {
		for _, p := range Stroke(subpaths, *shape.Stroke, s.cfg.RoundQuality()) {
			layer.Stroke = append(layer.Stroke, p.Transform(m))
		}
	}
	if shape.ClipPath != nil {
		clip := MergePolygon(shape.ClipPath, NonZero)
		layer.Fill = ClipPolygon(layer.Fill, clip, NonZero)
		layer.Stroke = ClipPolygon(layer.Stroke, clip, NonZero)
	}
	layer.Bounds = PolygonsBounds(layer.Polygons())
	return layer, nil
}

func (s *Session) addLayer(layer *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer.Index = len(s.layers)
	s.layers = append(s.layers, layer)
	if layer.Empty() {
		return
	}
	for _, node := range sortedNodes(s.tree.Intersects(layer.Bounds)) {
		layer.Overlaps = append(layer.Overlaps, node.Data.ShapeID)
	}
	s.tree.Add(layer, layer.Bounds)
}

func sortedNodes(nodes []*QuadTreeNode[*Layer]) []*QuadTreeNode[*Layer] {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Data.Index < nodes[j].Data.Index
	})
	return nodes
}

// Layers returns the layers in the order they were added.
func (s *Session) Layers() []*Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Layer{}, s.layers...)
}

// Overlapping returns the layers whose bounds intersect b in the order they were added, or nil.
func (s *Session) Overlapping(b Bounds) []*Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var layers []*Layer
	for _, node := range sortedNodes(s.tree.Intersects(b)) {
		layers = append(layers, node.Data)
	}
	return layers
}

// Clear removes all layers, so that the session can be reused for another import.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = nil
	s.tree.Reset()
}
