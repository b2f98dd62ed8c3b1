package svgeom

// QuadTreeNode is an entry of the quadtree. It is owned by exactly one cell at a time.
type QuadTreeNode[T any] struct {
	Data   T
	Bounds Bounds
	cell   *QuadTreeCell[T]
}

// Cell returns the cell that holds the node, or nil if it was removed.
func (n *QuadTreeNode[T]) Cell() *QuadTreeCell[T] {
	return n.cell
}

// Remove detaches the node from its cell and prunes the cells that became empty.
func (n *QuadTreeNode[T]) Remove() {
	if n.cell == nil {
		return
	}
	cell := n.cell
	for i, node := range cell.nodes {
		if node == n {
			cell.nodes = append(cell.nodes[:i], cell.nodes[i+1:]...)
			break
		}
	}
	n.cell = nil
	cell.CleanUnusedCells()
}

// Quadrant indices of the children of a cell. Top is the half with the larger Y.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// QuadTreeCell is a square of the quadtree holding the nodes that fit in it but not in one of its
// quadrants. Children are created on demand when the cell is at capacity.
type QuadTreeCell[T any] struct {
	bounds      Bounds
	depth       int
	maxCapacity int
	parent      *QuadTreeCell[T]
	children    [4]*QuadTreeCell[T]
	nodes       []*QuadTreeNode[T]
}

func newQuadTreeCell[T any](bounds Bounds, depth, maxCapacity int, parent *QuadTreeCell[T]) *QuadTreeCell[T] {
	return &QuadTreeCell[T]{
		bounds:      bounds,
		depth:       depth,
		maxCapacity: maxCapacity,
		parent:      parent,
	}
}

// Bounds returns the area covered by the cell.
func (c *QuadTreeCell[T]) Bounds() Bounds { return c.bounds }

// Depth returns zero for the root and one more for each level below.
func (c *QuadTreeCell[T]) Depth() int { return c.depth }

// Parent returns nil for the root.
func (c *QuadTreeCell[T]) Parent() *QuadTreeCell[T] { return c.parent }

// Child returns the child at the quadrant index, or nil if it was not created.
func (c *QuadTreeCell[T]) Child(quadrant int) *QuadTreeCell[T] { return c.children[quadrant] }

// Nodes returns the nodes held by the cell itself.
func (c *QuadTreeCell[T]) Nodes() []*QuadTreeNode[T] { return c.nodes }

// Empty returns true if the cell holds no nodes and has no children.
func (c *QuadTreeCell[T]) Empty() bool {
	if 0 < len(c.nodes) {
		return false
	}
	for _, child := range c.children {
		if child != nil {
			return false
		}
	}
	return true
}

// quadrant returns the quadrant that holds b entirely, or -1 when b straddles a center line.
func (c *QuadTreeCell[T]) quadrant(b Bounds) int {
	center := c.bounds.Center()
	top := center.Y <= b.Min().Y
	bottom := b.Max().Y <= center.Y
	left := b.Max().X <= center.X
	right := center.X <= b.Min().X
	if top == bottom || left == right {
		return -1
	}
	if top {
		if left {
			return TopLeft
		}
		return TopRight
	}
	if left {
		return BottomLeft
	}
	return BottomRight
}

func (c *QuadTreeCell[T]) quadrantBounds(quadrant int) Bounds {
	min, center, max := c.bounds.Min(), c.bounds.Center(), c.bounds.Max()
	switch quadrant {
	case TopLeft:
		return NewBounds(Point{min.X, center.Y}, Point{center.X, max.Y})
	case TopRight:
		return NewBounds(center, max)
	case BottomLeft:
		return NewBounds(min, center)
	}
	return NewBounds(Point{center.X, min.Y}, Point{max.X, center.Y})
}

func (c *QuadTreeCell[T]) add(node *QuadTreeNode[T]) {
	if !c.bounds.ContainsBounds(node.Bounds) {
		// only happens at the root, the node is kept there
		Logger().Debug("quadtree insert outside of extent", "bounds", node.Bounds, "extent", c.bounds)
		c.insert(node)
		return
	}

	quadrant := c.quadrant(node.Bounds)
	if quadrant == -1 || len(c.nodes) < c.maxCapacity {
		c.insert(node)
		return
	}
	if c.children[quadrant] == nil {
		c.children[quadrant] = newQuadTreeCell(c.quadrantBounds(quadrant), c.depth+1, c.maxCapacity, c)
	}
	c.children[quadrant].add(node)
}

func (c *QuadTreeCell[T]) insert(node *QuadTreeNode[T]) {
	node.cell = c
	c.nodes = append(c.nodes, node)
}

// CleanUnusedCells detaches the cell from its parent when it is empty and continues with the parent.
// The root is never detached.
func (c *QuadTreeCell[T]) CleanUnusedCells() {
	for cell := c; cell.parent != nil && cell.Empty(); cell = cell.parent {
		for i, child := range cell.parent.children {
			if child == cell {
				cell.parent.children[i] = nil
				break
			}
		}
	}
}

func (c *QuadTreeCell[T]) containsPoint(p Point, result []*QuadTreeNode[T]) []*QuadTreeNode[T] {
	for _, node := range c.nodes {
		if node.Bounds.Contains(p) {
			result = append(result, node)
		}
	}
	for _, child := range c.children {
		if child != nil && child.bounds.Contains(p) {
			result = child.containsPoint(p, result)
		}
	}
	return result
}

func (c *QuadTreeCell[T]) containsBounds(b Bounds, result []*QuadTreeNode[T]) []*QuadTreeNode[T] {
	for _, node := range c.nodes {
		if node.Bounds.ContainsBounds(b) {
			result = append(result, node)
		}
	}
	for _, child := range c.children {
		if child != nil && child.bounds.ContainsBounds(b) {
			result = child.containsBounds(b, result)
		}
	}
	return result
}

func (c *QuadTreeCell[T]) intersects(b Bounds, result []*QuadTreeNode[T]) []*QuadTreeNode[T] {
	for _, node := range c.nodes {
		if node.Bounds.Intersects(b) {
			result = append(result, node)
		}
	}
	for _, child := range c.children {
		if child != nil && child.bounds.Intersects(b) {
			result = child.intersects(b, result)
		}
	}
	return result
}

////////////////////////////////////////////////////////////////

// QuadTree is a spatial index over bounds. Nodes are kept in the smallest cell whose quadrant holds
// them entirely, nodes that straddle a center line stay in the cell itself. It is not safe for
// concurrent use.
type QuadTree[T any] struct {
	root        *QuadTreeCell[T]
	bounds      Bounds
	maxCapacity int
}

// NewQuadTree returns an empty quadtree covering bounds. Cells hold up to maxCapacity nodes, which
// defaults to one, before children are created.
func NewQuadTree[T any](bounds Bounds, maxCapacity int) *QuadTree[T] {
	if maxCapacity <= 0 {
		maxCapacity = 1
	}
	return &QuadTree[T]{
		root:        newQuadTreeCell[T](bounds, 0, maxCapacity, nil),
		bounds:      bounds,
		maxCapacity: maxCapacity,
	}
}

// Root returns the root cell.
func (q *QuadTree[T]) Root() *QuadTreeCell[T] {
	return q.root
}

// Add inserts data with its bounds and returns its node. Bounds outside of the extent of the tree
// are kept in the root cell.
func (q *QuadTree[T]) Add(data T, bounds Bounds) *QuadTreeNode[T] {
	node := &QuadTreeNode[T]{Data: data, Bounds: bounds}
	q.root.add(node)
	return node
}

// Remove removes the node from the tree.
func (q *QuadTree[T]) Remove(node *QuadTreeNode[T]) {
	node.Remove()
}

// Contains returns the nodes whose bounds contain p, or nil if there are none.
func (q *QuadTree[T]) Contains(p Point) []*QuadTreeNode[T] {
	return q.root.containsPoint(p, nil)
}

// ContainsBounds returns the nodes whose bounds contain b, or nil if there are none.
func (q *QuadTree[T]) ContainsBounds(b Bounds) []*QuadTreeNode[T] {
	return q.root.containsBounds(b, nil)
}

// Intersects returns the nodes whose bounds intersect b, or nil if there are none.
func (q *QuadTree[T]) Intersects(b Bounds) []*QuadTreeNode[T] {
	return q.root.intersects(b, nil)
}

// Reset removes all nodes and cells.
func (q *QuadTree[T]) Reset() {
	q.root = newQuadTreeCell[T](q.bounds, 0, q.maxCapacity, nil)
}

// Walk calls f for every cell, parents before children. Returning false skips the children of the cell.
func (q *QuadTree[T]) Walk(f func(*QuadTreeCell[T]) bool) {
	var walk func(*QuadTreeCell[T])
	walk = func(c *QuadTreeCell[T]) {
		if !f(c) {
			return
		}
		for _, child := range c.children {
			if child != nil {
				walk(child)
			}
		}
	}
	walk(q.root)
}

// Len returns the number of nodes in the tree.
func (q *QuadTree[T]) Len() int {
	n := 0
	q.Walk(func(c *QuadTreeCell[T]) bool {
		n += len(c.nodes)
		return true
	})
	return n
}
