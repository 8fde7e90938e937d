package gridastar

// frontierItem is one pending expansion. The same point may have several
// items queued; only the one whose Cost matches the cost table is live.
type frontierItem struct {
	Point    Point
	Cost     int
	Priority float64
	seq      uint64
}

// frontier is a min-heap on Priority for container/heap. Equal priorities
// pop in insertion order.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].Priority != f[j].Priority {
		return f[i].Priority < f[j].Priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
