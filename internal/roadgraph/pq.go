package roadgraph

// pqItem is a tentative distance for a vertex. order is the vertex insertion
// position, used to break distance ties deterministically.
type pqItem struct {
	vertex string
	order  int
	dist   float64
}

// priorityQueue implements heap.Interface as a min-heap on (dist, order).
type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].order < pq[j].order
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
