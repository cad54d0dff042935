package pathfind

import "container/heap"

// pqItem is one entry of the Dijkstra/A* frontier: a walkable-node index
// paired with its current tentative distance (shortest-path cost for
// Dijkstra, cost+heuristic for A*).
type pqItem struct {
	index    int
	priority int64
	seq      int // insertion order, used to break priority ties deterministically
}

// priorityQueue is a binary min-heap over pqItem, ordered by priority
// then by insertion order. The insertion-order tiebreak matches the
// fixed neighbour emission order in constant.ManhattanOffsets /
// constant.AllSurroundingOffsets: nodes relaxed earlier settle first
// when costs tie.
type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// newPriorityQueue returns an empty, ready-to-use queue.
func newPriorityQueue() *priorityQueue {
	pq := priorityQueue{}
	heap.Init(&pq)
	return &pq
}

func (pq *priorityQueue) push(index int, priority int64, seq int) {
	heap.Push(pq, pqItem{index: index, priority: priority, seq: seq})
}

func (pq *priorityQueue) pop() pqItem {
	return heap.Pop(pq).(pqItem)
}

func (pq *priorityQueue) reset() {
	*pq = (*pq)[:0]
}
