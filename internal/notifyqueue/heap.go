/**
 * CONTEXT:   container/heap backing for the priority queue - priority DESC, createdAt
 *            ASC within a priority tier, per spec section 4.8
 * INPUT:     *Item pointers owned by the Queue
 * OUTPUT:    heap.Interface implementation
 * CHANGE:    Initial implementation.
 * RISK:      Low - stdlib container/heap is the idiomatic answer here; no pack example
 *            wires an external priority-queue library
 */

package notifyqueue

import "container/heap"

type itemHeap []*Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority // priority DESC
	}
	return h[i].CreatedAt.Before(h[j].CreatedAt) // createdAt ASC
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) {
	*h = append(*h, x.(*Item))
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*itemHeap)(nil)
