package pkg

import (
	"container/heap"
	"fmt"
)

// HuffmanNode is either a leaf carrying a symbol or an internal node with
// exactly two children. The weight of an internal node is the sum of its
// children's weights.
type HuffmanNode struct {
	Symbol byte
	Weight uint64
	Left   *HuffmanNode
	Right  *HuffmanNode
	seq    int // creation order
}

func (n *HuffmanNode) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// huffmanHeap orders nodes by weight, then leaves by symbol, then internal
// nodes (which sort after leaves of equal weight) by creation order.
type huffmanHeap []*HuffmanNode

func (h huffmanHeap) Len() int { return len(h) }
func (h huffmanHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
	if aLeaf && bLeaf {
		return a.Symbol < b.Symbol
	}
	if aLeaf != bLeaf {
		return aLeaf
	}
	return a.seq < b.seq
}
func (h huffmanHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *huffmanHeap) Push(x interface{}) {
	*h = append(*h, x.(*HuffmanNode))
}
func (h *huffmanHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[0 : n-1]
	return node
}

// BuildTree builds the Huffman tree for table. The merge order is fully
// deterministic, so the encoder and decoder always get the same tree from
// the same table. With a single entry the returned root is that leaf.
func BuildTree(table FrequencyTable) (*HuffmanNode, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no symbols to build a tree from", ErrEmptyInput)
	}

	h := make(huffmanHeap, 0, len(table))
	seq := 0
	for _, e := range table {
		h = append(h, &HuffmanNode{Symbol: e.Symbol, Weight: uint64(e.Count), seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*HuffmanNode)
		right := heap.Pop(&h).(*HuffmanNode)
		heap.Push(&h, &HuffmanNode{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			seq:    seq,
		})
		seq++
	}

	return heap.Pop(&h).(*HuffmanNode), nil
}
