// Package rbtree provides an ordered map from int keys to arbitrary values,
// implemented as an allocator-backed red-black tree.
package rbtree

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"math"
)

// Public definitions.

// Item is the object stored in each tree node.
type Item[V any] struct {
	Key   int
	Value V
}

// Allocator is the allocator for nodes in a Tree.
type Allocator[V any] struct {
	storage []node[V]
	gaps    map[uint32]bool
}

// NewAllocator creates a new allocator for Tree's nodes.
func NewAllocator[V any]() *Allocator[V] {
	return &Allocator[V]{
		storage: []node[V]{},
		gaps:    map[uint32]bool{},
	}
}

// Size returns the currently allocated size.
func (allocator *Allocator[V]) Size() int {
	return len(allocator.storage)
}

// Used returns the number of nodes contained in the allocator.
func (allocator *Allocator[V]) Used() int {
	return len(allocator.storage) - len(allocator.gaps)
}

// Clone copies an existing allocator. Node values are copied by assignment,
// so reference-typed values end up shared between both allocators.
func (allocator *Allocator[V]) Clone() *Allocator[V] {
	newAllocator := &Allocator[V]{
		storage: make([]node[V], len(allocator.storage), cap(allocator.storage)),
		gaps:    make(map[uint32]bool, len(allocator.gaps)),
	}
	copy(newAllocator.storage, allocator.storage)
	maps.Copy(newAllocator.gaps, allocator.gaps)

	return newAllocator
}

func (allocator *Allocator[V]) malloc() uint32 {
	if len(allocator.gaps) > 0 {
		var key uint32

		for key = range allocator.gaps {
			break
		}

		delete(allocator.gaps, key)

		return key
	}

	nodeLen := len(allocator.storage)
	if nodeLen == 0 {
		// Zero is reserved.
		allocator.storage = append(allocator.storage, node[V]{})
		nodeLen = 1
	}

	if nodeLen == negativeLimitNode-1 {
		// [math.MaxUint32] is reserved.
		panic("the size of the rbtree allocator has reached the maximum value for uint32")
	}

	allocator.storage = append(allocator.storage, node[V]{})

	return mustNodeIndex(nodeLen)
}

func (allocator *Allocator[V]) free(nodeIdx uint32) {
	if nodeIdx == 0 {
		panic("node #0 is special and cannot be deallocated")
	}

	_, exists := allocator.gaps[nodeIdx]
	doAssert(!exists)

	// Drop the value so that the allocator does not pin it.
	allocator.storage[nodeIdx] = node[V]{}
	allocator.gaps[nodeIdx] = true
}

// Tree is a red-black tree keyed by int with an API similar to C++ STL's map.
//
// Every tree owns its allocator; Clone* methods never share node storage
// between the original and the copy.
type Tree[V any] struct {
	// Nodes allocator.
	allocator *Allocator[V]

	// Root of the tree.
	root uint32

	// The minimum and maximum nodes under the tree.
	minNode, maxNode uint32

	// Number of nodes under root, including the root.
	count int
}

// New creates an empty tree with its own allocator.
func New[V any]() *Tree[V] {
	return NewTree(NewAllocator[V]())
}

// NewTree creates a new red-black binary tree on top of the given allocator.
func NewTree[V any](allocator *Allocator[V]) *Tree[V] {
	return &Tree[V]{allocator: allocator}
}

func (tree *Tree[V]) storage() []node[V] {
	return tree.allocator.storage
}

// Allocator returns the bound nodes allocator.
func (tree *Tree[V]) Allocator() *Allocator[V] {
	return tree.allocator
}

// Len returns the number of elements in the tree.
func (tree *Tree[V]) Len() int {
	return tree.count
}

// CloneShallow copies the tree structure into a cloned allocator. Values are
// assigned, not duplicated: pointers, slices and maps stored in the tree are
// shared with the copy.
func (tree *Tree[V]) CloneShallow() *Tree[V] {
	clone := *tree
	clone.allocator = tree.allocator.Clone()

	return &clone
}

// CloneDeep copies the tree into a fresh, compact allocator and passes every
// value through copyValue. A nil copyValue degrades to plain assignment.
func (tree *Tree[V]) CloneDeep(copyValue func(V) V) *Tree[V] {
	allocator := NewAllocator[V]()
	clone := &Tree[V]{count: tree.count, allocator: allocator}

	nodeMap := map[uint32]uint32{}
	originStorage := tree.storage()

	for iter := tree.Min(); !iter.Limit(); iter = iter.Next() {
		newNode := allocator.malloc()
		cloneNode := &allocator.storage[newNode]
		cloneNode.item = *iter.Item()

		if copyValue != nil {
			cloneNode.item.Value = copyValue(cloneNode.item.Value)
		}

		cloneNode.color = originStorage[iter.node].color
		nodeMap[iter.node] = newNode
	}

	cloneStorage := allocator.storage

	for iter := tree.Min(); !iter.Limit(); iter = iter.Next() {
		cloneNode := &cloneStorage[nodeMap[iter.node]]
		originNode := originStorage[iter.node]
		cloneNode.left = nodeMap[originNode.left]
		cloneNode.right = nodeMap[originNode.right]
		cloneNode.parent = nodeMap[originNode.parent]
	}

	clone.root = nodeMap[tree.root]
	clone.minNode = nodeMap[tree.minNode]
	clone.maxNode = nodeMap[tree.maxNode]

	return clone
}

// Erase removes all the nodes from the tree.
func (tree *Tree[V]) Erase() {
	nodes := make([]uint32, 0, tree.count)

	for iter := tree.Min(); !iter.Limit(); iter = iter.Next() {
		nodes = append(nodes, iter.node)
	}

	for _, nd := range nodes {
		tree.allocator.free(nd)
	}

	tree.root = 0
	tree.minNode = 0
	tree.maxNode = 0
	tree.count = 0
}

// Get looks up the value stored under key. The second result reports whether
// the key is present, independently of the stored value.
func (tree *Tree[V]) Get(key int) (V, bool) {
	nodeIdx, exact := tree.findGE(key)
	if exact {
		return tree.storage()[nodeIdx].item.Value, true
	}

	var zero V

	return zero, false
}

// Put inserts the value under key, overwriting the previous value if the key exists.
func (tree *Tree[V]) Put(key int, value V) {
	nodeIdx, exact := tree.findGE(key)
	if exact {
		tree.storage()[nodeIdx].item.Value = value

		return
	}

	tree.Insert(Item[V]{Key: key, Value: value})
}

// Min creates an iterator that points to the minimum item in the tree.
// If the tree is empty, returns Limit().
func (tree *Tree[V]) Min() Iterator[V] {
	return Iterator[V]{tree, tree.minNode}
}

// Max creates an iterator that points at the maximum item in the tree.
//
// If the tree is empty, returns NegativeLimit().
func (tree *Tree[V]) Max() Iterator[V] {
	if tree.maxNode == 0 {
		return Iterator[V]{tree, negativeLimitNode}
	}

	return Iterator[V]{tree, tree.maxNode}
}

// Limit creates an iterator that points beyond the maximum item in the tree.
func (tree *Tree[V]) Limit() Iterator[V] {
	return Iterator[V]{tree, 0}
}

// NegativeLimit creates an iterator that points before the minimum item in the tree.
func (tree *Tree[V]) NegativeLimit() Iterator[V] {
	return Iterator[V]{tree, negativeLimitNode}
}

// FindGE finds the smallest element N such that N >= Key, and returns the
// iterator pointing to the element. If no such element is found,
// returns tree.Limit().
func (tree *Tree[V]) FindGE(key int) Iterator[V] {
	nodeIdx, _ := tree.findGE(key)

	return Iterator[V]{tree, nodeIdx}
}

// FindLE finds the largest element N such that N <= Key, and returns the
// iterator pointing to the element. If no such element is found,
// returns iter.NegativeLimit().
func (tree *Tree[V]) FindLE(key int) Iterator[V] {
	nodeIdx, exact := tree.findGE(key)
	if exact {
		return Iterator[V]{tree, nodeIdx}
	}

	if nodeIdx != 0 {
		return Iterator[V]{tree, doPrev(nodeIdx, tree.storage())}
	}

	if tree.maxNode == 0 {
		return Iterator[V]{tree, negativeLimitNode}
	}

	return Iterator[V]{tree, tree.maxNode}
}

// Insert an item. If the item is already in the tree, do nothing and
// return false. Else return true.
//
//nolint:gocognit // RB-tree insertion with rebalancing is inherently complex.
func (tree *Tree[V]) Insert(item Item[V]) (bool, Iterator[V]) {
	// Delay creating n until it is found to be inserted.
	nodeIdx := tree.doInsert(item)
	if nodeIdx == 0 {
		return false, Iterator[V]{}
	}

	alloc := tree.storage()
	insN := nodeIdx

	alloc[nodeIdx].color = red

	for {
		// Case 1: N is at the root.
		if alloc[nodeIdx].parent == 0 {
			alloc[nodeIdx].color = black

			break
		}

		// Case 2: The parent is black, so the tree already
		// satisfies the RB properties.
		if alloc[alloc[nodeIdx].parent].color {
			break
		}

		// Case 3: parent and uncle are both red.
		// Then paint both black and make grandparent red.
		grandparent := alloc[alloc[nodeIdx].parent].parent

		var uncle uint32
		if isLeftChild(alloc[nodeIdx].parent, alloc) {
			uncle = alloc[grandparent].right
		} else {
			uncle = alloc[grandparent].left
		}

		if uncle != 0 && !alloc[uncle].color {
			alloc[alloc[nodeIdx].parent].color = black
			alloc[uncle].color = black
			alloc[grandparent].color = red
			nodeIdx = grandparent

			continue
		}

		// Case 4: parent is red, uncle is black (1).
		if isRightChild(nodeIdx, alloc) && isLeftChild(alloc[nodeIdx].parent, alloc) {
			tree.rotateLeft(alloc[nodeIdx].parent)
			nodeIdx = alloc[nodeIdx].left

			continue
		}

		if isLeftChild(nodeIdx, alloc) && isRightChild(alloc[nodeIdx].parent, alloc) {
			tree.rotateRight(alloc[nodeIdx].parent)
			nodeIdx = alloc[nodeIdx].right

			continue
		}

		// Case 5: parent is red, uncle is black (2).
		alloc[alloc[nodeIdx].parent].color = black
		alloc[grandparent].color = red

		if isLeftChild(nodeIdx, alloc) {
			tree.rotateRight(grandparent)
		} else {
			tree.rotateLeft(grandparent)
		}

		break
	}

	return true, Iterator[V]{tree, insN}
}

// Delete deletes the item with the given key. Returns true iff the item was found.
func (tree *Tree[V]) Delete(key int) bool {
	nodeIdx, exact := tree.findGE(key)
	if exact {
		tree.doDelete(nodeIdx)

		return true
	}

	return false
}

// DeleteWithIterator deletes the current item.
//
// REQUIRES: !iter.Limit() && !iter.NegativeLimit().
func (tree *Tree[V]) DeleteWithIterator(iter Iterator[V]) {
	doAssert(!iter.Limit() && !iter.NegativeLimit())
	tree.doDelete(iter.node)
}

// DeleteRange removes every item whose key lies in [lo, hi] and returns the
// number of removed items. Pass math.MinInt or math.MaxInt for an open side.
func (tree *Tree[V]) DeleteRange(lo, hi int) int {
	if lo > hi {
		return 0
	}

	var doomed []int

	for iter := tree.FindGE(lo); !iter.Limit(); iter = iter.Next() {
		key := iter.Item().Key
		if key > hi {
			break
		}

		doomed = append(doomed, key)
	}

	// Keys are collected first: deleting swaps node contents, which
	// invalidates live iterators.
	for _, key := range doomed {
		tree.Delete(key)
	}

	return len(doomed)
}

// Ascend yields every item in ascending key order.
func (tree *Tree[V]) Ascend() iter.Seq2[int, V] {
	return tree.walkForward(tree.Min())
}

// AscendFrom yields the items with keys >= key in ascending order.
func (tree *Tree[V]) AscendFrom(key int) iter.Seq2[int, V] {
	return tree.walkForward(tree.FindGE(key))
}

// Descend yields every item in descending key order.
func (tree *Tree[V]) Descend() iter.Seq2[int, V] {
	return tree.walkBackward(tree.Max())
}

// DescendFrom yields the items with keys <= key in descending order.
func (tree *Tree[V]) DescendFrom(key int) iter.Seq2[int, V] {
	return tree.walkBackward(tree.FindLE(key))
}

// PreOrder yields every item in tree pre-order: a node comes before its
// subtrees. Inserting the items into an empty tree in this order reproduces
// a similarly balanced shape.
func (tree *Tree[V]) PreOrder() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		if tree.root == 0 {
			return
		}

		alloc := tree.storage()
		stack := []uint32{tree.root}

		for len(stack) > 0 {
			nodeIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			nd := alloc[nodeIdx]
			if !yield(nd.item.Key, nd.item.Value) {
				return
			}

			if nd.right != 0 {
				stack = append(stack, nd.right)
			}

			if nd.left != 0 {
				stack = append(stack, nd.left)
			}
		}
	}
}

func (tree *Tree[V]) walkForward(start Iterator[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for it := start; !it.Limit(); it = it.Next() {
			item := it.Item()
			if !yield(item.Key, item.Value) {
				return
			}
		}
	}
}

func (tree *Tree[V]) walkBackward(start Iterator[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for it := start; !it.NegativeLimit(); it = it.Prev() {
			item := it.Item()
			if !yield(item.Key, item.Value) {
				return
			}
		}
	}
}

// Validate checks the red-black and ordering invariants and panics on the
// first violation. Useful in tests and when debugging corrupted trees.
func (tree *Tree[V]) Validate() {
	alloc := tree.storage()

	if tree.root == 0 {
		if tree.count != 0 || tree.minNode != 0 || tree.maxNode != 0 {
			panic("empty tree with dangling bookkeeping")
		}

		return
	}

	if alloc[tree.root].color != black {
		panic("the root must be black")
	}

	if alloc[tree.root].parent != 0 {
		panic("the root must not have a parent")
	}

	visited := 0
	tree.validateSubtree(tree.root, alloc, &visited)

	if visited != tree.count {
		panic(fmt.Sprintf("node count mismatch: %d visited, %d recorded", visited, tree.count))
	}

	prevKey := math.MinInt
	first := true

	for key := range tree.Ascend() {
		if !first && key <= prevKey {
			panic(fmt.Sprintf("keys are not strictly increasing: %d after %d", key, prevKey))
		}

		prevKey = key
		first = false
	}

	minKey, maxKey := alloc[tree.minNode].item.Key, alloc[tree.maxNode].item.Key
	if tree.minNode != leftmost(tree.root, alloc) || tree.maxNode != rightmost(tree.root, alloc) {
		panic(fmt.Sprintf("stale min/max nodes: %d/%d", minKey, maxKey))
	}
}

// validateSubtree returns the black height of the subtree.
func (tree *Tree[V]) validateSubtree(nodeIdx uint32, alloc []node[V], visited *int) int {
	if nodeIdx == 0 {
		return 1
	}

	*visited++

	nd := alloc[nodeIdx]

	if nd.color == red && (getColor(nd.left, alloc) == red || getColor(nd.right, alloc) == red) {
		panic(fmt.Sprintf("red node %d has a red child", nd.item.Key))
	}

	if nd.left != 0 && (alloc[nd.left].parent != nodeIdx || alloc[nd.left].item.Key >= nd.item.Key) {
		panic(fmt.Sprintf("broken left link under key %d", nd.item.Key))
	}

	if nd.right != 0 && (alloc[nd.right].parent != nodeIdx || alloc[nd.right].item.Key <= nd.item.Key) {
		panic(fmt.Sprintf("broken right link under key %d", nd.item.Key))
	}

	leftHeight := tree.validateSubtree(nd.left, alloc, visited)
	rightHeight := tree.validateSubtree(nd.right, alloc, visited)

	if leftHeight != rightHeight {
		panic(fmt.Sprintf("black height mismatch under key %d: %d != %d", nd.item.Key, leftHeight, rightHeight))
	}

	if nd.color == black {
		return leftHeight + 1
	}

	return leftHeight
}

// Iterator allows scanning tree elements in sort order.
//
// Iterator invalidation rule is the same as C++ std::map<>'s. That
// is, if you delete the element that an iterator points to, the
// iterator becomes invalid. For other operation types, the iterator
// remains valid.
type Iterator[V any] struct {
	tree *Tree[V]
	node uint32
}

// Equal checks for the underlying nodes equality.
func (iter Iterator[V]) Equal(other Iterator[V]) bool {
	return iter.node == other.node
}

// Limit checks if the iterator points beyond the max element in the tree.
func (iter Iterator[V]) Limit() bool {
	return iter.node == 0
}

// Min checks if the iterator points to the minimum element in the tree.
func (iter Iterator[V]) Min() bool {
	return iter.node == iter.tree.minNode
}

// Max checks if the iterator points to the maximum element in the tree.
func (iter Iterator[V]) Max() bool {
	return iter.node == iter.tree.maxNode
}

// NegativeLimit checks if the iterator points before the minimum element in the tree.
func (iter Iterator[V]) NegativeLimit() bool {
	return iter.node == negativeLimitNode
}

// Item returns the current element. Allows mutating the value in place;
// the key must not be changed.
//
// The result is nil if iter.Limit() || iter.NegativeLimit().
func (iter Iterator[V]) Item() *Item[V] {
	if iter.Limit() || iter.NegativeLimit() {
		return nil
	}

	return &iter.tree.storage()[iter.node].item
}

// Next creates a new iterator that points to the successor of the current element.
//
// REQUIRES: !iter.Limit().
func (iter Iterator[V]) Next() Iterator[V] {
	doAssert(!iter.Limit())

	if iter.NegativeLimit() {
		return Iterator[V]{iter.tree, iter.tree.minNode}
	}

	return Iterator[V]{iter.tree, doNext(iter.node, iter.tree.storage())}
}

// Prev creates a new iterator that points to the predecessor of the current
// node.
//
// REQUIRES: !iter.NegativeLimit().
func (iter Iterator[V]) Prev() Iterator[V] {
	doAssert(!iter.NegativeLimit())

	if !iter.Limit() {
		return Iterator[V]{iter.tree, doPrev(iter.node, iter.tree.storage())}
	}

	if iter.tree.maxNode == 0 {
		return Iterator[V]{iter.tree, negativeLimitNode}
	}

	return Iterator[V]{iter.tree, iter.tree.maxNode}
}

func doAssert(condition bool) {
	if !condition {
		panic("rbtree internal assertion failed")
	}
}

func mustNodeIndex(v int) uint32 {
	if v < 0 || v > math.MaxUint32 {
		panic("rbtree: node index out of uint32 bounds")
	}

	return uint32(v)
}

const (
	red               = false
	black             = true
	negativeLimitNode = math.MaxUint32
)

type node[V any] struct {
	item                Item[V]
	parent, left, right uint32
	color               bool // Black or red.
}

// Internal node attribute accessors.
func getColor[V any](nodeIdx uint32, allocator []node[V]) bool {
	if nodeIdx == 0 {
		return black
	}

	return allocator[nodeIdx].color
}

func isLeftChild[V any](nodeIdx uint32, allocator []node[V]) bool {
	return nodeIdx == allocator[allocator[nodeIdx].parent].left
}

func isRightChild[V any](nodeIdx uint32, allocator []node[V]) bool {
	return nodeIdx == allocator[allocator[nodeIdx].parent].right
}

func sibling[V any](nodeIdx uint32, allocator []node[V]) uint32 {
	doAssert(allocator[nodeIdx].parent != 0)

	if isLeftChild(nodeIdx, allocator) {
		return allocator[allocator[nodeIdx].parent].right
	}

	return allocator[allocator[nodeIdx].parent].left
}

func leftmost[V any](nodeIdx uint32, allocator []node[V]) uint32 {
	for allocator[nodeIdx].left != 0 {
		nodeIdx = allocator[nodeIdx].left
	}

	return nodeIdx
}

func rightmost[V any](nodeIdx uint32, allocator []node[V]) uint32 {
	for allocator[nodeIdx].right != 0 {
		nodeIdx = allocator[nodeIdx].right
	}

	return nodeIdx
}

// Return the minimum node that's larger than N. Return nil if no such
// node is found.
func doNext[V any](nodeIdx uint32, allocator []node[V]) uint32 {
	if allocator[nodeIdx].right != 0 {
		return leftmost(allocator[nodeIdx].right, allocator)
	}

	for nodeIdx != 0 {
		parentIdx := allocator[nodeIdx].parent
		if parentIdx == 0 {
			return 0
		}

		if isLeftChild(nodeIdx, allocator) {
			return parentIdx
		}

		nodeIdx = parentIdx
	}

	return 0
}

// Return the maximum node that's smaller than N. Return nil if no
// such node is found.
func doPrev[V any](nodeIdx uint32, allocator []node[V]) uint32 {
	if allocator[nodeIdx].left != 0 {
		return maxPredecessor(nodeIdx, allocator)
	}

	for nodeIdx != 0 {
		parentIdx := allocator[nodeIdx].parent
		if parentIdx == 0 {
			break
		}

		if isRightChild(nodeIdx, allocator) {
			return parentIdx
		}

		nodeIdx = parentIdx
	}

	return negativeLimitNode
}

// Return the predecessor of "n".
func maxPredecessor[V any](nodeIdx uint32, allocator []node[V]) uint32 {
	doAssert(allocator[nodeIdx].left != 0)

	return rightmost(allocator[nodeIdx].left, allocator)
}

// Private methods.

func (tree *Tree[V]) recomputeMinNode() {
	tree.minNode = 0

	if tree.root != 0 {
		tree.minNode = leftmost(tree.root, tree.storage())
	}
}

func (tree *Tree[V]) recomputeMaxNode() {
	tree.maxNode = 0

	if tree.root != 0 {
		tree.maxNode = rightmost(tree.root, tree.storage())
	}
}

func (tree *Tree[V]) maybeSetMinNode(nodeIdx uint32) {
	alloc := tree.storage()

	if tree.minNode == 0 {
		tree.minNode = nodeIdx
		tree.maxNode = nodeIdx
	} else if alloc[nodeIdx].item.Key < alloc[tree.minNode].item.Key {
		tree.minNode = nodeIdx
	}
}

func (tree *Tree[V]) maybeSetMaxNode(nodeIdx uint32) {
	alloc := tree.storage()

	if tree.maxNode == 0 {
		tree.minNode = nodeIdx
		tree.maxNode = nodeIdx
	} else if alloc[nodeIdx].item.Key > alloc[tree.maxNode].item.Key {
		tree.maxNode = nodeIdx
	}
}

// Try inserting "item" into the tree. Return nil if the item is
// already in the tree. Otherwise return a new (leaf) node.
func (tree *Tree[V]) doInsert(item Item[V]) uint32 {
	if tree.root == 0 {
		nodeIdx := tree.allocator.malloc()
		tree.storage()[nodeIdx].item = item
		tree.root = nodeIdx
		tree.minNode = nodeIdx
		tree.maxNode = nodeIdx
		tree.count++

		return nodeIdx
	}

	parent := tree.root
	storageSlice := tree.storage()

	for {
		parentNode := storageSlice[parent]

		switch cmp.Compare(item.Key, parentNode.item.Key) {
		case 0:
			return 0
		case -1:
			if parentNode.left == 0 {
				nodeIdx := tree.allocator.malloc()
				storageSlice = tree.storage()
				newNode := &storageSlice[nodeIdx]
				newNode.item = item
				newNode.parent = parent
				storageSlice[parent].left = nodeIdx
				tree.count++
				tree.maybeSetMinNode(nodeIdx)

				return nodeIdx
			}

			parent = parentNode.left
		default:
			if parentNode.right == 0 {
				nodeIdx := tree.allocator.malloc()
				storageSlice = tree.storage()
				newNode := &storageSlice[nodeIdx]
				newNode.item = item
				newNode.parent = parent
				storageSlice[parent].right = nodeIdx
				tree.count++
				tree.maybeSetMaxNode(nodeIdx)

				return nodeIdx
			}

			parent = parentNode.right
		}
	}
}

// Find a node whose item >= Key. The 2nd return Value is true iff the
// node.item==Key. Returns (nil, false) if all nodes in the tree are <
// Key.
func (tree *Tree[V]) findGE(key int) (uint32, bool) {
	alloc := tree.storage()
	nodeIdx := tree.root

	for {
		if nodeIdx == 0 {
			return 0, false
		}

		switch cmp.Compare(key, alloc[nodeIdx].item.Key) {
		case 0:
			return nodeIdx, true
		case -1:
			if alloc[nodeIdx].left == 0 {
				return nodeIdx, false
			}

			nodeIdx = alloc[nodeIdx].left
		default:
			if alloc[nodeIdx].right == 0 {
				succ := doNext(nodeIdx, alloc)
				if succ == 0 {
					return 0, false
				}

				return succ, key == alloc[succ].item.Key
			}

			nodeIdx = alloc[nodeIdx].right
		}
	}
}

// Delete N from the tree.
func (tree *Tree[V]) doDelete(nodeIdx uint32) {
	alloc := tree.storage()

	if alloc[nodeIdx].left != 0 && alloc[nodeIdx].right != 0 {
		pred := maxPredecessor(nodeIdx, alloc)
		tree.swapNodes(nodeIdx, pred)
	}

	doAssert(alloc[nodeIdx].left == 0 || alloc[nodeIdx].right == 0)

	child := alloc[nodeIdx].right
	if child == 0 {
		child = alloc[nodeIdx].left
	}

	if alloc[nodeIdx].color {
		alloc[nodeIdx].color = getColor(child, alloc)
		tree.deleteCase1(nodeIdx)
	}

	tree.replaceNode(nodeIdx, child)

	if alloc[nodeIdx].parent == 0 && child != 0 {
		alloc[child].color = black
	}

	tree.allocator.free(nodeIdx)
	tree.count--

	if tree.count == 0 {
		tree.minNode = 0
		tree.maxNode = 0
	} else {
		if tree.minNode == nodeIdx {
			tree.recomputeMinNode()
		}

		if tree.maxNode == nodeIdx {
			tree.recomputeMaxNode()
		}
	}
}

// Move n to the pred's place, and vice versa.
//
//nolint:gocognit,nestif // RB-tree node swapping is inherently complex with many pointer adjustments.
func (tree *Tree[V]) swapNodes(nodeIdx, pred uint32) {
	doAssert(pred != nodeIdx)

	alloc := tree.storage()
	isLeft := isLeftChild(pred, alloc)
	tmp := alloc[pred]

	tree.replaceNode(nodeIdx, pred)
	alloc[pred].color = alloc[nodeIdx].color

	if tmp.parent == nodeIdx {
		// Swap the positions of nodeIdx and pred.
		if isLeft {
			alloc[pred].left = nodeIdx
			alloc[pred].right = alloc[nodeIdx].right

			if alloc[pred].right != 0 {
				alloc[alloc[pred].right].parent = pred
			}
		} else {
			alloc[pred].left = alloc[nodeIdx].left

			if alloc[pred].left != 0 {
				alloc[alloc[pred].left].parent = pred
			}

			alloc[pred].right = nodeIdx
		}

		alloc[nodeIdx].item = tmp.item
		alloc[nodeIdx].parent = pred

		alloc[nodeIdx].left = tmp.left
		if alloc[nodeIdx].left != 0 {
			alloc[alloc[nodeIdx].left].parent = nodeIdx
		}

		alloc[nodeIdx].right = tmp.right
		if alloc[nodeIdx].right != 0 {
			alloc[alloc[nodeIdx].right].parent = nodeIdx
		}
	} else {
		alloc[pred].left = alloc[nodeIdx].left

		if alloc[pred].left != 0 {
			alloc[alloc[pred].left].parent = pred
		}

		alloc[pred].right = alloc[nodeIdx].right

		if alloc[pred].right != 0 {
			alloc[alloc[pred].right].parent = pred
		}

		if isLeft {
			alloc[tmp.parent].left = nodeIdx
		} else {
			alloc[tmp.parent].right = nodeIdx
		}

		alloc[nodeIdx].item = tmp.item
		alloc[nodeIdx].parent = tmp.parent
		alloc[nodeIdx].left = tmp.left

		if alloc[nodeIdx].left != 0 {
			alloc[alloc[nodeIdx].left].parent = nodeIdx
		}

		alloc[nodeIdx].right = tmp.right

		if alloc[nodeIdx].right != 0 {
			alloc[alloc[nodeIdx].right].parent = nodeIdx
		}
	}

	alloc[nodeIdx].color = tmp.color
}

func (tree *Tree[V]) deleteCase1(nodeIdx uint32) {
	alloc := tree.storage()

	for alloc[nodeIdx].parent != 0 {
		if !getColor(sibling(nodeIdx, alloc), alloc) {
			alloc[alloc[nodeIdx].parent].color = red
			alloc[sibling(nodeIdx, alloc)].color = black

			if nodeIdx == alloc[alloc[nodeIdx].parent].left {
				tree.rotateLeft(alloc[nodeIdx].parent)
			} else {
				tree.rotateRight(alloc[nodeIdx].parent)
			}
		}

		if getColor(alloc[nodeIdx].parent, alloc) &&
			getColor(sibling(nodeIdx, alloc), alloc) &&
			getColor(alloc[sibling(nodeIdx, alloc)].left, alloc) &&
			getColor(alloc[sibling(nodeIdx, alloc)].right, alloc) { //nolint:whitespace // conflicts with wsl_v5 leading-whitespace.
			alloc[sibling(nodeIdx, alloc)].color = red
			nodeIdx = alloc[nodeIdx].parent

			continue
		}

		// Case 4.
		if !getColor(alloc[nodeIdx].parent, alloc) &&
			getColor(sibling(nodeIdx, alloc), alloc) &&
			getColor(alloc[sibling(nodeIdx, alloc)].left, alloc) &&
			getColor(alloc[sibling(nodeIdx, alloc)].right, alloc) { //nolint:whitespace // conflicts with wsl_v5 leading-whitespace.
			alloc[sibling(nodeIdx, alloc)].color = red
			alloc[alloc[nodeIdx].parent].color = black
		} else {
			tree.deleteCase5(nodeIdx)
		}

		break
	}
}

func (tree *Tree[V]) deleteCase5(nodeIdx uint32) {
	alloc := tree.storage()

	if nodeIdx == alloc[alloc[nodeIdx].parent].left &&
		getColor(sibling(nodeIdx, alloc), alloc) &&
		!getColor(alloc[sibling(nodeIdx, alloc)].left, alloc) &&
		getColor(alloc[sibling(nodeIdx, alloc)].right, alloc) { //nolint:whitespace // conflicts with wsl_v5 leading-whitespace.
		alloc[sibling(nodeIdx, alloc)].color = red
		alloc[alloc[sibling(nodeIdx, alloc)].left].color = black
		tree.rotateRight(sibling(nodeIdx, alloc))
	} else if nodeIdx == alloc[alloc[nodeIdx].parent].right &&
		getColor(sibling(nodeIdx, alloc), alloc) &&
		!getColor(alloc[sibling(nodeIdx, alloc)].right, alloc) &&
		getColor(alloc[sibling(nodeIdx, alloc)].left, alloc) { //nolint:whitespace // conflicts with wsl_v5 leading-whitespace.
		alloc[sibling(nodeIdx, alloc)].color = red
		alloc[alloc[sibling(nodeIdx, alloc)].right].color = black
		tree.rotateLeft(sibling(nodeIdx, alloc))
	}

	// Case 6.
	alloc[sibling(nodeIdx, alloc)].color = getColor(alloc[nodeIdx].parent, alloc)
	alloc[alloc[nodeIdx].parent].color = black

	if nodeIdx == alloc[alloc[nodeIdx].parent].left {
		doAssert(!getColor(alloc[sibling(nodeIdx, alloc)].right, alloc))
		alloc[alloc[sibling(nodeIdx, alloc)].right].color = black
		tree.rotateLeft(alloc[nodeIdx].parent)
	} else {
		doAssert(!getColor(alloc[sibling(nodeIdx, alloc)].left, alloc))
		alloc[alloc[sibling(nodeIdx, alloc)].left].color = black
		tree.rotateRight(alloc[nodeIdx].parent)
	}
}

func (tree *Tree[V]) replaceNode(oldn, newn uint32) {
	alloc := tree.storage()

	if alloc[oldn].parent == 0 {
		tree.root = newn
	} else {
		if oldn == alloc[alloc[oldn].parent].left {
			alloc[alloc[oldn].parent].left = newn
		} else {
			alloc[alloc[oldn].parent].right = newn
		}
	}

	if newn != 0 {
		alloc[newn].parent = alloc[oldn].parent
	}
}

// rotateDirection performs a tree rotation in the specified direction.
// IsLeft=true performs left rotation, isLeft=false performs right rotation.
//
// Left rotation:
//
//	  X              Y
//	A   Y    =>    X   C
//	  B C        A B
//
// Right rotation:
//
//	    Y            X
//	  X   C  =>    A   Y
//	A B              B C
//
//nolint:dupword // ASCII art diagrams contain intentional repeated letters.
func (tree *Tree[V]) rotateDirection(pivot uint32, isLeft bool) {
	alloc := tree.storage()

	var child uint32
	if isLeft {
		child = alloc[pivot].right
	} else {
		child = alloc[pivot].left
	}

	// Move the inner subtree.
	var innerSubtree uint32
	if isLeft {
		innerSubtree = alloc[child].left
		alloc[pivot].right = innerSubtree
	} else {
		innerSubtree = alloc[child].right
		alloc[pivot].left = innerSubtree
	}

	if innerSubtree != 0 {
		alloc[innerSubtree].parent = pivot
	}

	alloc[child].parent = alloc[pivot].parent

	if alloc[pivot].parent == 0 {
		tree.root = child
	} else {
		if isLeftChild(pivot, alloc) {
			alloc[alloc[pivot].parent].left = child
		} else {
			alloc[alloc[pivot].parent].right = child
		}
	}

	if isLeft {
		alloc[child].left = pivot
	} else {
		alloc[child].right = pivot
	}

	alloc[pivot].parent = child
}

func (tree *Tree[V]) rotateLeft(nodeIdx uint32) {
	tree.rotateDirection(nodeIdx, true)
}

func (tree *Tree[V]) rotateRight(nodeIdx uint32) {
	tree.rotateDirection(nodeIdx, false)
}
