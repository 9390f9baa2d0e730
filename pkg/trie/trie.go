package trie

// Node is a single vertex of a word trie.
//
// A node is owned by its parent only, there are no back references.
// The children array is allocated the first time a child is attached,
// so leaves (the majority of nodes in a dictionary) stay small.
type Node struct {
	children *[AlphabetSize]*Node // Child slots indexed by Slot, nil until the first child is attached
	letter   rune                  // The character this node was reached by, zero for the root
	endWord  bool                  // True if a word ends exactly at this node
}

// NewNode creates a detached node reached by letter.
func NewNode(letter rune) *Node {
	return &Node{letter: letter}
}

// NewRoot creates a root node, its letter is unused.
func NewRoot() *Node {
	return &Node{}
}

// Letter returns the character this node was reached by.
func (n *Node) Letter() rune {
	return n.letter
}

// IsEndWord reports whether a word ends at this node.
func (n *Node) IsEndWord() bool {
	return n.endWord
}

// MarkEndWord flags the node as the end of a word.
// returns true only when the flag changed, false if it was already set.
func (n *Node) MarkEndWord() bool {
	if n.endWord {
		return false
	}
	n.endWord = true
	return true
}

// checks if the node has no children.
func (n *Node) IsLeaf() bool {
	if n.children == nil {
		return true
	}
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}

// returns the child reached by c, or nil.
// a character outside the alphabet never has a child.
func (n *Node) Child(c rune) *Node {
	slot, err := Slot(c)
	if err != nil {
		return nil
	}
	return n.ChildAt(slot)
}

// returns the child at the given slot, or nil
//
//	node.ChildAt(trie.HyphenSlot)
func (n *Node) ChildAt(slot int) *Node {
	if n == nil {
		panic("[BUG] ChildAt: node must not be nil")
	}
	if n.children == nil {
		return nil
	}
	return n.children[slot]
}

// AttachChild returns the child reached by c, creating it if it does not exist yet.
// Calling it twice with the same character returns the same node.
func (n *Node) AttachChild(c rune) (*Node, error) {
	slot, err := Slot(c)
	if err != nil {
		return nil, err
	}
	return n.AttachChildAt(slot), nil
}

// AttachChildAt is AttachChild for an already validated slot.
func (n *Node) AttachChildAt(slot int) *Node {
	if n.children == nil {
		n.children = new([AlphabetSize]*Node)
	}
	if n.children[slot] == nil {
		n.children[slot] = NewNode(Letter(slot))
	}
	return n.children[slot]
}

// applies a function to each non-nil child of the node, in ascending slot order.
// will return the original node n
func (n *Node) ForEachChild(f func(child *Node)) *Node {
	if n.children == nil {
		return n
	}
	for _, child := range n.children {
		if child != nil {
			f(child)
		}
	}
	return n
}

// Visitor is called with the word spelled from the walk's start node to node.
// The word slice is reused by the walk, copy it (e.g. string(word)) to keep it.
type Visitor func(word []rune, node *Node)

// StepFilter decides if a walk continues below node.
type StepFilter func(word []rune, node *Node) bool

// ForEachStepDown visits the node and all of its descendants depth first,
// children in ascending slot order, so words come out in alphabet order.
//
// prefix is the word that spells the path to n, it is the start of every visited word.
// while decides if the walk steps down into the children of a visited node,
// pass nil to walk the whole subtree.
//
// The walk uses an explicit stack, very long words do not grow the goroutine stack.
// will return the original node n
func (n *Node) ForEachStepDown(prefix []rune, f Visitor, while StepFilter) *Node {
	type frame struct {
		node *Node
		next int // next slot to look at
	}

	word := append(make([]rune, 0, len(prefix)+16), prefix...)
	f(word, n)

	if while != nil && !while(word, n) {
		return n
	}
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.node.children == nil || top.next >= AlphabetSize {
			// subtree done, backtrack
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				word = word[:len(word)-1]
			}
			continue
		}

		child := top.node.children[top.next]
		top.next++
		if child == nil {
			continue
		}

		word = append(word, child.letter)
		f(word, child)

		if while == nil || while(word, child) {
			stack = append(stack, frame{node: child})
		} else {
			word = word[:len(word)-1]
		}
	}

	return n
}
