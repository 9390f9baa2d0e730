// ## Overview
// Package trie implements the node of a word trie (prefix tree) over a small fixed alphabet:
// the 26 lowercase letters, the hyphen and the apostrophe.
//
// Every node keeps a lazily allocated array of 28 child slots. The slot of a character
// is given by Slot, and it also defines the order of every traversal:
// 'a' < ... < 'z' < '-' < '\''. Walking the children in slot order therefore yields
// words in alphabet order without any sorting.
//
// ## Example usage:
//
//	root := trie.NewRoot()
//	node := root
//	for _, c := range "cat" {
//	    node, _ = node.AttachChild(c)
//	}
//	node.MarkEndWord() // true, the flag changed
//	node.MarkEndWord() // false, "cat" was already there
//
//	root.ForEachStepDown(nil, func(word []rune, n *trie.Node) {
//	    if n.IsEndWord() {
//	        fmt.Println(string(word)) // Output: cat
//	    }
//	}, nil)
//
// A node is not safe for concurrent mutation. Once no more children are attached,
// any number of goroutines may read and walk it.
package trie
