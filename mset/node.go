package mset

import "cmp"
import "fmt"
import "io"
import "strings"

// avlnode defines a node in the AVL tree, one node per distinct key
// with an occurrence counter. Nodes exclusively own their subtrees.
type avlnode[T cmp.Ordered] struct {
	left   *avlnode[T]
	right  *avlnode[T]
	key    T
	count  uint64
	height int32  // leaf = 1
	size   uint64 // occurrences under this node, count included
}

func height[T cmp.Ordered](nd *avlnode[T]) int32 {
	if nd == nil {
		return 0
	}
	return nd.height
}

func subtreesize[T cmp.Ordered](nd *avlnode[T]) uint64 {
	if nd == nil {
		return 0
	}
	return nd.size
}

// left heavy positive, right heavy negative.
func (nd *avlnode[T]) balancefactor() int32 {
	return height(nd.left) - height(nd.right)
}

// recompute height and subtree size from children, called while
// walking back up the mutation path.
func (nd *avlnode[T]) reheight() {
	lh, rh := height(nd.left), height(nd.right)
	if lh > rh {
		nd.height = lh + 1
	} else {
		nd.height = rh + 1
	}
	nd.size = nd.count + subtreesize(nd.left) + subtreesize(nd.right)
}

//---- maintanence methods.

func (nd *avlnode[T]) repr() string {
	return fmt.Sprintf(
		"%v {count:%v,height:%v,size:%v}",
		nd.key, nd.count, nd.height, nd.size)
}

func (nd *avlnode[T]) pprint(prefix string) {
	if nd == nil {
		fmt.Printf("%v\n", nd)
		return
	}
	fmt.Printf("%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Printf("%vleft: ", prefix)
	nd.left.pprint(prefix)
	fmt.Printf("%vright: ", prefix)
	nd.right.pprint(prefix)
}

func (nd *avlnode[T]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	key := fmt.Sprintf("%v", nd.key)
	lines := []string{
		fmt.Sprintf("  %q [label=\"{%v|%v}\"];\n", key, key, nd.count),
	}
	fmsg := "  %q -> %q;\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, fmt.Sprintf("%v", nd.left.key))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, fmt.Sprintf("%v", nd.right.key))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}
