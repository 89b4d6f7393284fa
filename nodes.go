package postfix

import (
	"strconv"
	"strings"
)

// node is a node in the infix tree built alongside the value stack.
type node struct {
	kind nodeKind

	// name is the literal token text for nodeNum.
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal token

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// binop gives the node kind for an operator token.
func binop(text string) nodeKind {
	switch text {
	case "+":
		return nodeAdd
	case "-":
		return nodeSub
	case "*":
		return nodeMul
	case "/":
		return nodeDiv
	default:
		return nodeNone
	}
}

// op returns the operator symbol of a binary node.
func (k nodeKind) op() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	default:
		return ""
	}
}

// String formats the node fully parenthesized.
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the infix form of n. Binary nodes are wrapped in "( " and " )"
// unless top is set, which applies only to n itself and never to its
// children.
func (n *node) fmt(b *strings.Builder, top bool) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		if !top {
			b.WriteString("( ")
		}
		n.left.fmt(b, false)
		b.WriteByte(' ')
		b.WriteString(n.kind.op())
		b.WriteByte(' ')
		n.right.fmt(b, false)
		if !top {
			b.WriteString(" )")
		}
	default:
		panic("postfix: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
