/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ast

// A Node is a node in an FLS program's AST.
type Node interface {
	// Line returns the source line that produced this node.
	Line() int

	// Walk traverses the AST using the visitor v: calls v.Enter(n), visits
	// every subnode, then calls v.Leave(n).
	Walk(v Visitor)
}

// BaseNode carries the one thing every node needs: the source line it came
// from, for error messages.
type BaseNode struct {
	LineNumber int
}

func (n *BaseNode) Line() int { return n.LineNumber }
