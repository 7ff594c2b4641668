/*
Package isotree converts 2-3-4 trees into isometric red-black trees.

2-3-4 trees and red-black trees

A 2-3-4 tree is a balanced search tree where every node holds one to three
ordered items and, if it is not a leaf, exactly one child more than it has
items. All leaves of a 2-3-4 tree live at the same depth.

A red-black tree is a binary search tree where every node is colored red or
black, no red node has a red child, and every path from the root to an absent
leaf passes the same number of black nodes. Each 2-3-4 node maps to a small
cluster of binary nodes: a black node carrying the cluster's middle item
(or its first item, for a node of two items), with the remaining items of the
node attached as red children. Attaching the converted children of the 2-3-4
node below the cluster yields a red-black tree with the same in-order item
sequence as the 2-3-4 tree:

	         [ 3 | 7 ]                    3(B)
	        /    |    \                  /    \
	     [1]    [5]    [9]    ==>     1(B)    7(R)
	                                          /   \
	                                       5(B)   9(B)

Packages

Sub-package tree234 holds a small 2-3-4 tree implementation which serves as
the source of conversions. Sub-package rbtree holds the red-black node type,
the conversion and two helpers for color maintenance. Package treeview renders
both kinds of trees for debugging and package loader reads keys from text
files into 2-3-4 trees.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package isotree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the isotree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrVoidTree is flagged whenever an operation needs a non-empty tree.
const ErrVoidTree = TreeError("tree is void")
