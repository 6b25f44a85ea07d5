/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import "github.com/flslang/fls/pkg/value"

// Stack is the VM's operand stack: a single growable slice shared by every
// call frame. Each frame addresses its own slice of it through a StackView.
type Stack struct {
	data []value.Value
}

func (s *Stack) size() int { return len(s.data) }

func (s *Stack) top() value.Value { return s.data[len(s.data)-1] }

func (s *Stack) push(v value.Value) { s.data = append(s.data, v) }

func (s *Stack) pop() value.Value {
	top := s.top()
	s.data = s.data[:len(s.data)-1]
	return top
}

func (s *Stack) popN(n int) { s.data = s.data[:len(s.data)-n] }

func (s *Stack) peek(distance int) value.Value {
	return s.data[len(s.data)-1-distance]
}

func (s *Stack) at(index int) value.Value { return s.data[index] }

func (s *Stack) setAt(index int, v value.Value) { s.data[index] = v }

// createView creates a view into the stack starting offset elements below
// the current top -- used when pushing a call frame, so the callee
// addresses its own locals starting at slot 0 without the caller's stack
// contents shifting underneath it.
func (s *Stack) createView(offset int) *StackView {
	return &StackView{stack: s, base: s.size() - offset}
}

// StackView is a call frame's addressing window onto the shared Stack: slot
// 0 of the view is the function value itself (the reserved receiver slot),
// slots above that are parameters and locals.
type StackView struct {
	stack *Stack
	base  int
}

func (s *StackView) size() int          { return s.stack.size() - s.base }
func (s *StackView) top() value.Value   { return s.stack.top() }
func (s *StackView) push(v value.Value) { s.stack.push(v) }
func (s *StackView) pop() value.Value   { return s.stack.pop() }

func (s *StackView) peek(distance int) value.Value { return s.stack.peek(distance) }

func (s *StackView) at(index int) value.Value { return s.stack.at(s.base + index) }

func (s *StackView) setAt(index int, v value.Value) { s.stack.setAt(s.base+index, v) }

// truncate drops everything the view holds, including its base (receiver)
// slot -- used when a call returns, to discard the callee's function value,
// arguments, and locals in one shot.
func (s *StackView) truncate() {
	s.stack.data = s.stack.data[:s.base]
}
