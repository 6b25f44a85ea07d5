/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package ast holds the AST node definitions for FLS's tree-walk backend
// (pkg/walk): a secondary interpreter, used for `fls dev walk` and testing,
// that evaluates a program directly off its parse tree instead of compiling
// it to bytecode. It never sees import/export or the preflight profiler --
// those are pkg/compiler/pkg/vm concerns.
package ast
