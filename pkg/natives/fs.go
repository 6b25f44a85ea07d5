/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package natives

import (
	"os"
	"os/exec"

	"github.com/flslang/fls/pkg/value"
	"github.com/flslang/fls/pkg/vm"
)

// registerFilesystem installs the filesystem natives, grounded on
// std/src/io.c. Every one of these stubs out its real effect during a
// preflight dry run and returns a value that can't itself cause the
// program's subsequent control flow to diverge from a real run in a way
// preflight cares about: reads report "not found" (nil/false), destructive
// writes report success without touching disk.
func registerFilesystem(v *vm.VM) {
	def(v, "readFile", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("readFile() takes one string argument (path).")
		}
		if v.Preflight() {
			return value.Nil, true
		}
		data, err := os.ReadFile(args[0].AsString().Chars)
		if err != nil {
			return value.Nil, true
		}
		return str(v, string(data)), true
	})

	def(v, "writeFile", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 || !args[0].IsString() || !args[1].IsString() {
			return fault("writeFile() takes two string arguments (path, content).")
		}
		if v.Preflight() {
			return value.Bool(true), true
		}
		err := os.WriteFile(args[0].AsString().Chars, []byte(args[1].AsString().Chars), 0644)
		return value.Bool(err == nil), true
	})

	def(v, "appendFile", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 || !args[0].IsString() || !args[1].IsString() {
			return fault("appendFile() takes two string arguments (path, content).")
		}
		if v.Preflight() {
			return value.Bool(true), true
		}
		f, err := os.OpenFile(args[0].AsString().Chars, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return value.Bool(false), true
		}
		defer f.Close()
		_, err = f.WriteString(args[1].AsString().Chars)
		return value.Bool(err == nil), true
	})

	def(v, "pathExists", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("pathExists() takes one string argument (path).")
		}
		if v.Preflight() {
			return value.Bool(false), true
		}
		_, err := os.Stat(args[0].AsString().Chars)
		return value.Bool(err == nil), true
	})

	def(v, "deleteFile", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("deleteFile() takes one string argument (path).")
		}
		if v.Preflight() {
			return value.Bool(true), true
		}
		return value.Bool(os.Remove(args[0].AsString().Chars) == nil), true
	})

	def(v, "rename", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 || !args[0].IsString() || !args[1].IsString() {
			return fault("rename() takes two string arguments (oldPath, newPath).")
		}
		if v.Preflight() {
			return value.Bool(true), true
		}
		return value.Bool(os.Rename(args[0].AsString().Chars, args[1].AsString().Chars) == nil), true
	})

	def(v, "fileSize", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("fileSize() takes one string argument (path).")
		}
		if v.Preflight() {
			return value.Nil, true
		}
		info, err := os.Stat(args[0].AsString().Chars)
		if err != nil {
			return value.Nil, true
		}
		return value.Number(float64(info.Size())), true
	})

	def(v, "isDir", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("isDir() takes one string argument (path).")
		}
		if v.Preflight() {
			return value.Bool(false), true
		}
		info, err := os.Stat(args[0].AsString().Chars)
		if err != nil {
			return value.Bool(false), true
		}
		return value.Bool(info.IsDir()), true
	})

	def(v, "isFile", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("isFile() expects one string argument.")
		}
		if v.Preflight() {
			return value.Bool(false), true
		}
		info, err := os.Stat(args[0].AsString().Chars)
		if err != nil {
			return value.Bool(false), true
		}
		return value.Bool(info.Mode().IsRegular()), true
	})

	def(v, "createDir", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("createDir() expects one string argument (path).")
		}
		if v.Preflight() {
			return value.Bool(true), true
		}
		return value.Bool(os.Mkdir(args[0].AsString().Chars, 0777) == nil), true
	})

	def(v, "removeDir", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("removeDir() takes one string argument (path).")
		}
		if v.Preflight() {
			return value.Bool(true), true
		}
		return value.Bool(os.Remove(args[0].AsString().Chars) == nil), true
	})

	// listDir: non-recursive directory listing, names only, matching the
	// walk() helper in src/vm.c (entries starting with "." and subdirectories
	// are both skipped, so only non-directory names are returned).
	def(v, "listDir", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("listDir() expects one string argument (directory path).")
		}
		list := v.NewList()
		if v.Preflight() {
			return value.FromObject(list), true
		}
		entries, err := os.ReadDir(args[0].AsString().Chars)
		if err != nil {
			return value.FromObject(list), true
		}
		for _, e := range entries {
			name := e.Name()
			if len(name) == 0 || name[0] == '.' || e.IsDir() {
				continue
			}
			list.Append(str(v, name))
			v.TrackGrowth(list, len(list.Items))
		}
		return value.FromObject(list), true
	})

	def(v, "system", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 || !args[0].IsString() {
			return fault("system() takes exactly 1 argument (%d given).", argc)
		}
		command := args[0].AsString().Chars
		if v.Preflight() {
			return str(v, ""), true
		}
		out, err := exec.Command("sh", "-c", command).CombinedOutput()
		if err != nil {
			if _, isExit := err.(*exec.ExitError); !isExit {
				return fault("Failed to execute command: %s", command)
			}
		}
		return str(v, string(out)), true
	})
}
