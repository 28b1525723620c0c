// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package fileutil helps decide which files a tool built on the parser
// should feed to it, also known as finding the shell scripts.
package fileutil

import (
	"io/fs"
	"regexp"
	"strings"
)

var (
	shebangRe = regexp.MustCompile(`^#!\s?/(usr/)?bin/(env\s+)?(sh|bash)\s`)
	extRe     = regexp.MustCompile(`\.(sh|bash)$`)
)

// HasShebang reports whether bs begins with a valid sh or bash
// shebang. It supports variations with /usr and env.
func HasShebang(bs []byte) bool {
	return shebangRe.Match(bs)
}

// ScriptConfidence defines how likely a file is to be a shell script,
// from complete certainty that it is not one to complete certainty
// that it is one.
type ScriptConfidence int

const (
	// ConfNotScript describes files which are definitely not shell
	// scripts, such as non-regular files or files with a non-shell
	// extension.
	ConfNotScript ScriptConfidence = iota

	// ConfIfShebang describes files which might be shell scripts,
	// depending on the shebang line in their contents. Since
	// CouldBeScript only has the directory entry to go by, the
	// answer in this case can't be final.
	ConfIfShebang

	// ConfIsScript describes files which are definitely shell
	// scripts: regular files with a valid shell extension.
	ConfIsScript
)

// CouldBeScript reports how likely a directory entry is to be a shell
// script. It discards directories, symlinks, hidden files, and files
// with a non-shell extension.
func CouldBeScript(entry fs.DirEntry) ScriptConfidence {
	name := entry.Name()
	switch {
	case entry.IsDir(), name[0] == '.':
		return ConfNotScript
	case entry.Type()&fs.ModeSymlink != 0:
		return ConfNotScript
	case extRe.MatchString(name):
		return ConfIsScript
	case strings.IndexByte(name, '.') > 0:
		return ConfNotScript // different extension
	case len(name) < 255:
		return ConfIfShebang // no extension, might have a shebang
	}
	return ConfNotScript
}
