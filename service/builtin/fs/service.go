// Package fs implements the navigation and file-mutation builtins on top of
// the viant/afs abstract file storage.
package fs

import (
	"github.com/viant/afs"
	"github.com/webterm/webshell/model/types"
)

const name = "fs"

// Service provides file system builtins using viant/afs
type Service struct {
	fs afs.Service
}

// New creates a new fs builtin service
func New() *Service {
	return &Service{fs: afs.New()}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Commands returns the builtin command signatures
func (s *Service) Commands() types.Signatures {
	return types.Signatures{
		{Name: "pwd", Usage: "pwd", Description: "print the session working directory"},
		{Name: "cd", Usage: "cd [path]", Description: "change the session working directory"},
		{Name: "ls", Usage: "ls [path]", Description: "list directory entries sorted by name"},
		{Name: "mkdir", Usage: "mkdir <path>...", Description: "create directories"},
		{Name: "rm", Usage: "rm [-r] <path>...", Description: "remove files, directories with -r"},
		{Name: "cp", Usage: "cp [-f] <src> <dst>", Description: "copy a file or directory"},
		{Name: "mv", Usage: "mv [-f] <src> <dst>", Description: "move or rename a file or directory"},
		{Name: "cat", Usage: "cat <path>", Description: "print file contents"},
		{Name: "touch", Usage: "touch <path>", Description: "create an empty file"},
	}
}

// Command returns the executable for the specified command
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "pwd":
		return s.pwd, nil
	case "cd":
		return s.cd, nil
	case "ls":
		return s.list, nil
	case "mkdir":
		return s.mkdir, nil
	case "rm":
		return s.remove, nil
	case "cp":
		return s.copy, nil
	case "mv":
		return s.move, nil
	case "cat":
		return s.cat, nil
	case "touch":
		return s.touch, nil
	default:
		return nil, types.NewCommandNotFoundError(name)
	}
}
