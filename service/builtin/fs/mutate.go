package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs/file"
	"github.com/webterm/webshell/model/types"
)

// mkdir creates directories non-recursively: the parent has to exist already.
func (s *Service) mkdir(ctx context.Context, request *types.Request) (*types.Response, error) {
	if len(request.Args) == 0 {
		return nil, types.NewUsageError("mkdir <path>...")
	}
	created := make([]string, 0, len(request.Args))
	for _, arg := range request.Args {
		resolved := resolve(request.Cwd, arg)
		parent := filepath.Dir(resolved)
		parentObject, err := s.fs.Object(ctx, parent)
		if err != nil || parentObject == nil || !parentObject.IsDir() {
			return nil, types.NewNotFoundError(parent)
		}
		if ok, _ := s.fs.Exists(ctx, resolved); ok {
			return nil, types.NewAlreadyExistsError(resolved)
		}
		if err := s.fs.Create(ctx, resolved, file.DefaultDirOsMode, true); err != nil {
			return nil, types.NewInternalError(err)
		}
		created = append(created, resolved)
	}
	return &types.Response{Text: fmt.Sprintf("Created %s", strings.Join(created, ", "))}, nil
}

// remove deletes files; directories require the explicit -r flag.
func (s *Service) remove(ctx context.Context, request *types.Request) (*types.Response, error) {
	flags, targets := splitFlags(request.Args)
	if len(targets) == 0 {
		return nil, types.NewUsageError("rm [-r] <path>...")
	}
	recursive := flags["r"]

	lines := make([]string, 0, len(targets))
	for _, arg := range targets {
		resolved := resolve(request.Cwd, arg)
		object, err := s.fs.Object(ctx, resolved)
		if err != nil || object == nil {
			return nil, types.NewNotFoundError(resolved)
		}
		if object.IsDir() {
			if !recursive {
				return nil, types.NewIsADirectoryError(resolved)
			}
			if err := s.fs.Delete(ctx, resolved); err != nil {
				return nil, types.NewInternalError(err)
			}
			lines = append(lines, fmt.Sprintf("Removed directory %s", resolved))
			continue
		}
		if err := s.fs.Delete(ctx, resolved); err != nil {
			return nil, types.NewInternalError(err)
		}
		lines = append(lines, fmt.Sprintf("Removed file %s", resolved))
	}
	return &types.Response{Text: strings.Join(lines, "\n")}, nil
}

// copy duplicates a file or directory tree; an existing destination fails
// unless -f is given, in which case the transfer overwrites it in place.
func (s *Service) copy(ctx context.Context, request *types.Request) (*types.Response, error) {
	src, dst, err := s.transferArgs(ctx, request, "cp [-f] <src> <dst>")
	if err != nil {
		return nil, err
	}
	if err := s.fs.Copy(ctx, src, dst); err != nil {
		return nil, types.NewInternalError(err)
	}
	return &types.Response{Text: fmt.Sprintf("Copied %s to %s", src, dst)}, nil
}

// move renames a file or directory; an existing destination fails unless -f
// is given, in which case the transfer overwrites it in place.
func (s *Service) move(ctx context.Context, request *types.Request) (*types.Response, error) {
	src, dst, err := s.transferArgs(ctx, request, "mv [-f] <src> <dst>")
	if err != nil {
		return nil, err
	}
	if err := s.fs.Move(ctx, src, dst); err != nil {
		return nil, types.NewInternalError(err)
	}
	return &types.Response{Text: fmt.Sprintf("Moved %s to %s", src, dst)}, nil
}

// transferArgs validates the shared cp/mv contract: source must exist, the
// destination must not unless the force flag was given. The destination is
// never deleted up front; on a failed transfer it keeps its previous content.
func (s *Service) transferArgs(ctx context.Context, request *types.Request, usage string) (src, dst string, err error) {
	flags, positional := splitFlags(request.Args)
	if len(positional) != 2 {
		return "", "", types.NewUsageError(usage)
	}
	src = resolve(request.Cwd, positional[0])
	dst = resolve(request.Cwd, positional[1])

	if ok, _ := s.fs.Exists(ctx, src); !ok {
		return "", "", types.NewNotFoundError(src)
	}
	if !flags["f"] {
		if ok, _ := s.fs.Exists(ctx, dst); ok {
			return "", "", types.NewAlreadyExistsError(dst)
		}
	}
	return src, dst, nil
}
