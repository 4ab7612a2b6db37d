package fs

import (
	"bytes"
	"context"

	"github.com/viant/afs/file"
	"github.com/webterm/webshell/model/types"
)

// cat prints the contents of a single file.
func (s *Service) cat(ctx context.Context, request *types.Request) (*types.Response, error) {
	if len(request.Args) == 0 {
		return nil, types.NewUsageError("cat <path>")
	}
	resolved := resolve(request.Cwd, request.Args[0])
	object, err := s.fs.Object(ctx, resolved)
	if err != nil || object == nil {
		return nil, types.NewNotFoundError(resolved)
	}
	if object.IsDir() {
		return nil, types.NewIsADirectoryError(resolved)
	}
	data, err := s.fs.DownloadWithURL(ctx, resolved)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	return &types.Response{Text: string(data)}, nil
}

// touch creates an empty file when the target does not exist yet; an existing
// target is left untouched.
func (s *Service) touch(ctx context.Context, request *types.Request) (*types.Response, error) {
	if len(request.Args) == 0 {
		return nil, types.NewUsageError("touch <path>")
	}
	resolved := resolve(request.Cwd, request.Args[0])
	if ok, _ := s.fs.Exists(ctx, resolved); ok {
		return &types.Response{}, nil
	}
	if err := s.fs.Upload(ctx, resolved, file.DefaultFileOsMode, bytes.NewReader(nil)); err != nil {
		return nil, types.NewNotFoundError(resolved)
	}
	return &types.Response{}, nil
}
