package fs

import (
	"context"
	"fmt"

	"github.com/webterm/webshell/model/types"
)

// pwd prints the session working directory.
func (s *Service) pwd(ctx context.Context, request *types.Request) (*types.Response, error) {
	return &types.Response{Text: request.Cwd}, nil
}

// cd resolves the target and reports it back via NewCwd; the dispatcher is
// the only component that applies it to the session, so a failed cd leaves
// the working directory untouched.
func (s *Service) cd(ctx context.Context, request *types.Request) (*types.Response, error) {
	target := ""
	if len(request.Args) > 0 {
		target = request.Args[0]
	}
	resolved := resolve(request.Cwd, target)

	object, err := s.fs.Object(ctx, resolved)
	if err != nil || object == nil {
		return nil, types.NewNotFoundError(resolved)
	}
	if !object.IsDir() {
		return nil, types.NewNotADirectoryError(resolved)
	}
	return &types.Response{
		Text:   fmt.Sprintf("Changed directory to %s", resolved),
		NewCwd: resolved,
	}, nil
}
