package fs

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs/url"
	"github.com/webterm/webshell/model/types"
)

// entry is one rendered listing row.
type entry struct {
	name string
	kind string
	size int64
}

// list renders a sorted directory listing: name, type and size per entry.
func (s *Service) list(ctx context.Context, request *types.Request) (*types.Response, error) {
	target := ""
	if len(request.Args) > 0 {
		target = request.Args[0]
	}
	resolved := resolve(request.Cwd, target)

	if ok, _ := s.fs.Exists(ctx, resolved); !ok {
		return nil, types.NewNotFoundError(resolved)
	}
	objects, err := s.fs.List(ctx, resolved)
	if err != nil {
		return nil, types.NewNotFoundError(resolved)
	}

	entries := make([]entry, 0, len(objects))
	for _, object := range objects {
		// afs includes the listed directory itself as the first object
		if object.IsDir() && strings.TrimRight(url.Path(object.URL()), "/") == strings.TrimRight(resolved, "/") {
			continue
		}
		kind := "file"
		if object.IsDir() {
			kind = "dir"
		}
		entries = append(entries, entry{name: object.Name(), kind: kind, size: object.Size()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	builder := &strings.Builder{}
	for i, item := range entries {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(fmt.Sprintf("%-4s %10d  %s", item.kind, item.size, item.name))
	}
	return &types.Response{Text: builder.String()}, nil
}
