// Package extension holds the registry mapping command names to builtin
// services. The mapping is closed: a name either resolves to a registered
// builtin or the dispatcher falls through to the external runner.
package extension

import (
	"sort"
	"sync"

	"github.com/webterm/webshell/model/types"
)

type binding struct {
	service    types.Service
	executable types.Executable
}

// Builtins provides builtin command lookup.
type Builtins struct {
	services map[string]types.Service
	commands map[string]*binding
	mux      sync.RWMutex
}

// Register adds a service and binds every command it exposes. A later
// registration of the same command name wins.
func (b *Builtins) Register(service types.Service) error {
	b.mux.Lock()
	defer b.mux.Unlock()

	b.services[service.Name()] = service
	for _, signature := range service.Commands() {
		executable, err := service.Command(signature.Name)
		if err != nil {
			return err
		}
		b.commands[signature.Name] = &binding{service: service, executable: executable}
	}
	return nil
}

// Lookup returns the executable bound to a command name.
func (b *Builtins) Lookup(command string) (types.Executable, bool) {
	b.mux.RLock()
	defer b.mux.RUnlock()
	bound, ok := b.commands[command]
	if !ok {
		return nil, false
	}
	return bound.executable, true
}

// Has reports whether a command name resolves to a builtin.
func (b *Builtins) Has(command string) bool {
	_, ok := b.Lookup(command)
	return ok
}

// Services returns registered services ordered by name.
func (b *Builtins) Services() []types.Service {
	b.mux.RLock()
	defer b.mux.RUnlock()
	result := make([]types.Service, 0, len(b.services))
	for _, service := range b.services {
		result = append(result, service)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// Signatures returns every bound command signature ordered by command name.
func (b *Builtins) Signatures() types.Signatures {
	b.mux.RLock()
	defer b.mux.RUnlock()
	result := make(types.Signatures, 0, len(b.commands))
	for name, bound := range b.commands {
		if signature := bound.service.Commands().Lookup(name); signature != nil {
			result = append(result, *signature)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// NewBuiltins creates a registry populated with the supplied services.
func NewBuiltins(services ...types.Service) (*Builtins, error) {
	result := &Builtins{
		services: make(map[string]types.Service),
		commands: make(map[string]*binding),
	}
	for _, service := range services {
		if err := result.Register(service); err != nil {
			return nil, err
		}
	}
	return result, nil
}
