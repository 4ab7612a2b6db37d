package types

// Service groups related builtin commands under a single name. Implementations
// resolve individual commands by name; the dispatcher never special-cases a
// concrete service type.
type Service interface {
	Name() string
	Commands() Signatures
	Command(name string) (Executable, error)
}
