package field

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/pattern"
)

// registry holds layouts, ordered by tag name.
type registry struct {
	sync.RWMutex
	layouts *treemap.Map
}

var globalRegistry = &registry{layouts: treemap.NewWithStringComparator()}

var catalogueOnce sync.Once

// loadCatalogue registers the generated layouts. It is called on first use
// of the registry.
func loadCatalogue() {
	catalogueOnce.Do(func() {
		for _, l := range catalogue() {
			if err := globalRegistry.register(l); err != nil {
				panic(fmt.Sprintf("catalogue is inconsistent: %v", err))
			}
		}
		T().Debugf("field catalogue has %d layouts", globalRegistry.layouts.Size())
	})
}

func (r *registry) register(l *swiftmt.Layout) error {
	if l == nil {
		return fmt.Errorf("%w: layout is nil", swiftmt.ErrInvalidArgument)
	}
	if err := l.Check(); err != nil {
		return err
	}
	r.Lock()
	defer r.Unlock()
	if _, found := r.layouts.Get(l.Name); found {
		return fmt.Errorf("%w: layout %s already registered", swiftmt.ErrInvalidArgument, l.Name)
	}
	r.layouts.Put(l.Name, l)
	return nil
}

// Register adds a layout to the catalogue. Layouts which are inconsistent or
// whose name is already taken are rejected with an error wrapping
// swiftmt.ErrInvalidArgument. A layout must not be modified after it has been
// registered.
func Register(l *swiftmt.Layout) error {
	loadCatalogue()
	return globalRegistry.register(l)
}

// Lookup returns the layout of a field type.
func Lookup(name string) (*swiftmt.Layout, bool) {
	loadCatalogue()
	globalRegistry.RLock()
	defer globalRegistry.RUnlock()
	l, found := globalRegistry.layouts.Get(name)
	if !found {
		return nil, false
	}
	return l.(*swiftmt.Layout), true
}

// Names returns the names of all registered field types in ascending order.
func Names() []string {
	loadCatalogue()
	globalRegistry.RLock()
	defer globalRegistry.RUnlock()
	keys := globalRegistry.layouts.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Lint checks the validator patterns of all registered layouts for
// well-formedness. It returns one error per malformed pattern.
func Lint() []error {
	var errs []error
	for _, name := range Names() {
		l, _ := Lookup(name)
		if err := pattern.Check(l.ValidatorPattern); err != nil {
			T().Errorf("field %s: %v", name, err)
			errs = append(errs, fmt.Errorf("field %s: %w", name, err))
		}
	}
	return errs
}
