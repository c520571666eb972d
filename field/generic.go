package field

// IsGeneric is true for fields of generic layouts, i.e. layouts whose first
// component is a qualifier.
func (f *Field) IsGeneric() bool {
	return f.layout.Generic
}

// Qualifier returns component 1 of a generic field. For fields which are not
// generic it returns false.
func (f *Field) Qualifier() (string, bool) {
	if !f.layout.Generic {
		return "", false
	}
	return f.comps.Get(1)
}

// ConditionalQualifier returns the conditional qualifier of a generic field,
// if the layout defines one.
func (f *Field) ConditionalQualifier() (string, bool) {
	if f.layout.CondQualifier == 0 {
		return "", false
	}
	return f.comps.Get(f.layout.CondQualifier)
}

// DSS returns the data source scheme of a generic field. If the layout
// defines no DSS slot, the DSS is absent.
func (f *Field) DSS() (string, bool) {
	if f.layout.DSS == 0 {
		return "", false
	}
	return f.comps.Get(f.layout.DSS)
}

// IsDSSPresent checks if f carries a data source scheme.
func (f *Field) IsDSSPresent() bool {
	_, ok := f.DSS()
	return ok
}
