package rtfmt

// argSource supplies argument values during a single render. The implicit
// cursor belongs to exactly one call; templates never carry argument
// state.
type argSource struct {
	positional []Value
	named      map[string]Value
	next       int
}

// nextImplicit returns the next positional argument and advances the
// cursor.
func (a *argSource) nextImplicit() (Value, bool) {
	if a.next >= len(a.positional) {
		return nil, false
	}
	v := a.positional[a.next]
	a.next++
	return v, true
}

// resolve maps a selector to a concrete value. pos locates the placeholder
// for error reporting. A nil entry in the argument list counts as missing.
func (a *argSource) resolve(sel Selector, pos int) (Value, error) {
	var (
		v  Value
		ok bool
	)
	switch sel.Kind {
	case SelectorIndex:
		if sel.Index >= 0 && sel.Index < len(a.positional) {
			v, ok = a.positional[sel.Index], true
		}
	case SelectorName:
		v, ok = a.named[sel.Name]
	default:
		v, ok = a.nextImplicit()
		if !ok {
			return nil, errExhausted(pos)
		}
	}
	if !ok || v == nil {
		return nil, errMissing(pos, sel)
	}
	return v, nil
}

// size resolves a width or precision directive. Indirect references never
// touch the implicit cursor; only the '*' form consumes from it.
func (a *argSource) size(s Size, pos int) (int, bool, error) {
	switch s.Kind {
	case SizeFixed:
		return s.Num, true, nil
	case SizeNext:
		v, ok := a.nextImplicit()
		if !ok {
			return 0, false, errExhausted(pos)
		}
		if v == nil {
			return 0, false, errMissing(pos, Selector{})
		}
		return sizeOf(v, Selector{}, pos)
	case SizeArg:
		v, err := a.resolve(s.Ref, pos)
		if err != nil {
			return 0, false, err
		}
		return sizeOf(v, s.Ref, pos)
	default:
		return 0, false, nil
	}
}

func sizeOf(v Value, sel Selector, pos int) (int, bool, error) {
	sz, ok := v.(Sizer)
	if !ok {
		return 0, false, errBadSize(pos, sel, v)
	}
	n, ok := sz.AsSize()
	if !ok {
		return 0, false, errBadSize(pos, sel, v)
	}
	return n, true, nil
}
