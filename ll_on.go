//go:build chrono_debug

package chrono

/*
loglevels is a shared bitset of enabled [EventType] values.
*/
type loglevels struct {
	v *uint16
}

func newLoglevels() loglevels { return loglevels{v: new(uint16)} }

/*
enabled returns the names of the enabled levels.
*/
func (r loglevels) enabled() (names []string) {
	switch r.Int() {
	case 0:
		return []string{"none"}
	case r.Max():
		return []string{"all"}
	}
	for i := 0; i < 16; i++ {
		if bit := 1 << i; r.positive(bit) {
			if name, ok := eventNames[bit]; ok {
				names = append(names, name)
			}
		}
	}
	return
}

func (r loglevels) Int() (i int) {
	if r.v != nil {
		i = int(*r.v)
	}
	return
}

/*
Shift enables each of x, given as an int, an [EventType] or a level name.
*/
func (r *loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.levelOf(xi); ok && r.v != nil {
			*r.v |= uint16(X)
		}
	}
	return *r
}

/*
Unshift disables each of x. See [loglevels.Shift].
*/
func (r *loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.levelOf(xi); ok && r.v != nil {
			*r.v &^= uint16(X)
		}
	}
	return *r
}

func (r loglevels) Positive(x any) bool {
	X, ok := r.levelOf(x)
	return ok && r.positive(X)
}

func (r loglevels) positive(x int) bool {
	return r.v != nil && (*r.v)&uint16(x) != 0
}

func (r loglevels) Max() int { return int(^uint16(0)) }

func (r loglevels) levelOf(x any) (int, bool) {
	var X int
	switch tv := x.(type) {
	case int:
		X = tv
	case EventType:
		X = int(tv)
	case uint16:
		X = int(tv)
	case string:
		X = -1
		for k, v := range eventNames {
			if streqf(v, trimS(tv)) {
				X = k
				break
			}
		}
	default:
		return 0, false
	}
	return X, X >= 0 && X <= r.Max()
}
