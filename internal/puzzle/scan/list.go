package scan

// List parses one or more items separated by sep. When a separator matches
// but the following item does not, the cursor is rewound to before the
// separator and the items parsed so far are returned, so the caller can go on
// to match what comes next.
func List[T any](c *Cursor, sep string, item func(*Cursor) (T, error)) ([]T, error) {
	first, err := item(c)
	if err != nil {
		return nil, err
	}
	out := []T{first}
	for {
		mark := c.Mark()
		if !c.TryTag(sep) {
			return out, nil
		}
		v, err := item(c)
		if err != nil {
			c.Reset(mark)
			return out, nil
		}
		out = append(out, v)
	}
}

// Ints parses one or more integers separated by runs of blanks.
func Ints(c *Cursor) ([]int, error) {
	first, err := c.Int()
	if err != nil {
		return nil, err
	}
	out := []int{first}
	for {
		mark := c.Mark()
		if c.Spaces1() != nil {
			return out, nil
		}
		n, err := c.Int()
		if err != nil {
			c.Reset(mark)
			return out, nil
		}
		out = append(out, n)
	}
}

// All runs parse over the whole of src and requires it to consume everything.
func All[T any](src string, parse func(*Cursor) (T, error)) (T, error) {
	c := New(src)
	v, err := parse(c)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := c.End(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
