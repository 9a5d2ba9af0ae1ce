package terminfo

// decodeExtended parses the ncurses extended capability section that
// trails the basic terminfo layout, merging its booleans, numbers and
// strings into e's existing maps under their user-defined names.
//
// The extended string-offsets array is the one load-bearing quirk in this
// format: the header's nStr field only counts the offsets ncurses
// considered "present" when the file was written, not the true length of
// the array. The remainder are absent (negative) offsets that were never
// counted. The only way to know how many of those trail the counted ones
// is to read nStr offsets, see how many came back negative, read that
// many more, and repeat until a batch comes back clean. Stop early and
// the rest of the array is read as garbage: names end up attached to the
// wrong values, values end up pointing at the wrong bytes in the table.
func decodeExtended(d *cursor, width int, e *Entry) error {
	eh, err := d.extHeader()
	if err != nil {
		return err
	}

	boolVals, err := d.block(int(eh.nCapBool))
	if err != nil {
		return FormatError{"extended booleans", "short read"}
	}

	numVals := make([]int, int(eh.nCapNum))
	for i := range numVals {
		v, err := d.num(width)
		if err != nil {
			return FormatError{"extended numbers", "short read"}
		}
		numVals[i] = v
	}

	offsets, err := readExtOffsets(d, int(eh.nStr))
	if err != nil {
		return err
	}

	table, err := d.block(int(eh.sizeStrTab))
	if err != nil {
		return FormatError{"extended string table", "short read"}
	}

	nCapStr := int(eh.nCapStr)
	if len(offsets) < nCapStr {
		return FormatError{"extended strings", "offset table too short for values"}
	}
	valueOffsets := offsets[:nCapStr]
	nameOffsets := offsets[nCapStr:]

	nNames := int(eh.nCapBool) + int(eh.nCapNum) + nCapStr
	if len(nameOffsets) < nNames {
		return FormatError{"extended names", "offset table too short for names"}
	}
	nameOffsets = nameOffsets[:nNames]

	values := make([][]byte, nCapStr)
	present := make([]bool, nCapStr)
	capsEnd := 0
	for i, off := range valueOffsets {
		if off < 0 {
			continue
		}
		s, nul, err := cString(table, off)
		if err != nil {
			return FormatError{"extended string table", err.Error()}
		}
		values[i] = s
		present[i] = true
		capsEnd = nul
	}

	nameBase := capsEnd + 1
	names := make([]string, nNames)
	for i, off := range nameOffsets {
		s, _, err := cString(table, off+nameBase)
		if err != nil {
			return FormatError{"extended names", err.Error()}
		}
		names[i] = string(s)
	}

	idx := 0
	for i := 0; i < int(eh.nCapBool); i++ {
		if boolVals[i] != 0 {
			e.booleans[names[idx]] = true
		}
		idx++
	}
	for i := 0; i < int(eh.nCapNum); i++ {
		if numVals[i] >= 0 {
			e.numbers[names[idx]] = numVals[i]
		}
		idx++
	}
	for i := 0; i < nCapStr; i++ {
		if present[i] {
			e.strings[names[idx]] = values[i]
		}
		idx++
	}

	return nil
}

// readExtOffsets implements the read-nStr-then-chase-the-negatives loop
// described above, returning the full offsets array once a pass adds no
// new absent entries.
func readExtOffsets(d *cursor, nStr int) ([]int, error) {
	all, err := d.offsets(nStr)
	if err != nil {
		return nil, FormatError{"extended string offsets", "short read"}
	}
	m := countNegative(all)
	for m > 0 {
		more, err := d.offsets(m)
		if err != nil {
			return nil, FormatError{"extended string offsets", "short read"}
		}
		all = append(all, more...)
		m = countNegative(more)
	}
	return all, nil
}

func countNegative(offsets []int) int {
	n := 0
	for _, o := range offsets {
		if o < 0 {
			n++
		}
	}
	return n
}
