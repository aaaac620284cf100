package snapshot

import (
	"fmt"
	"strconv"

	"github.com/delaneyj/toolbelt"
	"github.com/minio/simdjson-go"
)

var slotPool = toolbelt.New(func() []Slot { return make([]Slot, 0, 16) })

// FromJSON parses a JSON snapshot dump using simdjson-go. The expected
// shape is {"runtime": <string>, "slots": [{"owned": <word>, "sub":
// <string>}, ...]} where owned words may be JSON integers or hex
// strings, since debugger consoles print them both ways.
func FromJSON(data []byte) (Snapshot, error) {
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return Snapshot{}, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return Snapshot{}, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return Snapshot{}, err
	}
	if typ != simdjson.TypeObject {
		return Snapshot{}, fmt.Errorf("snapshot json must be an object, got %v", typ)
	}
	obj, err := root.Object(nil)
	if err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{Version: Version}
	scratch := slotPool.Get()
	defer func() {
		for i := range scratch {
			scratch[i] = Slot{}
		}
		slotPool.Put(scratch[:0])
	}()
	var parseErr error
	err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
		if parseErr != nil {
			return
		}
		switch string(key) {
		case "runtime":
			name, err := elem.String()
			if err != nil {
				parseErr = err
				return
			}
			s.Runtime = name
		case "slots":
			scratch, parseErr = slotsFromJSONIter(&elem, scratch)
		}
	}, nil)
	if err != nil {
		return Snapshot{}, err
	}
	if parseErr != nil {
		return Snapshot{}, parseErr
	}
	s.Slots = append([]Slot{}, scratch...)
	return s, nil
}

func slotsFromJSONIter(it *simdjson.Iter, dst []Slot) ([]Slot, error) {
	arr, err := it.Array(nil)
	if err != nil {
		return dst, err
	}
	iter := arr.Iter()
	for {
		t := iter.Advance()
		if t == simdjson.TypeNone {
			break
		}
		if t != simdjson.TypeObject {
			return dst, fmt.Errorf("slot must be an object, got %v", t)
		}
		elem := iter
		slot, err := slotFromJSONIter(&elem)
		if err != nil {
			return dst, err
		}
		dst = append(dst, slot)
	}
	return dst, nil
}

func slotFromJSONIter(it *simdjson.Iter) (Slot, error) {
	obj, err := it.Object(nil)
	if err != nil {
		return Slot{}, err
	}
	var slot Slot
	var parseErr error
	err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
		if parseErr != nil {
			return
		}
		switch string(key) {
		case "owned":
			slot.Owned, parseErr = wordFromJSONIter(&elem)
		case "sub":
			slot.Sub, parseErr = elem.String()
		}
	}, nil)
	if err != nil {
		return Slot{}, err
	}
	if parseErr != nil {
		return Slot{}, parseErr
	}
	return slot, nil
}

func wordFromJSONIter(it *simdjson.Iter) (uint64, error) {
	switch it.Type() {
	case simdjson.TypeUint:
		return it.Uint()
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("negative owned word: %d", v)
		}
		return uint64(v), nil
	case simdjson.TypeString:
		s, err := it.String()
		if err != nil {
			return 0, err
		}
		// base 0 accepts both 0x-prefixed hex and plain decimal
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid owned word %q: %v", s, err)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("owned word must be an integer or string, got %v", it.Type())
	}
}
