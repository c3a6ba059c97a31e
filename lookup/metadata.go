package lookup

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// hostTag names a static member: `host:"a"`. A value of "-" hides the field.
const hostTag = "host"

var (
	metadata   = make(map[reflect.Type]sentinel.Metadata)
	metadataMu sync.RWMutex
)

// scanStatics returns the cached member metadata of a statics struct type,
// building it on first use. Unlike a sentinel scan it keeps unexported
// fields, since host members are rarely exported.
func scanStatics(rt reflect.Type) sentinel.Metadata {
	// Fast path: read-lock cache check
	metadataMu.RLock()
	if meta, ok := metadata[rt]; ok {
		metadataMu.RUnlock()
		return meta
	}
	metadataMu.RUnlock()

	// Slow path: build and cache with write-lock
	metadataMu.Lock()
	defer metadataMu.Unlock()

	// Double-check pattern
	if meta, ok := metadata[rt]; ok {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tags := make(map[string]string)
		if val, ok := sf.Tag.Lookup(hostTag); ok {
			if val == "-" {
				continue
			}
			tags[hostTag] = val
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	metadata[rt] = meta
	return meta
}
