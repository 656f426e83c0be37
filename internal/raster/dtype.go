// Package raster provides the dense typed raster container used by the
// reference resampling kernels.
package raster

// Element is a constraint for supported raster element types.
// It uses Go generics to ensure compile-time type safety.
type Element interface {
	~uint8 | ~int16 | Float16 | ~float32
}

// DataType represents runtime type information for rasters.
type DataType int

// Supported element types for rasters.
const (
	Uint8 DataType = iota
	Int16
	F16
	F32
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Uint8:
		return 1
	case Int16, F16:
		return 2
	case F32:
		return 4
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case F16:
		return "float16"
	case F32:
		return "float32"
	default:
		return "unknown"
	}
}

// TypeOf returns the DataType for a generic element type T.
func TypeOf[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case int16:
		return Int16
	case Float16:
		return F16
	case float32:
		return F32
	default:
		panic("unsupported type")
	}
}

// ToFloat32 widens an element value to float32, the precision all
// resampling arithmetic is carried out in.
func ToFloat32[T Element](v T) float32 {
	switch x := any(v).(type) {
	case uint8:
		return float32(x)
	case int16:
		return float32(x)
	case Float16:
		return x.Float32()
	case float32:
		return x
	default:
		panic("unsupported type")
	}
}

// FromFloat32 narrows a float32 value into the element's storage type.
// Integer types truncate toward zero, matching a C-style cast; Float16
// rounds to nearest-even.
func FromFloat32[T Element](f float32) T {
	var dummy T
	switch any(dummy).(type) {
	case uint8:
		return any(uint8(f)).(T)
	case int16:
		return any(int16(f)).(T)
	case Float16:
		return any(ToFloat16(f)).(T)
	case float32:
		return any(f).(T)
	default:
		panic("unsupported type")
	}
}
