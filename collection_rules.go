package validate

import "reflect"

// IsEmptySlice reports "empty" for zero-length slices. A nil slice counts as
// empty.
type IsEmptySlice[T any] struct{}

func (IsEmptySlice[T]) Validate(value []T) string {
	if len(value) == 0 {
		return TokenEmpty
	}
	return ""
}

// IsEmptyMap reports "empty" for zero-length maps. A nil map counts as
// empty. Hash-based sets modelled as map[K]struct{} validate through this
// shape.
type IsEmptyMap[K comparable, V any] struct{}

func (IsEmptyMap[K, V]) Validate(value map[K]V) string {
	if len(value) == 0 {
		return TokenEmpty
	}
	return ""
}

// Sized is the shape of containers that know their element count, such as
// ordered-tree sets or container/list.
type Sized interface {
	Len() int
}

// IsEmptySized reports "empty" when a Sized container holds no elements.
type IsEmptySized struct{}

func (IsEmptySized) Validate(value Sized) string {
	if value.Len() == 0 {
		return TokenEmpty
	}
	return ""
}

// IsEmptyArray reports "empty" for zero-length array types. A must be an
// array type; the length check needs reflection because Go generics cannot
// abstract over array lengths. Whether it fires is decided entirely by the
// type argument, so callers rarely need it, but it keeps the catalogue
// uniform across shapes. Instantiating with a non-array type is a programmer
// error.
type IsEmptyArray[A any] struct{}

func (IsEmptyArray[A]) Validate(value A) string {
	if reflect.ValueOf(value).Len() == 0 {
		return TokenEmpty
	}
	return ""
}

// MinItems returns a validator reporting "too few items" when the slice
// holds fewer than min elements.
func MinItems[T any](min int) Validator[[]T] {
	return ValidatorFunc[[]T](func(value []T) string {
		if len(value) < min {
			return TokenTooFewItems
		}
		return ""
	})
}

// MaxItems returns a validator reporting "too many items" when the slice
// holds more than max elements.
func MaxItems[T any](max int) Validator[[]T] {
	return ValidatorFunc[[]T](func(value []T) string {
		if len(value) > max {
			return TokenTooManyItems
		}
		return ""
	})
}
