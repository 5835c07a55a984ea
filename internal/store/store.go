// Package store implements the SYMLS variable store and resolver: six
// disjoint name-to-value partitions (three scalar, three array) plus the
// logic that turns a token like "total" or "scores-2" into a typed,
// mutable reference.
package store

import (
	"strings"

	"github.com/symls-lang/symls/internal/symlserr"
	"github.com/symls-lang/symls/internal/values"
)

// Store holds every scalar and array variable declared during a run.
// Variables are never deleted; scoping is global for the lifetime of the
// process.
type Store struct {
	ints  map[string]*int64
	texts map[string]*string
	reals map[string]*float64

	intArrays  map[string][]int64
	textArrays map[string][]string
	realArrays map[string][]float64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		ints:       make(map[string]*int64),
		texts:      make(map[string]*string),
		reals:      make(map[string]*float64),
		intArrays:  make(map[string][]int64),
		textArrays: make(map[string][]string),
		realArrays: make(map[string][]float64),
	}
}

// DeclareInteger inserts (or overwrites) an integer scalar.
func (s *Store) DeclareInteger(name string, v int64) {
	s.ints[name] = &v
}

// DeclareText inserts (or overwrites) a text scalar.
func (s *Store) DeclareText(name string, v string) {
	s.texts[name] = &v
}

// DeclareReal inserts (or overwrites) a real scalar.
func (s *Store) DeclareReal(name string, v float64) {
	s.reals[name] = &v
}

// DeclareIntegerArray allocates a dense integer array of the given size,
// filled with def.
func (s *Store) DeclareIntegerArray(name string, size int, def int64) {
	arr := make([]int64, size)
	for i := range arr {
		arr[i] = def
	}
	s.intArrays[name] = arr
}

// DeclareTextArray allocates a dense text array of the given size.
func (s *Store) DeclareTextArray(name string, size int, def string) {
	arr := make([]string, size)
	for i := range arr {
		arr[i] = def
	}
	s.textArrays[name] = arr
}

// DeclareRealArray allocates a dense real array of the given size.
func (s *Store) DeclareRealArray(name string, size int, def float64) {
	arr := make([]float64, size)
	for i := range arr {
		arr[i] = def
	}
	s.realArrays[name] = arr
}

// EvalIndex evaluates the integer expression that follows the '-' in an
// array-indexing token. The store package has no expression evaluator of
// its own (that lives in internal/eval, which depends on store for
// variable lookups); the caller supplies it to avoid an import cycle.
type EvalIndex func(expr string) (int64, error)

// Resolve turns a token into a typed reference:
//  1. a token containing '-' is an array access: split at the first '-',
//     evaluate the remainder as an integer index, and look the array name
//     up in integer -> real -> text order;
//  2. otherwise look the whole token up as a scalar, in
//     integer -> text -> real order;
//  3. otherwise report "not found" (the caller decides whether that's
//     fatal).
func (s *Store) Resolve(token string, line int, evalIndex EvalIndex) (values.Ref, error) {
	if dash := strings.IndexByte(token, '-'); dash >= 0 {
		arrayName := token[:dash]
		indexExpr := token[dash+1:]
		index, err := evalIndex(indexExpr)
		if err != nil {
			return values.NotFound, err
		}
		if arr, ok := s.intArrays[arrayName]; ok {
			if index < 0 || int(index) >= len(arr) {
				return values.NotFound, symlserr.New(symlserr.IndexOutOfBounds, line)
			}
			return values.Ref{Kind: values.KindInteger, Int: &arr[index]}, nil
		}
		if arr, ok := s.realArrays[arrayName]; ok {
			if index < 0 || int(index) >= len(arr) {
				return values.NotFound, symlserr.New(symlserr.IndexOutOfBounds, line)
			}
			return values.Ref{Kind: values.KindReal, Real: &arr[index]}, nil
		}
		if arr, ok := s.textArrays[arrayName]; ok {
			if index < 0 || int(index) >= len(arr) {
				return values.NotFound, symlserr.New(symlserr.IndexOutOfBounds, line)
			}
			return values.Ref{Kind: values.KindText, Text: &arr[index]}, nil
		}
		return values.NotFound, nil
	}

	if p, ok := s.ints[token]; ok {
		return values.Ref{Kind: values.KindInteger, Int: p}, nil
	}
	if p, ok := s.texts[token]; ok {
		return values.Ref{Kind: values.KindText, Text: p}, nil
	}
	if p, ok := s.reals[token]; ok {
		return values.Ref{Kind: values.KindReal, Real: p}, nil
	}
	return values.NotFound, nil
}

// Partitioned reports whether name already exists in any of the six
// partitions. The Declare methods do not consult it: declaring a name in a
// second partition leaves the earlier entry in place, and Resolve then
// returns whichever partition it checks first.
func (s *Store) Partitioned(name string) bool {
	_, a := s.ints[name]
	_, b := s.texts[name]
	_, c := s.reals[name]
	_, d := s.intArrays[name]
	_, e := s.textArrays[name]
	_, f := s.realArrays[name]
	return a || b || c || d || e || f
}
