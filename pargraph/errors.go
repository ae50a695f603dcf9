package pargraph

import "errors"

// ErrNoLabelsAllocated is returned by LabelSpace.MaxLabel when no label has
// ever been allocated from the space: nextLabel-1 would otherwise
// underflow.
var ErrNoLabelsAllocated = errors.New("pargraph: no labels have been allocated")

// ErrGraphAlreadyIndexed is returned by Node.Relabel once the owning graph's
// label index has been built: relabeling after indexing would silently
// desynchronize the index from the node's actual label set. Labels never
// change after indexing.
var ErrGraphAlreadyIndexed = errors.New("pargraph: primary label cannot change after indexing")

// ErrLabelNotIndexed is returned by NodeByLabelAndIndex when the graph's
// label index has not yet been built via IndexNodesByLabel. Querying the
// index before it is built is not itself an error condition per the
// package's contract (it yields empty results), but an explicit
// out-of-range lookup against an unbuilt index is surfaced here instead of
// panicking on a nil index.
var ErrLabelNotIndexed = errors.New("pargraph: label index not built; call IndexNodesByLabel first")

// ErrLabelIndexOutOfRange is returned by NodeByLabelAndIndex when idx is
// outside [0, CountWithLabel(label)).
var ErrLabelIndexOutOfRange = errors.New("pargraph: label/index out of range")
