// Package frozen provides Seq, a typed ordered container that is mutable while
// it is being built and permanently read-only once frozen.
//
// Entity lists (a trainer's pokemon, a pokemon's moves, cache buckets) are
// built once and then shared between every reader of a cache generation. The
// freeze flag turns accidental late writes into ErrAlreadyFrozen instead of
// silent data races.
//
// # Usage
//
//	moves := frozen.New[*entity.Move]()
//	_ = moves.Append(m)
//	moves.Freeze()
//	err := moves.Append(other) // errors.Is(err, frozen.ErrAlreadyFrozen)
package frozen
