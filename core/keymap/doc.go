// Package keymap provides Map, the associative table behind every lookup cache.
//
// Users type names the way they remember them: "mr mime", "Mr.Mime",
// "MR. MIME". Map compares keys after stripping everything but letters and
// digits and folding case, and applies the same comparison when inserting,
// so two spellings of one name never become two entries.
//
// # Semantics
//
//   - Get and Contains accept any value; non-string keys are simply absent.
//   - Put keeps the first stored spelling and replaces the value.
//   - Keys and ForEach follow insertion order.
//   - Freeze turns Put into frozen.ErrAlreadyFrozen.
package keymap
