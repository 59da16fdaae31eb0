// Package entity defines the game records (trainers, pokemon, moves, sync
// moves, passives, stats, sync grid nodes) and their JSON wire format.
//
// # Parsing
//
// Every entity has a Parse function over a gjson value tree and a ParseJSON
// variant over raw bytes. Parsing is strict about shape and lenient about
// content:
//
//   - A missing required field (every name, a pokemon's trainer, a move's
//     power, a grid node's bonus) or any field of the wrong JSON type yields
//     a *ParseError wrapping ErrParse.
//   - Absent or null arrays parse as empty. Absent optional strings are "".
//   - Numeric text ("5", "12(Lv.5)", "N/A") goes through utils.DigitsToInt.
//
// Every list is a frozen.Seq and is frozen before Parse returns.
//
// # Serialization
//
// MarshalJSON emits the canonical wire format. Parsing that output yields an
// equal entity.
package entity
