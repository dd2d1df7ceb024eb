// Package listalias demonstrates that binding a second name to a list shares the
// list's storage instead of copying it.
//
// The module is laid out as:
//   - seq: List[T], a mutable sequence with Alias, Copy and storage identity
//   - demo: the demonstration itself and its text/YAML report
//   - cmd/listalias: the runnable entry point
//
// Run it with:
//
//	go run ./cmd/listalias
//	go run ./cmd/listalias -mode copy
//
// Import
//
//	"github.com/sghaida/listalias/seq"
package listalias
