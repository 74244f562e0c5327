// Package machine is imported by the runtime on bare metal builds and
// implements its target hooks. Import it for side effects:
//
//	import _ "github.com/clktmr/rvuart/machine"
//
// On other targets the package is empty.
package machine
