// SPDX-License-Identifier: EPL-2.0

package frame

// noCopy makes go vet's copylocks check flag any by-value copy of the
// containing struct. Blocks, streams and queues own their storage exclusively.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
