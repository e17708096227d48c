package selection

import "github.com/joeycumines/content-bt/address"

// CommandAddress is a stable (id, index) reference into an external
// content-command table. The core treats it as an opaque, copyable value.
type CommandAddress = address.Address
