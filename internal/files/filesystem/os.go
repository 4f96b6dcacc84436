package filesystem

import (
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// NewOSGateway creates a gateway over the host filesystem. Paths are used
// as given, without a chroot.
func NewOSGateway(logger fmgr.Logger) *Gateway {
	return newGateway(osfs.Default, logger)
}
