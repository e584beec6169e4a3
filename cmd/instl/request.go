package instl

import (
	"github.com/arthur-debert/instl/pkg/identity"
	"github.com/arthur-debert/instl/pkg/paths"
	"github.com/arthur-debert/instl/pkg/types"
)

// requestOptions holds the raw flag values before resolution.
type requestOptions struct {
	mode     string
	owner    string
	group    string
	parents  bool
	symbolic bool
}

// buildRequest resolves flag values into an immutable install request.
// Owner and group default to the invoking process identity, queried
// here so nothing downstream touches process globals. No filesystem
// access happens at this stage.
func buildRequest(source, destination string, opts requestOptions) (types.Request, error) {
	uid, gid := identity.Current()
	req := types.NewRequest(source, destination, uid, gid)
	req.Parents = opts.parents
	req.Symbolic = opts.symbolic

	if opts.mode != "" {
		mode, err := paths.ParseMode(opts.mode)
		if err != nil {
			return types.Request{}, err
		}
		req.Mode = mode
	}

	if opts.owner != "" {
		owner, err := identity.ResolveUser(opts.owner)
		if err != nil {
			return types.Request{}, err
		}
		req.Owner = owner
	}

	if opts.group != "" {
		group, err := identity.ResolveGroup(opts.group)
		if err != nil {
			return types.Request{}, err
		}
		req.Group = group
	}

	return req, nil
}
