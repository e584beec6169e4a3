package instl

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Install a single file"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagParents = "Create parent directories of <dst> (subject to the umask)"
	MsgFlagGroup   = "Numeric group ID or group name for the installed file"
	MsgFlagLink    = "Install as a symbolic link instead of copying"
	MsgFlagMode    = "Octal permission mode for the installed file, 0-7777"
	MsgFlagOwner   = "Numeric user ID or user name for the installed file"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Error messages
	MsgErrArgCount = "expected arguments: <src> <dst>"
)

// MsgRootLong is the root command's long help text.
const MsgRootLong = `instl copies or symlinks a single source file to a destination path,
optionally creating parent directories, and sets the installed file's
owner, group, and permission mode.

The file is written to a staging path beside the destination and moved
into place with an atomic rename, so readers of the destination never
observe a partially-installed file.`
