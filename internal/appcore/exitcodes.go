package appcore

// Process exit codes shared by every command.
const (
	ExitOK        = 0
	ExitNotFound  = 1 // history: no such run
	ExitUsage     = 2 // flags, config, constraints
	ExitIO        = 3 // input files, store, writers
	ExitCancelled = 130
)
